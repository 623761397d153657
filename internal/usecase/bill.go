package usecase

import (
	"fmt"
	"strings"

	"motomind/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// FormatAmount renders whole currency units the way the workshop prints them.
func FormatAmount(v int64) string {
	return fmt.Sprintf("Rs. %d", v)
}

// RenderBill produces the plain-text bill sent to the customer.
func RenderBill(rec entities.ServiceRecord, paymentLink string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MotoMind Service Bill\n")
	fmt.Fprintf(&b, "Customer: %s\n", rec.CustomerName)
	fmt.Fprintf(&b, "Bike: %s | Odometer: %d km\n", rec.BikeModel, rec.Odometer)
	fmt.Fprintf(&b, "Service date: %s\n", rec.ServiceDate.Format(dateLayout))

	writeLines(&b, "Parts", rec.Parts)
	writeLines(&b, "Services", rec.Services)

	fmt.Fprintf(&b, "\nParts total: %s\n", FormatAmount(rec.PartsTotal))
	fmt.Fprintf(&b, "Labor total: %s\n", FormatAmount(rec.LaborTotal))
	fmt.Fprintf(&b, "TOTAL: %s\n", FormatAmount(rec.TotalAmount))
	fmt.Fprintf(&b, "\nNext service: %s\n", rec.NextServiceDate.Format(dateLayout))
	if paymentLink != "" {
		fmt.Fprintf(&b, "Pay online: %s\n", paymentLink)
	}
	return b.String()
}

func writeLines(b *strings.Builder, title string, lines []entities.LineItemSelection) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, l := range lines {
		fmt.Fprintf(b, "- %s x%d = %s\n", l.Name, l.Quantity, FormatAmount(l.Amount()))
	}
}
