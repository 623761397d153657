package usecase

import (
	"strings"
	"testing"
)

func TestRenderBill(t *testing.T) {
	rec := finalizedRecord()
	rec.Services = nil
	text := RenderBill(rec, "")

	for _, want := range []string{
		"Customer: Ali Khan",
		"Bike: CD70",
		"Service date: 2024-01-10",
		"Parts:\n- SPARK PLUG(C7HSA) x1 = Rs. 385",
		"TOTAL: Rs. 885",
		"Next service: 2024-02-09",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("bill missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Services:") || strings.Contains(text, "Pay online") {
		t.Fatalf("empty sections and missing link must be omitted:\n%s", text)
	}
}
