package entities

// ItemKind tells parts apart from services (labor).
type ItemKind string

const (
	ItemKindPart    ItemKind = "part"
	ItemKindService ItemKind = "service"
)

// LineItemSelection is one billable line of a record.
//
// ItemID is the stable catalog identifier; Name is a snapshot of the display
// name at selection time. Charge is per unit, in whole currency units.
type LineItemSelection struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Charge   int64  `json:"charge"`
}

// Amount is Quantity * Charge.
func (s LineItemSelection) Amount() int64 {
	return int64(s.Quantity) * s.Charge
}

// Selections groups the billable lines of a record.
type Selections struct {
	Parts    []LineItemSelection `json:"parts"`
	Services []LineItemSelection `json:"services"`
}

// Clone returns a deep copy so callers can't mutate a stored record's slices.
func (s Selections) Clone() Selections {
	out := Selections{}
	if s.Parts != nil {
		out.Parts = append([]LineItemSelection(nil), s.Parts...)
	}
	if s.Services != nil {
		out.Services = append([]LineItemSelection(nil), s.Services...)
	}
	return out
}
