// Package catalog holds the read-only list of billable parts and services.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/billing"
	"motomind/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog string

var ErrItemNotFound = errors.New("catalog item not found")

// Item is a catalog entry. Suggested is in whole currency units.
type Item struct {
	ID        int    `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Suggested int64  `yaml:"suggested" json:"suggested"`
}

type document struct {
	Parts    []Item `yaml:"parts"`
	Services []Item `yaml:"services"`
}

// Catalog is immutable after Load; all accessors return copies.
type Catalog struct {
	parts    []Item
	services []Item
}

// Load decodes and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate("parts", doc.Parts); err != nil {
		return nil, err
	}
	if err := validate("services", doc.Services); err != nil {
		return nil, err
	}
	return &Catalog{parts: doc.Parts, services: doc.Services}, nil
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in workshop price list.
func Default() *Catalog {
	c, err := Load(strings.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

func validate(section string, items []Item) error {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("catalog %s: duplicate id %d", section, it.ID)
		}
		seen[it.ID] = struct{}{}
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("catalog %s: item %d has no name", section, it.ID)
		}
		if it.Suggested < 0 {
			return fmt.Errorf("catalog %s: item %d has negative price", section, it.ID)
		}
	}
	return nil
}

func (c *Catalog) ListParts() []Item {
	return append([]Item(nil), c.parts...)
}

func (c *Catalog) ListServices() []Item {
	return append([]Item(nil), c.services...)
}

func (c *Catalog) Lookup(kind entities.ItemKind, id int) (Item, error) {
	var items []Item
	switch kind {
	case entities.ItemKindPart:
		items = c.parts
	case entities.ItemKindService:
		items = c.services
	default:
		return Item{}, fmt.Errorf("unknown item kind %q", kind)
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s %d", ErrItemNotFound, kind, id)
}

// Select builds a line for the given catalog item. A nil charge takes the
// current suggested price; quantity 0 means 1.
func (c *Catalog) Select(kind entities.ItemKind, id, quantity int, charge *int64) (entities.LineItemSelection, error) {
	field := string(kind) + "s"
	it, err := c.Lookup(kind, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return entities.LineItemSelection{}, apperrors.Invalid(field, fmt.Sprintf("unknown item %d", id))
		}
		return entities.LineItemSelection{}, err
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 || quantity > billing.MaxQuantity {
		return entities.LineItemSelection{}, apperrors.Invalid(field, fmt.Sprintf("item %d: quantity must be between 1 and %d", id, billing.MaxQuantity))
	}
	price := it.Suggested
	if charge != nil {
		price = *charge
	}
	if price < 0 || price > billing.MaxCharge {
		return entities.LineItemSelection{}, apperrors.Invalid(field, fmt.Sprintf("item %d: charge must be between 0 and %d", id, billing.MaxCharge))
	}
	return entities.LineItemSelection{ItemID: it.ID, Name: it.Name, Quantity: quantity, Charge: price}, nil
}
