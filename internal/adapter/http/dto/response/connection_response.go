package response

import (
	"time"

	"motomind/internal/domain/catalog"
	"motomind/internal/domain/entities"
)

type ConnectionResponse struct {
	State       string     `json:"state"`
	PairingCode string     `json:"pairing_code,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func FromSession(s entities.ConnectionSession) ConnectionResponse {
	s = s.Normalize()
	res := ConnectionResponse{State: string(s.State), PairingCode: s.PairingCode}
	if !s.UpdatedAt.IsZero() {
		at := s.UpdatedAt
		res.UpdatedAt = &at
	}
	return res
}

type CatalogResponse struct {
	Parts      []catalog.Item `json:"parts"`
	Services   []catalog.Item `json:"services"`
	BikeModels []string       `json:"bike_models"`
}

func FromCatalog(c *catalog.Catalog) CatalogResponse {
	models := entities.BikeModels()
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, string(m))
	}
	return CatalogResponse{Parts: c.ListParts(), Services: c.ListServices(), BikeModels: names}
}
