package response

import (
	"testing"
	"time"

	"motomind/internal/domain/catalog"
	"motomind/internal/domain/entities"
	"motomind/internal/usecase"
)

func TestFromRecord(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	r := entities.ServiceRecord{
		ID:              "rec-1",
		CustomerName:    "Ali",
		BikeModel:       entities.BikeModelCD70,
		ServiceDate:     entities.DateOnly(now),
		NextServiceDate: entities.DefaultNextServiceDate(now),
		Parts:           []entities.LineItemSelection{{ItemID: 5, Name: "SPARK PLUG(C7HSA)", Quantity: 2, Charge: 385}},
		PartsTotal:      770,
		TotalAmount:     770,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res := FromRecord(r)
	if res.ServiceDate != "2024-01-15" || res.NextServiceDate != "2024-02-14" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if len(res.Parts) != 1 || res.Parts[0].Amount != 770 {
		t.Fatalf("unexpected parts: %+v", res.Parts)
	}
	if res.Services == nil || len(res.Services) != 0 {
		t.Fatalf("services must encode as an empty list")
	}
	if res.BikeModel != "CD70" || res.FinalizedAt != nil {
		t.Fatalf("unexpected record: %+v", res)
	}
}

func TestFromRecordPage(t *testing.T) {
	res := FromRecordPage(usecase.RecordPage{Records: []entities.ServiceRecord{{ID: "a"}}, Page: 2, PageSize: 10})
	if res.HasNextPage == nil || *res.HasNextPage {
		t.Fatalf("expected explicit false has_next_page")
	}
	if len(res.Records) != 1 || res.Page != 2 || res.PageSize != 10 {
		t.Fatalf("unexpected page: %+v", res)
	}
}

func TestFromSession(t *testing.T) {
	res := FromSession(entities.ConnectionSession{State: entities.ConnectionConnected, PairingCode: "stale"})
	if res.State != "connected" || res.PairingCode != "" || res.UpdatedAt != nil {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromCatalog(t *testing.T) {
	res := FromCatalog(catalog.Default())
	if len(res.Parts) == 0 || len(res.Services) == 0 || len(res.BikeModels) != len(entities.BikeModels()) {
		t.Fatalf("unexpected catalog: %+v", res)
	}
}
