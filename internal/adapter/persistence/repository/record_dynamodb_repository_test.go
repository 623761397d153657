package repository

import (
	"errors"
	"testing"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestRecordItem_StorageFormat(t *testing.T) {
	rec := sampleRecord("rec-1", 10)
	av, err := attributevalue.MarshalMap(toRecordItem(rec))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	sd, ok := av["service_date"].(*types.AttributeValueMemberS)
	if !ok || sd.Value != "2024-01-10" {
		t.Fatalf("service_date must be a sortable yyyy-mm-dd string, got %#v", av["service_date"])
	}
	if _, ok := av["finalized_at"]; ok {
		t.Fatalf("empty finalized_at must be omitted")
	}
	if _, ok := av["finalized"].(*types.AttributeValueMemberBOOL); !ok {
		t.Fatalf("finalized must be a BOOL for the draft condition")
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	back := fromRecordItem(it)
	if back.TotalAmount != 885 || back.Parts[0].Charge != 385 || !back.ServiceDate.Equal(rec.ServiceDate) {
		t.Fatalf("unexpected round trip: %+v", back)
	}
}

func TestConditionFailure(t *testing.T) {
	finalized := sampleRecord("rec-1", 10)
	finalized.Finalized = true
	old, err := attributevalue.MarshalMap(toRecordItem(finalized))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := conditionFailure(nil, "ws-1"); err != nil {
		t.Fatalf("missing item reads as not found, got %v", err)
	}
	if err := conditionFailure(old, "ws-2"); err != nil {
		t.Fatalf("foreign workshop reads as not found, got %v", err)
	}
	if err := conditionFailure(old, "ws-1"); !errors.Is(err, interfaces.ErrRecordNotDraft) {
		t.Fatalf("expected ErrRecordNotDraft, got %v", err)
	}
}

func TestWindow(t *testing.T) {
	recs := make([]entities.ServiceRecord, 5)
	if got := window(recs, 3, 10); len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got := window(recs, 5, 10); len(got) != 0 {
		t.Fatalf("expected empty, got %d", len(got))
	}
	if got := window(recs, 0, 0); len(got) != 5 {
		t.Fatalf("zero limit returns everything")
	}
}
