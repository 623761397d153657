package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRecordOp(t *testing.T) {
	okBefore := testutil.ToFloat64(RecordOperationsTotal.WithLabelValues("finalize", "success"))
	failBefore := testutil.ToFloat64(RecordOperationsTotal.WithLabelValues("finalize", "failure"))

	ObserveRecordOp("finalize", nil)
	ObserveRecordOp("finalize", errors.New("boom"))

	if got := testutil.ToFloat64(RecordOperationsTotal.WithLabelValues("finalize", "success")); got != okBefore+1 {
		t.Fatalf("expected success counter %v, got %v", okBefore+1, got)
	}
	if got := testutil.ToFloat64(RecordOperationsTotal.WithLabelValues("finalize", "failure")); got != failBefore+1 {
		t.Fatalf("expected failure counter %v, got %v", failBefore+1, got)
	}
}

func TestIncDelivery_EmptyResult(t *testing.T) {
	before := testutil.ToFloat64(BillDeliveriesTotal.WithLabelValues("unknown"))
	IncDelivery("")
	if got := testutil.ToFloat64(BillDeliveriesTotal.WithLabelValues("unknown")); got != before+1 {
		t.Fatalf("expected unknown counter to increase")
	}
}
