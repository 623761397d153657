package interfaces

import (
	"context"
	"errors"
	"time"

	"motomind/internal/domain/entities"
)

// ErrRecordNotDraft is returned by conditional writes against a finalized record.
var ErrRecordNotDraft = errors.New("record is not a draft")

// IRecordRepository abstracts persistence for ServiceRecord.
//
// A record that does not exist (or belongs to another workshop) is reported
// as a zero-valued entity with a nil error. Update and Finalize are
// conditional writes that only succeed while the stored record is a draft;
// they return ErrRecordNotDraft otherwise.

type IRecordRepository interface {
	Create(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	GetByID(ctx context.Context, workshopID, id string) (entities.ServiceRecord, error)
	Update(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	Finalize(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	MarkDelivered(ctx context.Context, workshopID, id string, at time.Time) (entities.ServiceRecord, error)
	// List returns records with service dates in the filter range, newest
	// first, honoring Limit and Offset.
	List(ctx context.Context, workshopID string, filter entities.RecordFilter) ([]entities.ServiceRecord, error)
}
