package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/billing"
	"motomind/internal/domain/catalog"
	"motomind/internal/domain/entities"
	"motomind/internal/infrastructure/metrics"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecordID   = apperrors.Invalid("id", "is required")
	ErrMissingWorkshopID = fmt.Errorf("%w: missing workshop identity", apperrors.ErrAuth)
)

// SelectionInput picks a catalog item. Quantity 0 means 1; a nil Charge
// takes the catalog's suggested price at the time of the call.
type SelectionInput struct {
	ItemID   int
	Quantity int
	Charge   *int64
}

// RecordInput carries the editable fields of a record. ServiceDate is only
// honored on create.
type RecordInput struct {
	CustomerName    string
	Phone           string
	BikeModel       string
	Odometer        int64
	ServiceDate     *time.Time
	NextServiceDate *time.Time
	Parts           []SelectionInput
	Services        []SelectionInput
}

type ListQuery struct {
	Page      int
	StartDate *time.Time
	EndDate   *time.Time
}

type RecordPage struct {
	Records     []entities.ServiceRecord
	Page        int
	PageSize    int
	HasNextPage bool
}

type DeliveryResult struct {
	Record      entities.ServiceRecord
	PaymentLink string
}

// IRecordUseCase exposes the service-record lifecycle.
//
// Records are created as drafts, edited freely, then finalized into an
// immutable bill that can be delivered (repeatedly) once the workshop's
// messaging channel is connected.

type IRecordUseCase interface {
	Create(ctx context.Context, workshopID string, in RecordInput) (entities.ServiceRecord, error)
	Update(ctx context.Context, workshopID, id string, in RecordInput) (entities.ServiceRecord, error)
	Finalize(ctx context.Context, workshopID, id string) (entities.ServiceRecord, error)
	Deliver(ctx context.Context, workshopID, id string) (DeliveryResult, error)
	GetByID(ctx context.Context, workshopID, id string) (entities.ServiceRecord, error)
	List(ctx context.Context, workshopID string, q ListQuery) (RecordPage, error)
}

type RecordUseCase struct {
	repo     interfaces.IRecordRepository
	sessions interfaces.IConnectionSessionRepository
	provider interfaces.IMessagingProvider
	payments interfaces.IPaymentLinkGateway
	catalog  *catalog.Catalog
	pageSize int
	now      func() time.Time
}

var _ IRecordUseCase = (*RecordUseCase)(nil)

// NewRecordUseCase wires the record lifecycle. payments may be nil, in which
// case bills are sent without a payment link.
func NewRecordUseCase(
	repo interfaces.IRecordRepository,
	sessions interfaces.IConnectionSessionRepository,
	provider interfaces.IMessagingProvider,
	payments interfaces.IPaymentLinkGateway,
	cat *catalog.Catalog,
	pageSize int,
) *RecordUseCase {
	if pageSize < 1 {
		pageSize = 10
	}
	return &RecordUseCase{
		repo:     repo,
		sessions: sessions,
		provider: provider,
		payments: payments,
		catalog:  cat,
		pageSize: pageSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *RecordUseCase) Create(ctx context.Context, workshopID string, in RecordInput) (rec entities.ServiceRecord, err error) {
	defer func() { metrics.ObserveRecordOp("create", err) }()
	log := logger.WithComponent("record.usecase")

	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.ServiceRecord{}, ErrMissingWorkshopID
	}

	now := u.now()
	rec = entities.ServiceRecord{
		ID:          uuid.NewString(),
		WorkshopID:  workshopID,
		ServiceDate: entities.DateOnly(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.apply(&rec, in); err != nil {
		log.Debug().Err(err).Str("workshop_id", workshopID).Msg("create rejected")
		return entities.ServiceRecord{}, err
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Error().Err(err).Str("workshop_id", workshopID).Msg("create failed")
		return entities.ServiceRecord{}, err
	}
	log.Info().Str("workshop_id", workshopID).Str("record_id", created.ID).Int64("total", created.TotalAmount).Msg("record created")
	return created, nil
}

func (u *RecordUseCase) Update(ctx context.Context, workshopID, id string, in RecordInput) (rec entities.ServiceRecord, err error) {
	defer func() { metrics.ObserveRecordOp("update", err) }()

	rec, err = u.load(ctx, workshopID, id)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if err := rec.EnsureDraft(); err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("update record %s: %w", rec.ID, err)
	}

	// ServiceDate is fixed at creation.
	in.ServiceDate = nil
	if err := u.apply(&rec, in); err != nil {
		return entities.ServiceRecord{}, err
	}
	rec.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, rec)
	if err != nil {
		return entities.ServiceRecord{}, mapWriteError("update", rec.ID, err)
	}
	if updated.ID == "" {
		return entities.ServiceRecord{}, apperrors.ErrNotFound
	}
	log := logger.WithComponent("record.usecase")
	log.Info().Str("record_id", updated.ID).Int64("total", updated.TotalAmount).Msg("record updated")
	return updated, nil
}

func (u *RecordUseCase) Finalize(ctx context.Context, workshopID, id string) (rec entities.ServiceRecord, err error) {
	defer func() { metrics.ObserveRecordOp("finalize", err) }()

	rec, err = u.load(ctx, workshopID, id)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if err := rec.EnsureDraft(); err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("finalize record %s: %w", rec.ID, err)
	}

	// Totals are snapshotted from the record's own charges, not the catalog.
	if err := billing.Apply(&rec); err != nil {
		return entities.ServiceRecord{}, err
	}
	now := u.now()
	rec.Finalized = true
	rec.FinalizedAt = &now
	rec.UpdatedAt = now

	finalized, err := u.repo.Finalize(ctx, rec)
	if err != nil {
		return entities.ServiceRecord{}, mapWriteError("finalize", rec.ID, err)
	}
	if finalized.ID == "" {
		return entities.ServiceRecord{}, apperrors.ErrNotFound
	}
	log := logger.WithComponent("record.usecase")
	log.Info().Str("record_id", finalized.ID).Int64("total", finalized.TotalAmount).Msg("record finalized")
	return finalized, nil
}

func (u *RecordUseCase) Deliver(ctx context.Context, workshopID, id string) (res DeliveryResult, err error) {
	defer func() { metrics.ObserveRecordOp("deliver", err) }()
	log := logger.WithComponent("record.usecase")

	rec, err := u.load(ctx, workshopID, id)
	if err != nil {
		return DeliveryResult{}, err
	}

	session, err := u.sessions.Get(ctx, rec.WorkshopID)
	if err != nil {
		return DeliveryResult{}, err
	}
	if err := rec.CheckDeliverable(session.State); err != nil {
		reason, _ := apperrors.DeliveryReason(err)
		metrics.IncDelivery(string(reason))
		log.Info().Str("record_id", rec.ID).Str("reason", string(reason)).Msg("deliver blocked")
		return DeliveryResult{}, err
	}

	link := u.paymentLink(ctx, rec)
	msg := interfaces.BillMessage{
		WorkshopID: rec.WorkshopID,
		RecordID:   rec.ID,
		Phone:      rec.Phone,
		Text:       RenderBill(rec, link),
	}
	if err := u.provider.SendBill(ctx, msg); err != nil {
		if errors.Is(err, interfaces.ErrProviderNotReady) {
			metrics.IncDelivery(string(apperrors.ReasonProviderNotReady))
			log.Warn().Err(err).Str("record_id", rec.ID).Msg("provider not ready")
			return DeliveryResult{}, apperrors.NotDeliverable(apperrors.ReasonProviderNotReady, err.Error())
		}
		metrics.IncDelivery("error")
		log.Error().Err(err).Str("record_id", rec.ID).Msg("send bill failed")
		return DeliveryResult{}, fmt.Errorf("%w: send bill: %v", apperrors.ErrNetwork, err)
	}
	metrics.IncDelivery("sent")

	delivered, err := u.repo.MarkDelivered(ctx, rec.WorkshopID, rec.ID, u.now())
	if err != nil || delivered.ID == "" {
		// The bill already went out; report success with the record as read.
		log.Error().Err(err).Str("record_id", rec.ID).Msg("mark delivered failed")
		delivered = rec
	}
	log.Info().Str("record_id", rec.ID).Int("delivery_count", delivered.DeliveryCount).Msg("bill delivered")
	return DeliveryResult{Record: delivered, PaymentLink: link}, nil
}

func (u *RecordUseCase) GetByID(ctx context.Context, workshopID, id string) (entities.ServiceRecord, error) {
	return u.load(ctx, workshopID, id)
}

func (u *RecordUseCase) List(ctx context.Context, workshopID string, q ListQuery) (RecordPage, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return RecordPage{}, ErrMissingWorkshopID
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		return RecordPage{}, apperrors.Invalid("page", "must be >= 1")
	}
	if q.StartDate != nil && q.EndDate != nil && entities.DateOnly(*q.EndDate).Before(entities.DateOnly(*q.StartDate)) {
		return RecordPage{}, apperrors.Invalid("end_date", "must not be before start_date")
	}

	// One extra row tells us whether another page exists.
	records, err := u.repo.List(ctx, workshopID, entities.RecordFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Limit:     u.pageSize + 1,
		Offset:    (q.Page - 1) * u.pageSize,
	})
	if err != nil {
		return RecordPage{}, err
	}
	SortNewestFirst(records)

	page := RecordPage{Page: q.Page, PageSize: u.pageSize}
	if len(records) > u.pageSize {
		page.HasNextPage = true
		records = records[:u.pageSize]
	}
	page.Records = records
	return page, nil
}

// SortNewestFirst orders by service date descending, then creation time.
func SortNewestFirst(records []entities.ServiceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.ServiceDate.Equal(b.ServiceDate) {
			return a.ServiceDate.After(b.ServiceDate)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

func (u *RecordUseCase) load(ctx context.Context, workshopID, id string) (entities.ServiceRecord, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.ServiceRecord{}, ErrMissingWorkshopID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRecord{}, ErrInvalidRecordID
	}
	rec, err := u.repo.GetByID(ctx, workshopID, id)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if rec.ID == "" {
		return entities.ServiceRecord{}, apperrors.ErrNotFound
	}
	return rec, nil
}

// apply validates in and copies it onto rec, recomputing totals.
func (u *RecordUseCase) apply(rec *entities.ServiceRecord, in RecordInput) error {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return apperrors.Invalid("customer_name", "is required")
	}
	phone := strings.TrimSpace(in.Phone)
	if err := validatePhone(phone); err != nil {
		return err
	}
	model, ok := entities.ParseBikeModel(in.BikeModel)
	if !ok {
		return apperrors.Invalid("bike_model", fmt.Sprintf("unknown model %q", in.BikeModel))
	}
	if in.Odometer < 0 {
		return apperrors.Invalid("odometer", "must be >= 0")
	}
	if in.ServiceDate != nil {
		rec.ServiceDate = entities.DateOnly(*in.ServiceDate)
	}
	next := entities.DefaultNextServiceDate(rec.ServiceDate)
	if in.NextServiceDate != nil {
		next = entities.DateOnly(*in.NextServiceDate)
		if next.Before(rec.ServiceDate) {
			return apperrors.Invalid("next_service_date", "must not be before service_date")
		}
	}

	parts, err := u.selections(entities.ItemKindPart, in.Parts)
	if err != nil {
		return err
	}
	services, err := u.selections(entities.ItemKindService, in.Services)
	if err != nil {
		return err
	}

	rec.CustomerName = name
	rec.Phone = phone
	rec.BikeModel = model
	rec.Odometer = in.Odometer
	rec.NextServiceDate = next
	rec.Parts = parts
	rec.Services = services
	return billing.Apply(rec)
}

func (u *RecordUseCase) selections(kind entities.ItemKind, in []SelectionInput) ([]entities.LineItemSelection, error) {
	out := make([]entities.LineItemSelection, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for _, s := range in {
		if _, dup := seen[s.ItemID]; dup {
			return nil, apperrors.Invalid(string(kind)+"s", fmt.Sprintf("item %d selected twice", s.ItemID))
		}
		seen[s.ItemID] = struct{}{}
		sel, err := u.catalog.Select(kind, s.ItemID, s.Quantity, s.Charge)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return apperrors.Invalid("phone", "is required")
	}
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0, r == ' ', r == '-':
		default:
			return apperrors.Invalid("phone", "may only contain digits, spaces, dashes and a leading +")
		}
	}
	if digits < 7 || digits > 15 {
		return apperrors.Invalid("phone", "must have 7 to 15 digits")
	}
	return nil
}

func (u *RecordUseCase) paymentLink(ctx context.Context, rec entities.ServiceRecord) string {
	if u.payments == nil || rec.TotalAmount <= 0 {
		return ""
	}
	link, err := u.payments.CreatePaymentLink(ctx, interfaces.PaymentLinkRequest{
		RecordID:    rec.ID,
		Description: fmt.Sprintf("Service bill %s - %s", rec.BikeModel, rec.CustomerName),
		Amount:      rec.TotalAmount,
	})
	if err != nil {
		log := logger.WithComponent("record.usecase")
		log.Warn().Err(err).Str("record_id", rec.ID).Msg("payment link unavailable")
		return ""
	}
	return link
}

func mapWriteError(op, id string, err error) error {
	if errors.Is(err, interfaces.ErrRecordNotDraft) {
		return fmt.Errorf("%s record %s: %w", op, id, apperrors.ErrInvalidState)
	}
	return err
}
