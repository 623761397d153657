package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	response "motomind/internal/adapter/http/dto/response"
	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/entities"
	"motomind/pkg/logger"
)

const dashboardComponent = "client.dashboard"

var ErrFinalizeCancelled = errors.New("finalize cancelled by user")

// Confirmer asks the user to acknowledge an irreversible action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// View is what the dashboard shows for the signed-in workshop.
type View struct {
	Query       ListingQuery
	Records     []response.RecordResponse
	HasNextPage bool
	Channel     ChannelView
	// StreamErr is set when the status stream was lost. Resubscribe retries.
	StreamErr error
}

func (v View) clone() View {
	v.Records = slices.Clone(v.Records)
	return v
}

// Dashboard keeps one workshop's record page and channel state in sync with
// the server. The status subscription follows the current identity.
type Dashboard struct {
	store    RecordStore
	stream   StatusStream
	identity IdentityProvider
	confirm  Confirmer
	pageSize int

	mu        sync.Mutex
	view      View
	gen       uint64
	watcher   *watcher
	listeners map[int]func(View)
	nextID    int
	unwatchID func()
}

type watcher struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func NewDashboard(store RecordStore, stream StatusStream, identity IdentityProvider, confirm Confirmer, pageSize int) *Dashboard {
	return &Dashboard{
		store:     store,
		stream:    stream,
		identity:  identity,
		confirm:   confirm,
		pageSize:  pageSize,
		view:      View{Query: FirstPage(), Channel: ChannelView{State: entities.ConnectionDisconnected}},
		listeners: make(map[int]func(View)),
	}
}

// Start subscribes to identity changes and to the current identity's status
// stream. It does not load records; call Refresh.
func (d *Dashboard) Start() {
	unwatch := d.identity.OnIdentityChange(d.switchIdentity)
	d.mu.Lock()
	d.unwatchID = unwatch
	d.mu.Unlock()
	if id := d.identity.CurrentIdentity(); id != nil {
		d.attach(id)
	}
}

// Close tears down the status subscription. It is safe to call twice.
func (d *Dashboard) Close() {
	d.mu.Lock()
	unwatch := d.unwatchID
	d.unwatchID = nil
	d.mu.Unlock()
	if unwatch != nil {
		unwatch()
	}
	d.detach()
}

func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view.clone()
}

// OnChange registers fn for every view change. Calls happen outside the
// dashboard lock, from whichever goroutine made the change.
func (d *Dashboard) OnChange(fn func(View)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}

func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	q := d.view.Query
	d.mu.Unlock()
	return d.load(ctx, q)
}

// SetDateRange filters by service date and goes back to page 1.
func (d *Dashboard) SetDateRange(ctx context.Context, start, end *time.Time) error {
	return d.navigate(ctx, func(q ListingQuery) ListingQuery { return q.WithDateRange(start, end) })
}

func (d *Dashboard) GoToPage(ctx context.Context, page int) error {
	return d.navigate(ctx, func(q ListingQuery) ListingQuery { return q.WithPage(page) })
}

func (d *Dashboard) NextPage(ctx context.Context) error {
	return d.navigate(ctx, func(q ListingQuery) ListingQuery { return q.WithPage(q.Page + 1) })
}

func (d *Dashboard) PrevPage(ctx context.Context) error {
	return d.navigate(ctx, func(q ListingQuery) ListingQuery { return q.WithPage(q.Page - 1) })
}

func (d *Dashboard) navigate(ctx context.Context, next func(ListingQuery) ListingQuery) error {
	d.mu.Lock()
	q := next(d.view.Query)
	d.view.Query = q
	v, fns := d.changedLocked()
	d.mu.Unlock()
	notify(fns, v)
	return d.load(ctx, q)
}

// load fetches q and applies the result only if q is still the current
// query for the same identity.
func (d *Dashboard) load(ctx context.Context, q ListingQuery) error {
	d.mu.Lock()
	gen := d.gen
	d.mu.Unlock()

	res, err := d.store.List(ctx, d.identity.CurrentIdentity(), q.params())
	if err != nil {
		return err
	}
	records := slices.Clone(res.Records)
	SortNewestFirst(records)

	d.mu.Lock()
	if gen != d.gen || !d.view.Query.Equal(q) {
		d.mu.Unlock()
		log := logger.WithComponent(dashboardComponent)
		log.Debug().Int("page", q.Page).Msg("discarding stale listing response")
		return nil
	}
	d.view.Records = records
	d.view.HasNextPage = ResolveHasNext(res.HasNextPage, len(res.Records), d.pageSize)
	v, fns := d.changedLocked()
	d.mu.Unlock()
	notify(fns, v)
	return nil
}

func (d *Dashboard) Create(ctx context.Context, f RecordFields) (string, error) {
	id, err := d.store.Create(ctx, d.identity.CurrentIdentity(), f)
	if err != nil {
		return "", err
	}
	d.refreshAfterWrite(ctx, "create")
	return id, nil
}

func (d *Dashboard) Update(ctx context.Context, recordID string, f RecordFields) error {
	if rec, ok := d.record(recordID); ok && rec.Finalized {
		return fmt.Errorf("%w: record %s is finalized", apperrors.ErrInvalidState, recordID)
	}
	if err := d.store.Update(ctx, d.identity.CurrentIdentity(), recordID, f); err != nil {
		return err
	}
	d.refreshAfterWrite(ctx, "update")
	return nil
}

// Finalize asks for confirmation first. A declined prompt returns
// ErrFinalizeCancelled and sends nothing.
func (d *Dashboard) Finalize(ctx context.Context, recordID string) error {
	if rec, ok := d.record(recordID); ok && rec.Finalized {
		return fmt.Errorf("%w: record %s is already finalized", apperrors.ErrInvalidState, recordID)
	}
	ok, err := d.confirm.Confirm(ctx, "Finalize this record? The bill can no longer be edited.")
	if err != nil {
		return err
	}
	if !ok {
		return ErrFinalizeCancelled
	}
	if err := d.store.Finalize(ctx, d.identity.CurrentIdentity(), recordID); err != nil {
		return err
	}
	d.refreshAfterWrite(ctx, "finalize")
	return nil
}

// Deliver sends the bill. Records known to be drafts and a channel that is
// not connected are refused locally with the matching reason.
func (d *Dashboard) Deliver(ctx context.Context, recordID string) (response.DeliverResponse, error) {
	rec, known := d.record(recordID)
	d.mu.Lock()
	channel := d.view.Channel
	d.mu.Unlock()

	var err error
	switch {
	case known && !rec.Finalized:
		err = apperrors.NotDeliverable(apperrors.ReasonNotFinalized, "")
	case !channel.CanDeliver():
		err = apperrors.NotDeliverable(apperrors.ReasonChannelUnavailable, "")
	}
	if err != nil {
		return response.DeliverResponse{Success: false, Error: err.Error(), Reason: reasonOf(err)}, err
	}
	return d.store.Deliver(ctx, d.identity.CurrentIdentity(), recordID)
}

func reasonOf(err error) string {
	r, _ := apperrors.DeliveryReason(err)
	return string(r)
}

// Connect asks the provider to start pairing. The result arrives on the
// status stream.
func (d *Dashboard) Connect(ctx context.Context) error {
	d.mu.Lock()
	channel := d.view.Channel
	d.mu.Unlock()
	if !channel.CanConnect() {
		return fmt.Errorf("%w: channel is %s", apperrors.ErrInvalidState, channel.State)
	}
	return d.stream.Connect(ctx, d.identity.CurrentIdentity())
}

// CancelPairing abandons the handshake and hides the prompt right away.
func (d *Dashboard) CancelPairing(ctx context.Context) error {
	d.mu.Lock()
	channel := d.view.Channel
	d.mu.Unlock()
	switch channel.State {
	case entities.ConnectionDisconnected, "":
		return nil
	case entities.ConnectionConnected:
		return fmt.Errorf("%w: channel is connected", apperrors.ErrInvalidState)
	}
	if err := d.stream.CancelPairing(ctx, d.identity.CurrentIdentity()); err != nil {
		return err
	}
	d.applySnapshot(d.currentGen(), Snapshot{State: entities.ConnectionDisconnected})
	return nil
}

// Resubscribe reopens the status stream after StreamErr was reported.
func (d *Dashboard) Resubscribe() {
	d.detach()
	if id := d.identity.CurrentIdentity(); id != nil {
		d.attach(id)
	}
}

func (d *Dashboard) refreshAfterWrite(ctx context.Context, op string) {
	if err := d.Refresh(ctx); err != nil {
		log := logger.WithComponent(dashboardComponent)
		log.Warn().Err(err).Str("op", op).Msg("refresh after write failed")
	}
}

func (d *Dashboard) record(recordID string) (response.RecordResponse, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range d.view.Records {
		if r.ID == recordID {
			return r, true
		}
	}
	return response.RecordResponse{}, false
}

func (d *Dashboard) currentGen() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// switchIdentity runs on every identity change, including sign-out (nil).
func (d *Dashboard) switchIdentity(id Identity) {
	d.detach()

	d.mu.Lock()
	d.gen++
	d.view = View{Query: FirstPage(), Channel: ChannelView{State: entities.ConnectionDisconnected}}
	v, fns := d.changedLocked()
	d.mu.Unlock()
	notify(fns, v)

	if id != nil {
		d.attach(id)
	}
}

func (d *Dashboard) attach(id Identity) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{cancel: cancel, done: make(chan struct{})}

	d.mu.Lock()
	d.watcher = w
	d.view.StreamErr = nil
	gen := d.gen
	d.mu.Unlock()

	go d.watch(ctx, id, gen, w.done)
}

func (d *Dashboard) detach() {
	d.mu.Lock()
	w := d.watcher
	d.watcher = nil
	d.mu.Unlock()
	if w == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (d *Dashboard) watch(ctx context.Context, id Identity, gen uint64, done chan struct{}) {
	defer close(done)

	log := logger.WithComponent(dashboardComponent).With().Str("workshop_id", id.ID()).Logger()

	sub, err := d.stream.Subscribe(ctx, id)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn().Err(err).Msg("status subscription failed")
			d.setStreamErr(gen, err)
		}
		return
	}
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-sub.C():
			if !ok {
				if err := sub.Err(); err != nil && ctx.Err() == nil {
					d.setStreamErr(gen, err)
				}
				return
			}
			d.applySnapshot(gen, snap)
		}
	}
}

func (d *Dashboard) applySnapshot(gen uint64, s Snapshot) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.view.Channel = channelViewFrom(s)
	v, fns := d.changedLocked()
	d.mu.Unlock()
	notify(fns, v)
}

func (d *Dashboard) setStreamErr(gen uint64, err error) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.view.StreamErr = err
	v, fns := d.changedLocked()
	d.mu.Unlock()
	notify(fns, v)
}

func (d *Dashboard) changedLocked() (View, []func(View)) {
	ids := make([]int, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(View), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, d.listeners[id])
	}
	return d.view.clone(), fns
}

func notify(fns []func(View), v View) {
	for _, fn := range fns {
		fn(v)
	}
}
