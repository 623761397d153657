package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	request "motomind/internal/adapter/http/dto/request"
	response "motomind/internal/adapter/http/dto/response"
)

// RecordFields is the editable part of a record, in wire form.
type RecordFields = request.RecordRequest

// ListParams selects one page of records.
type ListParams struct {
	Page      int
	StartDate *time.Time
	EndDate   *time.Time
}

// ListResult is one page. HasNextPage is nil when the server did not say.
type ListResult struct {
	Records     []response.RecordResponse
	HasNextPage *bool
}

// RecordStore is the record API as the dashboard sees it.
type RecordStore interface {
	List(ctx context.Context, id Identity, p ListParams) (ListResult, error)
	Create(ctx context.Context, id Identity, f RecordFields) (string, error)
	Update(ctx context.Context, id Identity, recordID string, f RecordFields) error
	Finalize(ctx context.Context, id Identity, recordID string) error
	Deliver(ctx context.Context, id Identity, recordID string) (response.DeliverResponse, error)
}

// HTTPRecordStore calls the /v1/records API.
type HTTPRecordStore struct {
	BaseURL string
	HTTP    *http.Client
}

var _ RecordStore = (*HTTPRecordStore)(nil)

func NewHTTPRecordStore(baseURL string) *HTTPRecordStore {
	return &HTTPRecordStore{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (s *HTTPRecordStore) List(ctx context.Context, id Identity, p ListParams) (ListResult, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.StartDate != nil {
		q.Set("start_date", p.StartDate.Format(request.DateLayout))
	}
	if p.EndDate != nil {
		q.Set("end_date", p.EndDate.Format(request.DateLayout))
	}

	var page response.RecordPageResponse
	if err := s.do(ctx, id, http.MethodGet, "/v1/records", q, nil, &page); err != nil {
		return ListResult{}, err
	}
	return ListResult{Records: page.Records, HasNextPage: page.HasNextPage}, nil
}

func (s *HTTPRecordStore) Create(ctx context.Context, id Identity, f RecordFields) (string, error) {
	var rec response.RecordResponse
	if err := s.do(ctx, id, http.MethodPost, "/v1/records", nil, f, &rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *HTTPRecordStore) Update(ctx context.Context, id Identity, recordID string, f RecordFields) error {
	return s.do(ctx, id, http.MethodPut, "/v1/records/"+url.PathEscape(recordID), nil, f, nil)
}

func (s *HTTPRecordStore) Finalize(ctx context.Context, id Identity, recordID string) error {
	return s.do(ctx, id, http.MethodPost, "/v1/records/"+url.PathEscape(recordID)+"/finalize", nil, nil, nil)
}

// Deliver returns the server's {success, error} body. A refused delivery is
// also returned as a NotDeliverableError.
func (s *HTTPRecordStore) Deliver(ctx context.Context, id Identity, recordID string) (response.DeliverResponse, error) {
	var out response.DeliverResponse
	err := s.do(ctx, id, http.MethodPost, "/v1/records/"+url.PathEscape(recordID)+"/send", nil, nil, &out)
	return out, err
}

func (s *HTTPRecordStore) do(ctx context.Context, id Identity, method, path string, q url.Values, in, out any) error {
	return doJSON(ctx, s.HTTP, s.BaseURL, id, method, path, q, in, out)
}
