package client

import (
	"testing"
	"time"

	response "motomind/internal/adapter/http/dto/response"
	"motomind/internal/domain/entities"
)

func TestResolveHasNext(t *testing.T) {
	yes, no := true, false
	cases := []struct {
		name     string
		exact    *bool
		returned int
		pageSize int
		want     bool
	}{
		{name: "full page", returned: 10, pageSize: 10, want: true},
		{name: "short page", returned: 7, pageSize: 10, want: false},
		// The heuristic advertises a next page that may turn out empty.
		{name: "exact boundary without flag", returned: 10, pageSize: 10, want: true},
		{name: "exact boundary with flag", exact: &no, returned: 10, pageSize: 10, want: false},
		{name: "flag wins over short page", exact: &yes, returned: 3, pageSize: 10, want: true},
		{name: "empty page", returned: 0, pageSize: 10, want: false},
		{name: "no page size", returned: 0, pageSize: 0, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveHasNext(tc.exact, tc.returned, tc.pageSize); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestListingQuery_DateRangeResetsPage(t *testing.T) {
	start := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	q := FirstPage().WithPage(4)
	if q.Page != 4 {
		t.Fatalf("expected page 4, got %d", q.Page)
	}
	q = q.WithDateRange(&start, &end)
	if q.Page != 1 {
		t.Fatalf("date filter change must reset page to 1, got %d", q.Page)
	}
	if q.StartDate.Hour() != 0 {
		t.Fatalf("expected start truncated to day, got %v", q.StartDate)
	}
	if q.WithPage(0).Page != 1 {
		t.Fatalf("page must stay >= 1")
	}

	again := FirstPage().WithDateRange(&start, &end)
	if !q.Equal(again) {
		t.Fatalf("expected equal queries")
	}
	if q.Equal(q.WithPage(2)) || q.Equal(FirstPage()) {
		t.Fatalf("expected different queries")
	}
}

func TestSortNewestFirst(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	records := []response.RecordResponse{
		{ID: "a", ServiceDate: "2024-04-02", CreatedAt: t0},
		{ID: "b", ServiceDate: "2024-05-10", CreatedAt: t0},
		{ID: "c", ServiceDate: "2024-04-02", CreatedAt: t0.Add(time.Hour)},
		{ID: "d", ServiceDate: "2023-12-31", CreatedAt: t0},
	}
	SortNewestFirst(records)

	var got []string
	for _, r := range records {
		got = append(got, r.ID)
	}
	want := []string{"b", "c", "a", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestChannelView(t *testing.T) {
	cases := []struct {
		view                              ChannelView
		prompt, canConnect, cancel, deliv bool
	}{
		{view: ChannelView{State: entities.ConnectionDisconnected}, canConnect: true},
		{view: ChannelView{State: entities.ConnectionPairing}, cancel: true},
		{view: ChannelView{State: entities.ConnectionPairing, PairingCode: "ABC"}, prompt: true, cancel: true},
		{view: ChannelView{State: entities.ConnectionConnected}, deliv: true},
	}
	for _, tc := range cases {
		t.Run(string(tc.view.State)+"/"+tc.view.PairingCode, func(t *testing.T) {
			if tc.view.ShowPairingPrompt() != tc.prompt || tc.view.CanConnect() != tc.canConnect ||
				tc.view.CanCancel() != tc.cancel || tc.view.CanDeliver() != tc.deliv {
				t.Fatalf("unexpected gating for %+v", tc.view)
			}
		})
	}
}
