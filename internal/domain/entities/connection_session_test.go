package entities

import "testing"

func TestConnectionSession_Normalize(t *testing.T) {
	cases := []struct {
		name     string
		in       ConnectionSession
		state    ConnectionState
		wantCode string
	}{
		{name: "pairing keeps code", in: ConnectionSession{State: ConnectionPairing, PairingCode: "abc"}, state: ConnectionPairing, wantCode: "abc"},
		{name: "connected drops code", in: ConnectionSession{State: ConnectionConnected, PairingCode: "abc"}, state: ConnectionConnected},
		{name: "empty state is disconnected", in: ConnectionSession{PairingCode: "abc"}, state: ConnectionDisconnected},
		{name: "unknown state is disconnected", in: ConnectionSession{State: "qr"}, state: ConnectionDisconnected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.State != tc.state || got.PairingCode != tc.wantCode {
				t.Fatalf("unexpected session: %+v", got)
			}
		})
	}
}

func TestParseBikeModel(t *testing.T) {
	m, ok := ParseBikeModel("  cg125 self ")
	if !ok || m != BikeModelCG125Self {
		t.Fatalf("unexpected parse result %q ok=%v", m, ok)
	}
	if _, ok := ParseBikeModel("Vespa"); ok {
		t.Fatalf("unknown model must not parse")
	}
	if len(BikeModels()) != 7 {
		t.Fatalf("expected 7 models")
	}
}
