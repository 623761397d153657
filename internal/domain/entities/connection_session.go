package entities

import "time"

type ConnectionState string

const (
	ConnectionDisconnected ConnectionState = "disconnected"
	ConnectionPairing      ConnectionState = "pairing"
	ConnectionConnected    ConnectionState = "connected"
)

// Valid reports whether s is a known state.
func (s ConnectionState) Valid() bool {
	switch s {
	case ConnectionDisconnected, ConnectionPairing, ConnectionConnected:
		return true
	}
	return false
}

// ConnectionSession is the pairing state of a workshop's messaging channel.
// There is one session per workshop; an absent session reads as disconnected.
type ConnectionSession struct {
	WorkshopID  string          `json:"workshop_id"`
	State       ConnectionState `json:"state"`
	PairingCode string          `json:"pairing_code,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DisconnectedSession is the implicit session of a workshop that never connected.
func DisconnectedSession(workshopID string) ConnectionSession {
	return ConnectionSession{WorkshopID: workshopID, State: ConnectionDisconnected}
}

// Normalize drops the pairing code outside the pairing state and maps an
// unknown or empty state to disconnected.
func (s ConnectionSession) Normalize() ConnectionSession {
	if !s.State.Valid() {
		s.State = ConnectionDisconnected
	}
	if s.State != ConnectionPairing {
		s.PairingCode = ""
	}
	return s
}
