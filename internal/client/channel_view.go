package client

import "motomind/internal/domain/entities"

// ChannelView is the UI gating derived from the latest snapshot.
type ChannelView struct {
	State       entities.ConnectionState
	PairingCode string
}

func channelViewFrom(s Snapshot) ChannelView {
	return ChannelView{State: s.State, PairingCode: s.PairingCode}
}

// ShowPairingPrompt is true while pairing with a code to scan.
func (v ChannelView) ShowPairingPrompt() bool {
	return v.State == entities.ConnectionPairing && v.PairingCode != ""
}

// CanConnect reports whether "connect" should be offered.
func (v ChannelView) CanConnect() bool {
	return v.State == "" || v.State == entities.ConnectionDisconnected
}

func (v ChannelView) CanCancel() bool {
	return v.State == entities.ConnectionPairing
}

func (v ChannelView) CanDeliver() bool {
	return v.State == entities.ConnectionConnected
}
