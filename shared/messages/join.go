package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest asks for a seat in the arena. A token from an earlier
// JoinAccepted resumes the lingering player instead of spawning a new one.
type JoinRequest struct {
	Version        string
	PlayerName     string
	ReconnectToken string
}

// JoinAccepted hands the client its player's network ID and the token to
// present when reconnecting.
type JoinAccepted struct {
	NetworkID      esync.NetworkId
	ReconnectToken string
	Resumed        bool
	ServerName     string
	Arena          string
	TickRate       int
}

// Reject reasons.
const (
	RejectVersion = "version mismatch"
	RejectFull    = "arena full"
)

type JoinRejected struct {
	Reason string
}
