package messages

// PlayerInput is sent from client to server each frame with the player's input state.
// Used for server-side movement processing and client-side prediction reconciliation.
type PlayerInput struct {
	Sequence  uint32  // Incrementing ID for reconciliation
	MoveX     float64 // Desired ground direction, unnormalized
	MoveY     float64
	Sprint    bool
	Crouch    bool
	Aim       bool
	Shoot     bool  // edge-triggered on the server
	UsePotion bool  // edge-triggered on the server
	Weapon    int   // WeaponSlot
	Timestamp int64 // Client timestamp (Unix ms)
}
