package messages

// PlayerInput is sent from client to server each frame with the player's
// controls. Positions are in arena units on the floor plane.
type PlayerInput struct {
	Sequence  uint32 // Incrementing ID, stale inputs are dropped
	MoveX     float64
	MoveZ     float64
	AimX      float64
	AimZ      float64
	Fire      bool
	EquipNext bool
	Pause     bool
}
