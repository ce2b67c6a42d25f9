package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateOver        GameStateType = "over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Policy       string
	Length       int
	TargetLength int
	HeadX        int
	HeadY        int
	Dir          Direction
	AppleX       int
	AppleY       int
	Resets       int
	ApplesEaten  int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.over:
		state = StateOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Policy: g.policy.String(),
		State:  state,
	}
	if g.round == nil {
		return snap
	}

	s := g.round.Snake()
	head := s.HeadPosition()
	apple := g.round.Apple().Position()
	snap.Length = s.Length()
	snap.TargetLength = s.TargetLength()
	snap.HeadX = head.X
	snap.HeadY = head.Y
	snap.Dir = s.Direction()
	snap.AppleX = apple.X
	snap.AppleY = apple.Y
	snap.Resets = g.round.Resets()
	snap.ApplesEaten = g.round.ApplesEaten()
	return snap
}
