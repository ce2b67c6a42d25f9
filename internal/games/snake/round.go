package snake

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// BoundaryPolicy decides what happens when the head leaves the board.
type BoundaryPolicy int

const (
	// BoundaryWrap moves the head to the opposite edge.
	BoundaryWrap BoundaryPolicy = iota
	// BoundaryReset treats the edge like the snake's own body: the round restarts.
	BoundaryReset
	// BoundaryFatal ends the game with ErrOutOfBounds.
	BoundaryFatal
)

func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryWrap:
		return "wrap"
	case BoundaryReset:
		return "reset"
	case BoundaryFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseBoundaryPolicy parses "wrap", "reset" or "fatal".
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return BoundaryWrap, nil
	case "reset":
		return BoundaryReset, nil
	case "fatal":
		return BoundaryFatal, nil
	default:
		return 0, fmt.Errorf("snake: unknown boundary policy %q", s)
	}
}

// ErrOutOfBounds is returned by Round.Tick under BoundaryFatal.
var ErrOutOfBounds = errors.New("snake: head left the board")

// Event is something that happened during a tick.
type Event string

const (
	EventAteApple      Event = "apple_eaten"
	EventSelfCollision Event = "self_collision"
	EventWallCollision Event = "wall_collision"
	EventWrapped       Event = "wrapped"
)

// TickResult reports what a tick did.
type TickResult struct {
	Events []Event

	// Vacated is the cell the tail left this tick, if HasVacated.
	Vacated    Cell
	HasVacated bool
}

// Has reports whether e happened during the tick.
func (r TickResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// Round wires a Snake and an Apple together on one Grid and runs the
// per-tick rules. All calls must come from a single goroutine.
type Round struct {
	grid   Grid
	policy BoundaryPolicy
	snake  *Snake
	apple  *Apple

	ticks      uint64
	applesEver int
	resets     int
	best       int
}

// NewRound starts a fresh round. rng drives apple placement.
func NewRound(grid Grid, policy BoundaryPolicy, rng *rand.Rand) *Round {
	r := &Round{
		grid:   grid,
		policy: policy,
		snake:  NewSnake(grid),
		apple:  NewApple(grid, rng),
		best:   1,
	}
	// The first random pick may land on the centre cell.
	if r.snake.Occupies(r.apple.Position()) {
		r.apple.Relocate(r.snake.Occupied())
	}
	return r
}

// Tick runs one game tick:
//
//  1. apply at most one direction request,
//  2. advance the snake,
//  3. apply the boundary policy,
//  4. eat the apple under the head, growing and relocating it,
//  5. reset on self-collision, relocating the apple.
//
// The error is non-nil only under BoundaryFatal, wrapping ErrOutOfBounds.
func (r *Round) Tick(input Direction) (TickResult, error) {
	r.ticks++

	if input != DirNone {
		r.snake.SetPendingDirection(input)
	}
	r.snake.Advance()

	var res TickResult
	res.Vacated, res.HasVacated = r.snake.LastVacatedCell()

	if r.snake.CheckBoundaryCollision(r.grid) {
		switch r.policy {
		case BoundaryWrap:
			r.snake.WrapHead(r.grid)
			res.Events = append(res.Events, EventWrapped)
		case BoundaryReset:
			r.restart()
			res.Events = append(res.Events, EventWallCollision)
			return res, nil
		default:
			res.Events = append(res.Events, EventWallCollision)
			return res, fmt.Errorf("%w at %s", ErrOutOfBounds, r.snake.HeadPosition())
		}
	}

	if r.snake.HeadPosition() == r.apple.Position() {
		r.snake.Grow()
		r.apple.Relocate(r.snake.Occupied())
		r.applesEver++
		r.best = max(r.best, r.snake.TargetLength())
		res.Events = append(res.Events, EventAteApple)
	}

	if r.snake.CheckSelfCollision() {
		r.restart()
		res.Events = append(res.Events, EventSelfCollision)
	}

	return res, nil
}

func (r *Round) restart() {
	r.snake.Reset()
	r.apple.Relocate(r.snake.Occupied())
	r.resets++
}

// Drawables returns what a shell draws each frame, in paint order.
func (r *Round) Drawables() []Drawable {
	return []Drawable{r.snake, r.apple}
}

// Grid returns the board geometry.
func (r *Round) Grid() Grid { return r.grid }

// Policy returns the boundary policy.
func (r *Round) Policy() BoundaryPolicy { return r.policy }

// Snake returns the round's snake.
func (r *Round) Snake() *Snake { return r.snake }

// Apple returns the round's apple.
func (r *Round) Apple() *Apple { return r.apple }

// Ticks returns the number of ticks run so far.
func (r *Round) Ticks() uint64 { return r.ticks }

// ApplesEaten returns the apples eaten since the round was created.
func (r *Round) ApplesEaten() int { return r.applesEver }

// Resets returns how many times the snake was reset by a collision.
func (r *Round) Resets() int { return r.resets }

// BestLength returns the longest target length reached.
func (r *Round) BestLength() int { return r.best }
