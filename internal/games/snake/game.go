package snake

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Game adapts a Round to the platform's registry.Game interface.
type Game struct {
	id     string
	title  string
	policy BoundaryPolicy

	seed  int64
	rng   *rand.Rand
	grid  Grid
	round *Round
	tick  uint64
	last  TickResult

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
	over     bool
	err      error // Why the game is over
}

// NewGame creates a Snake game with the given registry ID, title and
// boundary policy. Call Reset before stepping it.
func NewGame(id, title string, policy BoundaryPolicy) *Game {
	return &Game{
		id:     id,
		title:  title,
		policy: policy,
	}
}

// New creates the classic game: the board wraps at its edges.
func New() *Game {
	return NewGame("snake", "Snake", BoundaryWrap)
}

// NewWalls creates a game whose edges reset the snake like its own body.
func NewWalls() *Game {
	return NewGame("snake_walls", "Snake (Walls)", BoundaryReset)
}

// NewHardcore creates a game that ends as soon as the snake leaves the board.
func NewHardcore() *Game {
	return NewGame("snake_hardcore", "Snake (Hardcore)", BoundaryFatal)
}

// now seeds games reset with Seed 0.
var now = time.Now

func init() {
	registry.Register("snake", func() registry.Game { return New() })
	registry.Register("snake_walls", func() registry.Game { return NewWalls() })
	registry.Register("snake_hardcore", func() registry.Game { return NewHardcore() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset starts a new round using the board size and seed from cfg.
// Zero grid fields fall back to core.DefaultConfig.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.GridW == 0 {
		cfg.GridW = def.GridW
	}
	if cfg.GridH == 0 {
		cfg.GridH = def.GridH
	}
	if cfg.CellSize == 0 {
		cfg.CellSize = def.CellSize
	}

	if cfg.Seed == 0 {
		cfg.Seed = now().UnixNano()
	}
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(uint64(cfg.Seed)))
	g.tick = 0
	g.last = TickResult{}
	g.paused = false
	g.over = false
	g.err = nil

	grid, err := NewGrid(cfg.CellSize, cfg.GridW, cfg.GridH)
	if err != nil {
		g.round = nil
		g.over = true
		g.err = err
		return
	}
	g.grid = grid
	g.round = NewRound(grid, g.policy, g.rng)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the terminal size used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.round == nil {
		return
	}
	boardW, boardH := g.boardSize()
	g.tooSmall = w < boardW || h < boardH+hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.over || g.round == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	res, err := g.round.Tick(directionFor(input))
	g.last = res

	events := make([]core.Event, 0, len(res.Events))
	for _, e := range res.Events {
		events = append(events, core.Event(e))
	}

	if err != nil {
		g.over = true
		g.err = err
	}
	return core.StepResult{State: g.State(), Events: events, Err: err}
}

// directionFor picks the most recent movement key of the frame.
func directionFor(input core.InputFrame) Direction {
	switch input.Latest(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// State returns the current game state. The score is the number of apples
// eaten since the last reset.
func (g *Game) State() core.GameState {
	score := 0
	if g.round != nil {
		score = g.round.Snake().TargetLength() - 1
	}
	return core.GameState{
		Score:    score,
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Seed returns the seed the last Reset used, after resolving 0 to the clock.
func (g *Game) Seed() int64 { return g.seed }

// Round exposes the running round, or nil if Reset failed.
func (g *Game) Round() *Round { return g.round }

// Grid returns the board geometry of the running round.
func (g *Game) Grid() Grid { return g.grid }

// Drawables returns the objects to paint this frame.
func (g *Game) Drawables() []Drawable {
	if g.round == nil {
		return nil
	}
	return g.round.Drawables()
}

// Err returns the error that ended the game, if any.
func (g *Game) Err() error { return g.err }
