package snake

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	return cfg
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New()
	g1.Reset(testConfig())

	g2 := New()
	g2.Reset(testConfig())

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 40:
			input.Set(core.ActionLeft)
		case 90:
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

// appleSequence resets g and returns where the apple lands over a few
// relocations.
func appleSequence(g *Game, cfg core.RuntimeConfig) []Cell {
	g.Reset(cfg)
	r := g.Round()
	seq := []Cell{r.Apple().Position()}
	for range 4 {
		seq = append(seq, r.Apple().Relocate(r.Snake().Occupied()))
	}
	return seq
}

func TestSeedZeroUsesClock(t *testing.T) {
	launch := time.Unix(1_700_000_000, 0)
	defer func(orig func() time.Time) { now = orig }(now)
	now = func() time.Time {
		launch = launch.Add(time.Second)
		return launch
	}

	cfg := core.DefaultConfig()
	if cfg.Seed != 0 {
		t.Fatalf("default seed = %d, want 0", cfg.Seed)
	}

	g := New()
	first := appleSequence(g, cfg)
	firstSeed := g.Seed()
	second := appleSequence(g, cfg)

	if firstSeed == 0 || g.Seed() == 0 {
		t.Errorf("seed 0 was not replaced: %d, %d", firstSeed, g.Seed())
	}
	if firstSeed == g.Seed() {
		t.Errorf("both launches used seed %d", firstSeed)
	}
	if slices.Equal(first, second) {
		t.Errorf("seed 0 replayed the same apples: %v", first)
	}
}

func TestFixedSeedRepeats(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42

	first := appleSequence(New(), cfg)
	second := appleSequence(New(), cfg)
	if !slices.Equal(first, second) {
		t.Errorf("seed 42 gave %v then %v", first, second)
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := New()
	res := g.Step(core.NewInputFrame())
	if res.Err != nil || res.State.Score != 0 {
		t.Errorf("Step before Reset = %+v", res)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if dir := g.Round().Snake().Direction(); dir != DirRight {
		t.Errorf("direction = %v, want right", dir)
	}
}

func TestLatestKeyWins(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	input.Set(core.ActionUp)
	g.Step(input)

	if dir := g.Round().Snake().Direction(); dir != DirUp {
		t.Errorf("direction = %v, want up", dir)
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	if before.HeadX != after.HeadX || before.HeadY != after.HeadY {
		t.Error("snake moved while paused")
	}
	if after.State != StatePaused {
		t.Errorf("state = %s, want paused", after.State)
	}

	if res := g.Step(pause); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestHardcoreEndsWithError(t *testing.T) {
	g := NewHardcore()
	g.Reset(testConfig())

	var res core.StepResult
	for i := 0; i < 16; i++ {
		res = g.Step(core.NewInputFrame())
		if res.Err != nil && i < 15 {
			t.Fatalf("tick %d: early error %v", i, res.Err)
		}
	}

	if !errors.Is(res.Err, ErrOutOfBounds) {
		t.Fatalf("error = %v, want ErrOutOfBounds", res.Err)
	}
	if !res.State.GameOver {
		t.Error("expected game over")
	}

	// Further steps keep reporting the same error.
	if again := g.Step(core.NewInputFrame()); !errors.Is(again.Err, ErrOutOfBounds) {
		t.Errorf("error after game over = %v", again.Err)
	}
	if g.Snapshot().State != StateOver {
		t.Errorf("state = %s, want over", g.Snapshot().State)
	}
}

func TestInvalidGridReported(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.GridW = MaxGridDimension + 1
	g.Reset(cfg)

	res := g.Step(core.NewInputFrame())
	if !errors.Is(res.Err, ErrInvalidGrid) {
		t.Errorf("error = %v, want ErrInvalidGrid", res.Err)
	}
}

func TestScoreCountsApplesSinceReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Round().apple.position = Cell{17, 12}

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 1 {
		t.Errorf("score = %d, want 1", res.State.Score)
	}
	if len(res.Events) != 1 || res.Events[0] != core.Event(EventAteApple) {
		t.Errorf("events = %v", res.Events)
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	hud := strings.Split(screen.String(), "\n")[0]
	if !strings.Contains(hud, "Length: 1") {
		t.Errorf("HUD row = %q", hud)
	}

	// Board frame is 34x26 centred below the HUD; the head sits at the
	// centre cell (16,12) inside it.
	frameX := (cfg.ScreenW - 34) / 2
	if c := screen.GetCell(frameX, hudHeight); c.Rune != '┌' {
		t.Errorf("frame corner = %q", c.Rune)
	}
	head := screen.GetCell(frameX+1+16, hudHeight+1+12)
	if head.Rune != 'O' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", head)
	}

	apple := g.Round().Apple().Position()
	if c := screen.GetCell(frameX+1+apple.X, hudHeight+1+apple.Y); c.Rune != '*' {
		t.Errorf("apple cell = %+v", c)
	}
}

func TestTooSmallPauses(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Resize(20, 10)

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()

	if after.State != StatePausedSmall {
		t.Errorf("state = %s, want %s", after.State, StatePausedSmall)
	}
	if before.HeadX != after.HeadX {
		t.Error("snake moved in a too-small terminal")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}

	g.Resize(80, 30)
	g.Step(core.NewInputFrame())
	if g.Snapshot().HeadX == after.HeadX {
		t.Error("snake should move again after resize")
	}
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id     string
		policy BoundaryPolicy
	}{
		{"snake", BoundaryWrap},
		{"snake_walls", BoundaryReset},
		{"snake_hardcore", BoundaryFatal},
	}

	for _, tt := range tests {
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q): %v", tt.id, err)
		}
		sg, ok := g.(*Game)
		if !ok {
			t.Fatalf("Create(%q) returned %T", tt.id, g)
		}
		if sg.ID() != tt.id || sg.policy != tt.policy {
			t.Errorf("%s: id=%s policy=%v", tt.id, sg.ID(), sg.policy)
		}
	}
}
