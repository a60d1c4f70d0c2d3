package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// State is the round state. Playing is initial; GameOver is terminal and
// entered exactly once, when a freshly spawned piece does not fit. A restart
// is a full re-initialization (Reset), not a state transition back.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input holds the player intents for one simulation tick: at most one
// horizontal move, one soft-drop step, and one clockwise rotation.
type Input struct {
	Left     bool
	Right    bool
	SoftDrop bool
	Rotate   bool
}

// fallTimer accumulates elapsed time and fires when the fall interval is
// crossed, resetting its accumulator to zero.
type fallTimer struct {
	interval float64 // seconds per gravity step
	elapsed  float64
}

func (t *fallTimer) advance(dt float64) bool {
	t.elapsed += dt
	if t.elapsed >= t.interval {
		t.elapsed = 0
		return true
	}
	return false
}

// Package-level variables set by the CLI before game creation
// (same pattern as the rest of the platform's game wiring).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game owns one round of tetris: the field, the falling piece, the score,
// the fall timer, and the round state. It is advanced by one synchronous
// Tick call per time step; there is no internal concurrency.
type Game struct {
	field *Field
	piece Piece
	score int
	lines int // total lines cleared this round
	state State
	timer fallTimer
	rng   *rand.Rand
	tick  uint64

	cfg     config.TetrisConfig
	runtime core.RuntimeConfig

	// Host-level flags; the rules engine itself knows nothing of these.
	paused   bool
	tooSmall bool

	// Layout computed from screen size
	fieldOffsetX int
	fieldOffsetY int
	hudHeight    int
}

// New creates a new tetris game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the round: fresh field, zero score, new
// timer, and a first piece drawn from the seeded RNG.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.state = StatePlaying
	g.paused = false
	g.timer = fallTimer{interval: cfg.FallInterval()}
	g.field = NewField(cfg.Field.Width, cfg.Field.Height)
	g.piece = SpawnPiece(cfg.Field.Width, g.rng.Intn(NumShapes))
	g.hudHeight = 2

	// A spawn that is blocked from the start ends the round immediately.
	if !g.field.Fits(g.piece.Shape, g.piece.Rotation, g.piece.X, g.piece.Y) {
		g.state = StateGameOver
	}

	g.layout()
}

// layout centers the field on screen and flags undersized terminals.
func (g *Game) layout() {
	requiredW := g.field.Width() + 2
	requiredH := g.field.Height() + g.hudHeight + 1
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH
	g.fieldOffsetX = (g.runtime.ScreenW - g.field.Width()) / 2
	g.fieldOffsetY = g.hudHeight
}

// Tick advances the simulation by dt seconds with the given intents and
// returns the round state and score after the step.
//
// Intent order is fixed: horizontal, then soft drop, then rotation; each is
// applied only if the result fits, and silently dropped otherwise. Gravity
// runs last: when the fall timer fires and the piece cannot move down, the
// lock/clear/respawn/game-over sequence completes within this call, so no
// intermediate state is ever observable between ticks.
func (g *Game) Tick(dt float64, in Input) (State, int) {
	if g.state == StateGameOver {
		return g.state, g.score
	}

	dx := 0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if dx != 0 && g.field.Fits(g.piece.Shape, g.piece.Rotation, g.piece.X+dx, g.piece.Y) {
		g.piece.X += dx
	}

	if in.SoftDrop && g.field.Fits(g.piece.Shape, g.piece.Rotation, g.piece.X, g.piece.Y+1) {
		g.piece.Y++
	}

	if in.Rotate {
		rotation := (g.piece.Rotation + 1) % 4
		if g.field.Fits(g.piece.Shape, rotation, g.piece.X, g.piece.Y) {
			g.piece.Rotation = rotation
		}
	}

	if g.timer.advance(dt) {
		if g.field.Fits(g.piece.Shape, g.piece.Rotation, g.piece.X, g.piece.Y+1) {
			g.piece.Y++
		} else {
			g.lockAndRespawn()
		}
	}

	return g.state, g.score
}

// lockAndRespawn commits the piece, scores the lock and any cleared lines,
// spawns the next piece, and detects game over.
func (g *Game) lockAndRespawn() {
	g.field.LockPiece(g.piece)
	g.score += g.cfg.Scoring.LockBonus

	if n := g.field.ClearLines(); n > 0 {
		g.score += (1 << n) * g.cfg.Scoring.LineBase
		g.lines += n
	}

	g.piece = SpawnPiece(g.field.Width(), g.rng.Intn(NumShapes))
	if !g.field.Fits(g.piece.Shape, g.piece.Rotation, g.piece.X, g.piece.Y) {
		g.state = StateGameOver
	}
}

// Step advances the game by one fixed platform tick, translating frame
// actions into intents. Pause and restart are handled here, outside the
// rules engine proper.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.state == StatePlaying {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	g.Tick(1.0/float64(tickRate), Input{
		Left:     input.Has(core.ActionLeft),
		Right:    input.Has(core.ActionRight),
		SoftDrop: input.Has(core.ActionSoftDrop),
		Rotate:   input.Has(core.ActionRotate),
	})

	return core.StepResult{State: g.State()}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}

// Field exposes the playfield, for rendering and tests.
func (g *Game) Field() *Field {
	return g.field
}

// ActivePiece returns the currently falling piece.
func (g *Game) ActivePiece() Piece {
	return g.piece
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the total lines cleared this round.
func (g *Game) Lines() int {
	return g.lines
}
