package tui

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/egghunt/internal/core"
	"github.com/vovakirdan/egghunt/internal/games/egghunt"
	"github.com/vovakirdan/egghunt/internal/storage"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelTitleThenGame(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	game := egghunt.New()
	m := NewModel(game, nil, testConfig(), WithClock(clock.now))

	require.True(t, m.onTitle)
	assert.Contains(t, m.View(), "WASD/arrows move")

	m = update(t, m, TickMsg(clock.t.Add(time.Second)))
	assert.Equal(t, time.Duration(0), game.Now(), "title does not run the simulation")

	m = update(t, m, runeKey('x'))
	assert.False(t, m.onTitle, "any key starts the game")
	assert.Equal(t, time.Duration(0), game.Now(), "the starting key is swallowed")

	m = update(t, m, TickMsg(clock.t))
	assert.Equal(t, time.Second/60, game.Now())
	assert.Contains(t, m.View(), "Score")
}

func TestModelShootRepeatSpawnsOnce(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	game := egghunt.New()
	m := NewModel(game, nil, testConfig(), WithClock(clock.now), WithoutTitle())

	m = update(t, m, spaceKey)
	m = update(t, m, TickMsg(clock.t))
	shots := func() int {
		snap := game.Snapshot()
		return len(snap.ProjectileData)/5 + len(snap.DefeatData)/2
	}
	require.Equal(t, 1, shots())

	// Auto-repeat of a held key is not a new press.
	clock.advance(30 * time.Millisecond)
	m = update(t, m, spaceKey)
	update(t, m, TickMsg(clock.t))
	assert.Equal(t, 1, shots())
}

// countingGame records how many steps see a fresh shoot press.
type countingGame struct {
	*egghunt.Game
	shots int
}

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionShoot) {
		g.shots++
	}
	return g.Game.Step(in)
}

func TestModelHeldShootAfterRepeatDelay(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	game := &countingGame{Game: egghunt.New()}
	m := NewModel(game, nil, testConfig(), WithClock(clock.now), WithoutTitle())

	frame := time.Second / 60
	start := clock.t
	m = update(t, m, spaceKey)
	m = update(t, m, TickMsg(clock.t))

	// The terminal starts auto-repeating 500 ms after the press, then repeats
	// every 33 ms while space stays down.
	nextRepeat := start.Add(500 * time.Millisecond)
	for i := 0; i < 60; i++ {
		clock.advance(frame)
		for !clock.t.Before(nextRepeat) {
			m = update(t, m, spaceKey)
			nextRepeat = nextRepeat.Add(33 * time.Millisecond)
		}
		m = update(t, m, TickMsg(clock.t))
	}
	assert.Equal(t, 1, game.shots, "one held press throws one egg")

	// Releasing and pressing again after the repeat delay throws again.
	clock.advance(DefaultRepeatDelay)
	m = update(t, m, spaceKey)
	update(t, m, TickMsg(clock.t))
	assert.Equal(t, 2, game.shots)
}

func TestModelHeldKeyKeepsMoving(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	game := egghunt.New()
	m := NewModel(game, nil, testConfig(), WithClock(clock.now), WithoutTitle(), WithHoldWindow(time.Hour))

	m = update(t, m, runeKey('d'))
	start := game.Snapshot().PlayerX
	for i := 0; i < 30; i++ {
		m = update(t, m, TickMsg(clock.t))
	}
	assert.Greater(t, game.Snapshot().PlayerX, start+32, "held key steps more than once")
}

func TestModelRestartOnlyAfterRunEnds(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	m := NewModel(egghunt.New(), nil, testConfig(), WithClock(clock.now), WithoutTitle())

	m = update(t, m, runeKey('r'))
	assert.False(t, m.inputFrame.Has(core.ActionRestart))

	m = update(t, m, runeKey('p'))
	assert.True(t, m.inputFrame.Has(core.ActionPause))
}

func TestModelQuit(t *testing.T) {
	m := NewModel(egghunt.New(), nil, testConfig(), WithoutTitle())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

// scriptedGame ends the run after a fixed number of steps.
type scriptedGame struct {
	steps  int
	endAt  int
	score  int
	chicks int
	clear  time.Duration
}

func (g *scriptedGame) ID() string { return "egghunt" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *scriptedGame) Render(*core.Screen) {}
func (g *scriptedGame) ChicksDefeated() int { return g.chicks }
func (g *scriptedGame) ClearTime() (time.Duration, bool) {
	return g.clear, g.steps >= g.endAt
}

func (g *scriptedGame) State() core.GameState {
	over := g.steps >= g.endAt
	return core.GameState{Score: g.score, GameOver: over, Won: over}
}

func (g *scriptedGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	game := &scriptedGame{endAt: 2, score: 1500, chicks: 5, clear: 42 * time.Second}
	m := NewModel(game, store, testConfig(), WithoutTitle(), WithPlayer("alice"))

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}

	runs, err := store.TopRuns("egghunt", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, m.runID, runs[0].RunID)
	assert.Equal(t, "alice", runs[0].Player)
	assert.Equal(t, 1500, runs[0].Score)
	assert.Equal(t, 5, runs[0].Chicks)
	assert.Equal(t, 42*time.Second, runs[0].ClearTime)
	assert.True(t, runs[0].Won)
}

func TestModelLogsNewHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.SaveRun(storage.RunEntry{GameID: "egghunt", Score: 1000})
	require.NoError(t, err)

	play := func(score int) string {
		var buf bytes.Buffer
		game := &scriptedGame{endAt: 1, score: score}
		m := NewModel(game, store, testConfig(), WithoutTitle(), WithLogger(log.New(&buf)))
		update(t, m, TickMsg(time.Now()))
		return buf.String()
	}

	assert.NotContains(t, play(800), "new high score")
	out := play(1500)
	assert.Contains(t, out, "new high score")
	assert.Contains(t, out, "previous=1000")

	best, err := store.HighScore("egghunt")
	require.NoError(t, err)
	assert.Equal(t, 1500, best)
}
