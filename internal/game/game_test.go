package game

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"sweepbox/internal/config"
	"sweepbox/internal/system"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T) (*Game, *system.ManualClock, tcell.SimulationScreen) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	ss.SetSize(80, 30)
	t.Cleanup(ss.Fini)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Sandbox.Seed = 1
	clock := system.NewManualClock(epoch)
	g := New(ss, cfg, zap.NewNop(), WithClock(clock), WithPlayerName("tester"))
	return g, clock, ss
}

func (g *Game) playerXY(t *testing.T) (float64, float64) {
	t.Helper()
	p, ok := g.scene.Pos.Get(g.playerID)
	if !ok {
		t.Fatal("player has no position")
	}
	return p.X(), p.Y()
}

func TestNewLoadsConfiguredArena(t *testing.T) {
	g, _, _ := newTestGame(t)
	if g.arena.ID != "warehouse" {
		t.Errorf("arena = %q, want warehouse", g.arena.ID)
	}
	if !g.scene.World.Alive(g.playerID) {
		t.Fatal("player not alive")
	}
	if g.scene.World.Count() < 2 {
		t.Errorf("Count = %d, want scattered bodies besides the player", g.scene.World.Count())
	}
	x, y := g.playerXY(t)
	if !g.gmap.IsWalkable(int(x), int(y)) {
		t.Errorf("player starts on a wall at (%v,%v)", x, y)
	}
}

func TestSteerAndStep(t *testing.T) {
	g, clock, _ := newTestGame(t)
	x0, y0 := g.playerXY(t)

	g.processAction(ActionMoveE)
	clock.Advance(100 * time.Millisecond)
	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	x1, y1 := g.playerXY(t)
	want := g.cfg.Sandbox.PlayerSpeed * TileSize * 0.1
	if math.Abs(x1-x0-want) > 1e-9 || y1 != y0 {
		t.Errorf("moved (%v,%v) -> (%v,%v), want +%v on x", x0, y0, x1, y1, want)
	}
	if g.ticks != 1 || g.session.Ticks != 1 {
		t.Errorf("ticks = %d/%d, want 1", g.ticks, g.session.Ticks)
	}

	g.processAction(ActionStop)
	vel, _ := g.scene.Vel.Get(g.playerID)
	if !vel.Stopped() {
		t.Errorf("velocity after stop = (%v,%v)", vel.X(), vel.Y())
	}
}

func TestPauseDropsElapsedTime(t *testing.T) {
	g, clock, _ := newTestGame(t)
	x0, _ := g.playerXY(t)

	g.processAction(ActionMoveE)
	g.processAction(ActionPause)
	if !g.paused {
		t.Fatal("expected paused")
	}
	clock.Advance(10 * time.Second)
	g.processAction(ActionPause)
	clock.Advance(100 * time.Millisecond)
	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	x1, _ := g.playerXY(t)
	want := g.cfg.Sandbox.PlayerSpeed * TileSize * 0.1
	if math.Abs(x1-x0-want) > 1e-9 {
		t.Errorf("moved %v after resume, want %v", x1-x0, want)
	}
}

func TestArenaSwitching(t *testing.T) {
	g, _, _ := newTestGame(t)
	first := g.arena.ID

	g.processAction(ActionNextArena)
	if g.arena.ID == first {
		t.Errorf("next arena stayed on %q", first)
	}
	g.processAction(ActionPrevArena)
	if g.arena.ID != first {
		t.Errorf("previous arena = %q, want %q", g.arena.ID, first)
	}
	g.processAction(ActionRegenerate)
	if g.arena.ID != first || g.session.ArenasLoaded != 4 {
		t.Errorf("after regenerate arena=%q loaded=%d", g.arena.ID, g.session.ArenasLoaded)
	}
	if !g.scene.World.Alive(g.playerID) {
		t.Error("player missing after regenerate")
	}
}

func TestQuitActionStops(t *testing.T) {
	g, _, _ := newTestGame(t)
	if g.processAction(ActionQuit) {
		t.Error("quit should return false")
	}
	if !g.processAction(ActionNone) {
		t.Error("unbound action should keep running")
	}
}

func TestRunQuitsOnKeyAndSavesSession(t *testing.T) {
	g, _, ss := newTestGame(t)

	errc := make(chan error, 1)
	go func() { errc <- g.Run(context.Background()) }()
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}

	data, err := os.ReadFile(filepath.Join(os.Getenv("XDG_DATA_HOME"), "sweepbox", "sessions.jsonl"))
	if err != nil {
		t.Fatalf("session log: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty session log")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	g, _, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- g.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
