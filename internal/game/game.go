package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"sweepbox/assets"
	"sweepbox/internal/component"
	"sweepbox/internal/config"
	"sweepbox/internal/ecs"
	"sweepbox/internal/factory"
	"sweepbox/internal/gamemap"
	"sweepbox/internal/generate"
	"sweepbox/internal/geom"
	"sweepbox/internal/render"
	"sweepbox/internal/scene"
	"sweepbox/internal/system"
)

const maxMessages = 50

// Game is one sandbox session on one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	scene    *scene.Scene
	gmap     *gamemap.GameMap
	engine   *system.Engine
	clock    system.Clock
	cfg      *config.Config
	arena    assets.ArenaDef
	rng      *rand.Rand
	log      *zap.Logger
	playerID ecs.EntityID
	messages []string
	paused   bool
	ticks    uint64
	touching bool // the player had a contact on the previous tick
	contacts []system.Contact
	session  SessionLog
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock driving the engine.
func WithClock(c system.Clock) Option { return func(g *Game) { g.clock = c } }

// WithPlayerName records who is playing in the session log.
func WithPlayerName(name string) Option { return func(g *Game) { g.session.Player = name } }

// New creates a Game drawing to screen, which must already be initialised.
// The configured arena is generated immediately.
func New(screen tcell.Screen, cfg *config.Config, log *zap.Logger, opts ...Option) *Game {
	g := &Game{
		screen: screen,
		clock:  system.SystemClock{},
		cfg:    cfg,
		log:    log,
	}
	for _, opt := range opts {
		opt(g)
	}

	seed := cfg.Sandbox.Seed
	if seed == 0 {
		seed = g.clock.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.session.Seed = seed
	g.session.Started = g.clock.Now()

	arena, ok := assets.ArenaByID(cfg.Sandbox.Arena)
	if !ok {
		log.Warn("unknown arena, using default", zap.String("arena", cfg.Sandbox.Arena))
		arena = assets.Arenas[0]
	}
	g.loadArena(arena)
	return g
}

// loadArena generates a fresh map for a and repopulates the scene.
func (g *Game) loadArena(a assets.ArenaDef) {
	g.arena = a
	g.session.Arena = a.ID
	g.session.ArenasLoaded++

	g.scene, g.gmap, g.playerID = BuildArena(a, g.cfg.Sandbox, g.rng)

	g.engine = system.NewEngine(
		system.WithClock(g.clock),
		system.WithMaxStep(g.cfg.Engine.MaxStep.Duration),
		system.WithLogger(g.log.Named("engine")),
	)
	g.renderer = render.NewRenderer(g.screen, a.Tiles, TileSize)
	g.centerCamera()
	g.touching = false
	g.contacts = nil

	g.log.Info("arena loaded",
		zap.String("arena", a.ID),
		zap.Int("rooms", len(g.gmap.Rooms)),
		zap.Int("bodies", g.scene.World.Count()),
	)
	g.addMessage(fmt.Sprintf("Entered the %s. hjklyubn to steer, space to stop, tab for the next arena.", a.Name))
}

// BuildArena generates a map for a and a scene holding the player in the
// first room plus the scattered crates and drifters.
func BuildArena(a assets.ArenaDef, sb config.SandboxConfig, rng *rand.Rand) (*scene.Scene, *gamemap.GameMap, ecs.EntityID) {
	cfg := arenaConfig(a, sb, rng)
	gmap, px, py := generate.Generate(cfg)

	spawns := generate.Scatter(gmap, cfg)
	s := scene.New(len(spawns) + 1)
	player := factory.NewPlayer(s, float64(px)*TileSize, float64(py)*TileSize, TileSize)
	factory.Populate(s, spawns, TileSize, sb.DriftSpeed, rng)
	return s, gmap, player
}

// Run drives the sandbox until the player quits, the screen closes or ctx
// is cancelled. The session log is written on the way out.
func (g *Game) Run(ctx context.Context) error {
	defer g.finish()

	// Start an async input reader goroutine.
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.Sandbox.TickRate.Duration)
	defer ticker.Stop()

	g.engine.Sync()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil // screen closed / disconnected
			}
			if !g.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if g.paused {
				continue
			}
			if err := g.step(); err != nil {
				return err
			}
			g.draw()
		}
	}
}

// handleEvent applies one input event. It returns false when the player quits.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.centerCamera()
		g.draw()
	case *tcell.EventKey:
		return g.processAction(keyToAction(ev))
	}
	return true
}

// processAction handles one player action. It returns false on quit.
func (g *Game) processAction(action Action) bool {
	if dx, dy, ok := actionToDelta(action); ok {
		if vel, found := g.scene.Vel.Get(g.playerID); found {
			system.Steer(vel, dx, dy, g.cfg.Sandbox.PlayerSpeed*TileSize)
		}
		return true
	}

	switch action {
	case ActionQuit:
		return false
	case ActionPause:
		g.paused = !g.paused
		if g.paused {
			g.addMessage("Paused.")
		} else {
			// Time spent paused is not simulated.
			g.engine.Sync()
			g.addMessage("Resumed.")
		}
		g.draw()
	case ActionRegenerate:
		g.loadArena(g.arena)
		g.draw()
	case ActionNextArena:
		g.loadArena(cycleArena(g.arena.ID, 1))
		g.draw()
	case ActionPrevArena:
		g.loadArena(cycleArena(g.arena.ID, -1))
		g.draw()
	}
	return true
}

// step advances the simulation by one tick.
func (g *Game) step() error {
	t, err := g.scene.Step(g.engine, g.gmap)
	if err != nil {
		return fmt.Errorf("tick %d: %w", g.ticks, err)
	}
	g.ticks++
	g.session.Ticks++
	g.session.Contacts += len(t.Contacts)
	g.session.Bounces += t.Bounces

	g.contacts = g.contacts[:0]
	for _, c := range t.Contacts {
		if c.Index == g.playerID.Index() {
			g.contacts = append(g.contacts, c)
		}
	}
	touching := len(g.contacts) > 0
	if touching && !g.touching {
		c := g.contacts[0]
		g.addMessage(fmt.Sprintf("Bumped into something on %s at (%.1f, %.1f).", c.Axis, c.Hit.X, c.Hit.Y))
	}
	g.touching = touching

	if box, ok := g.playerBox(); ok {
		g.renderer.Camera().PanTo(box)
	}
	return nil
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.scene, g.gmap)
	st := render.Status{
		Arena:    g.arena.Name,
		Tick:     g.ticks,
		DT:       g.engine.LastStep(),
		Contacts: g.contacts,
		Bodies:   g.scene.World.Count(),
	}
	if p, ok := g.scene.Pos.Get(g.playerID); ok {
		st.Pos = geom.Vec{X: p.X(), Y: p.Y()}
	}
	if v, ok := g.scene.Vel.Get(g.playerID); ok {
		st.Vel = geom.Vec{X: v.X(), Y: v.Y()}
	}
	g.renderer.DrawHUD(st, g.messages)
}

// playerBox returns the player's hitbox in world space.
func (g *Game) playerBox() (geom.Box, bool) {
	p, ok := g.scene.Pos.Get(g.playerID)
	if !ok {
		return geom.Box{}, false
	}
	b, ok := g.scene.Body.Get(g.playerID)
	if !ok {
		return geom.Box{}, false
	}
	return geom.At(b.Hitbox(), component.Position(p)), true
}

func (g *Game) centerCamera() {
	if box, ok := g.playerBox(); ok {
		g.renderer.Camera().Center(box.Center())
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// finish records the session. A failed write is logged, never fatal.
func (g *Game) finish() {
	g.session.DurationMS = g.clock.Now().Sub(g.session.Started).Milliseconds()
	if err := saveSessionLog(g.session); err != nil {
		g.log.Warn("save session log", zap.Error(err))
	}
	g.log.Info("session finished",
		zap.String("player", g.session.Player),
		zap.Uint64("ticks", g.session.Ticks),
		zap.Int("contacts", g.session.Contacts),
	)
}
