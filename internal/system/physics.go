package system

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"sweepbox/internal/component"
	"sweepbox/internal/ecs"
	"sweepbox/internal/geom"
)

// ErrLengthMismatch is returned when the stores passed to one call do not
// have the same number of slots, so index i would not name the same entity
// in each of them.
var ErrLengthMismatch = errors.New("component stores are not aligned")

// Engine integrates velocities and resolves overlaps once per tick. It keeps
// only the time of the last tick; entities live in the caller's stores.
type Engine struct {
	clock   Clock
	last    time.Time
	maxStep time.Duration
	lastDT  time.Duration
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, typically with a ManualClock in tests.
func WithClock(c Clock) Option { return func(e *Engine) { e.clock = c } }

// WithMaxStep caps the elapsed time one call may consume. Zero means no cap.
func WithMaxStep(d time.Duration) Option { return func(e *Engine) { e.maxStep = d } }

// WithLogger sets the logger used for contact tracing at debug level.
func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

// NewEngine creates an Engine whose first tick is measured from now.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{clock: SystemClock{}, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	e.last = e.clock.Now()
	return e
}

// step returns the seconds elapsed since the previous tick and starts a new one.
func (e *Engine) step() float64 {
	now := e.clock.Now()
	d := now.Sub(e.last)
	if d < 0 {
		// The clock went backwards; keep the later mark so time is never replayed.
		e.lastDT = 0
		return 0
	}
	e.last = now
	if e.maxStep > 0 && d > e.maxStep {
		d = e.maxStep
	}
	e.lastDT = d
	return d.Seconds()
}

// LastStep returns the elapsed time the most recent tick consumed.
func (e *Engine) LastStep() time.Duration { return e.lastDT }

// Sync discards the time elapsed since the last tick, so the next tick is
// measured from now. Callers use it after a pause.
func (e *Engine) Sync() { e.last = e.clock.Now() }

// IntegrateVelocity moves every entity that has both a position and a
// velocity by velocity * dt, where dt is the time since the last tick.
func IntegrateVelocity[P component.Position, V component.Velocity](
	e *Engine,
	pos *ecs.Store[P],
	vel *ecs.Store[V],
) error {
	if err := aligned(pos.Len(), vel.Len()); err != nil {
		return fmt.Errorf("integrate velocity: %w", err)
	}
	integrate(pos, vel, e.step())
	return nil
}

// Resolve sweeps every entity with a position, velocity and physics along
// each axis, stops it flush against the nearest entity it would strike,
// zeroes the velocity of any axis that is blocked by an entity or by m, and
// then integrates the remaining velocity. m may be nil.
//
// Collision reports on every physics component are overwritten, with nil
// when nothing was struck on that axis.
func Resolve[P component.Position, V component.Velocity, PH component.Physics](
	e *Engine,
	pos *ecs.Store[P],
	vel *ecs.Store[V],
	phys *ecs.Store[PH],
	m component.StaticMap,
) error {
	if err := aligned(pos.Len(), vel.Len(), phys.Len()); err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	dt := e.step()

	for i, n := 0, pos.Len(); i < n; i++ {
		p, ok := pos.At(i)
		if !ok {
			continue
		}
		v, ok := vel.At(i)
		if !ok {
			continue
		}
		ph, ok := phys.At(i)
		if !ok {
			continue
		}

		anchor := geom.At(ph.Hitbox(), component.Position(p))
		vx, vy := v.X(), v.Y()
		sweptX := sweepX(anchor, vx*dt)
		sweptY := sweepY(anchor, vy*dt)

		if m != nil {
			if m.Blocked(sweptX) {
				v.SetX(0)
			}
			if m.Blocked(sweptY) {
				v.SetY(0)
			}
		}

		var hitX, hitY *geom.Box
		var gapX, gapY float64
		for j, n := 0, pos.Len(); j < n; j++ {
			if j == i {
				continue
			}
			cp, ok := pos.At(j)
			if !ok {
				continue
			}
			cph, ok := phys.At(j)
			if !ok {
				continue
			}
			cand := geom.At(cph.Hitbox(), component.Position(cp))

			if cand.Intersects(sweptX) {
				gap := cand.X - anchor.Right()
				if vx < 0 {
					gap = cand.Right() - anchor.X
				}
				if hitX == nil || math.Abs(gap) < math.Abs(gapX) {
					box := cand
					hitX, gapX = &box, gap
				}
				v.SetX(0)
			}
			if cand.Intersects(sweptY) {
				gap := cand.Y - anchor.Bottom()
				if vy < 0 {
					gap = cand.Bottom() - anchor.Y
				}
				if hitY == nil || math.Abs(gap) < math.Abs(gapY) {
					box := cand
					hitY, gapY = &box, gap
				}
				v.SetY(0)
			}
		}

		if hitX != nil {
			p.SetX(p.X() + gapX)
			e.traceContact(i, "x", gapX, *hitX)
		}
		if hitY != nil {
			p.SetY(p.Y() + gapY)
			e.traceContact(i, "y", gapY, *hitY)
		}
		ph.SetCollisionX(hitX)
		ph.SetCollisionY(hitY)
	}

	integrate(pos, vel, dt)
	return nil
}

func integrate[P component.Position, V component.Velocity](pos *ecs.Store[P], vel *ecs.Store[V], dt float64) {
	for i, n := 0, pos.Len(); i < n; i++ {
		p, ok := pos.At(i)
		if !ok {
			continue
		}
		v, ok := vel.At(i)
		if !ok {
			continue
		}
		p.SetX(p.X() + v.X()*dt)
		p.SetY(p.Y() + v.Y()*dt)
	}
}

// sweepX extends b along x by the distance d about to be travelled.
// Zero counts as moving in the positive direction.
func sweepX(b geom.Box, d float64) geom.Box {
	if d < 0 {
		b.X += d
	}
	b.W += math.Abs(d)
	return b
}

// sweepY extends b along y by the distance d about to be travelled.
func sweepY(b geom.Box, d float64) geom.Box {
	if d < 0 {
		b.Y += d
	}
	b.H += math.Abs(d)
	return b
}

func aligned(lens ...int) error {
	for _, n := range lens[1:] {
		if n != lens[0] {
			return fmt.Errorf("%w: lengths %v", ErrLengthMismatch, lens)
		}
	}
	return nil
}

func (e *Engine) traceContact(index int, axis string, gap float64, hit geom.Box) {
	if ce := e.log.Check(zap.DebugLevel, "contact"); ce != nil {
		ce.Write(
			zap.Int("index", index),
			zap.String("axis", axis),
			zap.Float64("gap", gap),
			zap.Float64("hit_x", hit.X),
			zap.Float64("hit_y", hit.Y),
		)
	}
}
