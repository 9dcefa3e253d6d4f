// sweepbox-bench runs the collision engine headless on a generated arena
// and reports tick throughput. Profiling:
//
//	go build ./cmd/bench
//	./bench -profile cpu -bodies 400 -ticks 5000
//	go tool pprof -http=":8000" ./bench cpu.pprof
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"sweepbox/assets"
	"sweepbox/internal/config"
	"sweepbox/internal/game"
	"sweepbox/internal/logging"
	"sweepbox/internal/system"
)

type options struct {
	configPath string
	arena      string
	bodies     int
	ticks      int
	step       time.Duration
	seed       int64
	profile    string
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	flag.StringVar(&o.arena, "arena", "", "Arena preset (overrides [sandbox] arena)")
	flag.IntVar(&o.bodies, "bodies", 200, "Drifters to scatter; crates come from the config")
	flag.IntVar(&o.ticks, "ticks", 2000, "Ticks to simulate")
	flag.DurationVar(&o.step, "step", 16*time.Millisecond, "Simulated time per tick")
	flag.Int64Var(&o.seed, "seed", 1, "Generator seed")
	flag.StringVar(&o.profile, "profile", "", "Write a profile to the working directory: cpu or mem")
	flag.Parse()

	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// result summarises one benchmark run.
type result struct {
	Ticks    int
	Bodies   int
	Contacts int
	Bounces  int
	Elapsed  time.Duration
}

func (r result) ticksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Elapsed.Seconds()
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.arena != "" {
		cfg.Sandbox.Arena = o.arena
	}
	cfg.Sandbox.Drifters = o.bodies

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	switch o.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q, want cpu or mem", o.profile)
	}

	res, err := simulate(cfg, o)
	if err != nil {
		return err
	}
	log.Info("benchmark finished",
		zap.String("arena", cfg.Sandbox.Arena),
		zap.Int("ticks", res.Ticks),
		zap.Int("bodies", res.Bodies),
		zap.Int("contacts", res.Contacts),
		zap.Int("bounces", res.Bounces),
		zap.Duration("elapsed", res.Elapsed),
		zap.Float64("ticks_per_sec", res.ticksPerSecond()),
	)
	return nil
}

// simulate steps the arena o.ticks times with a manual clock advanced by
// o.step, so results do not depend on how fast the host runs.
func simulate(cfg *config.Config, o options) (result, error) {
	if o.ticks <= 0 {
		return result{}, errors.New("ticks must be positive")
	}
	arena, ok := assets.ArenaByID(cfg.Sandbox.Arena)
	if !ok {
		return result{}, fmt.Errorf("unknown arena %q", cfg.Sandbox.Arena)
	}
	sc, gmap, _ := game.BuildArena(arena, cfg.Sandbox, rand.New(rand.NewSource(o.seed)))

	clock := system.NewManualClock(time.Unix(0, 0))
	eng := system.NewEngine(system.WithClock(clock), system.WithMaxStep(cfg.Engine.MaxStep.Duration))

	res := result{Ticks: o.ticks, Bodies: sc.World.Count()}
	start := time.Now()
	for i := 0; i < o.ticks; i++ {
		clock.Advance(o.step)
		t, err := sc.Step(eng, gmap)
		if err != nil {
			return result{}, fmt.Errorf("tick %d: %w", i, err)
		}
		res.Contacts += len(t.Contacts)
		res.Bounces += t.Bounces
	}
	res.Elapsed = time.Since(start)
	return res, nil
}
