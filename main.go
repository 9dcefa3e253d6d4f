package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"sweepbox/internal/config"
	"sweepbox/internal/game"
	"sweepbox/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	arena := flag.String("arena", "", "Arena preset (overrides [sandbox] arena)")
	seed := flag.Int64("seed", 0, "Generator seed (overrides [sandbox] seed)")
	flag.Parse()

	if err := run(*configPath, *arena, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, arena string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if arena != "" {
		cfg.Sandbox.Arena = arena
	}
	if seed != 0 {
		cfg.Sandbox.Seed = seed
	}
	// The terminal belongs to the sandbox, so logs always go to a file.
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(os.TempDir(), "sweepbox.log")
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("local sandbox starting", zap.String("arena", cfg.Sandbox.Arena))
	return game.New(screen, cfg, log).Run(ctx)
}
