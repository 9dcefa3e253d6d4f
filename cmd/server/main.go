// sweepbox-server serves the collision sandbox over SSH. Every connection
// gets its own arena and simulation. Build:
//
//	go build -o sweepbox-server ./cmd/server
//
// Usage:
//
//	./sweepbox-server [-config sweepbox.toml] [-port 2222] [-key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"

	"sweepbox/internal/config"
	"sweepbox/internal/game"
	"sweepbox/internal/logging"
	internalssh "sweepbox/internal/ssh"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	port := flag.Int("port", 0, "SSH server port (overrides [server] port)")
	keyFile := flag.String("key", "", "Path to the PEM-encoded host key, auto-generated if absent (overrides [server] host_key)")
	flag.Parse()

	if err := run(*configPath, *port, *keyFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, port int, keyFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if keyFile != "" {
		cfg.Server.HostKey = keyFile
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		return err
	}

	h := &handler{
		cfg:   cfg,
		log:   log,
		slots: make(chan struct{}, max(1, cfg.Server.MaxConn)),
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication. Add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = srv.Close()
	}()

	log.Info("sweepbox SSH server listening",
		zap.Int("port", cfg.Server.Port),
		zap.Int("max_conn", cap(h.slots)),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// handler runs one sandbox per SSH session, up to cap(slots) at a time.
type handler struct {
	cfg   *config.Config
	log   *zap.Logger
	slots chan struct{}
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	log := h.log.With(zap.String("user", name), zap.String("remote", s.RemoteAddr().String()))

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The sandbox is full. Try again later.")
		log.Warn("rejected: server full")
		return
	}

	tty, term, ok := internalssh.FromSession(s)
	if !ok {
		fmt.Fprintln(s, "The sandbox requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if term == "" {
		term = termFromEnv(s.Environ())
	}
	if !allowedTerms[term] {
		log.Info("unsupported TERM, falling back", zap.String("term", term))
		term = "xterm-256color"
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup", zap.Error(err))
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		log.Warn("screen init", zap.Error(err))
		return
	}
	defer screen.Fini()

	log.Info("session started", zap.String("term", term))
	g := game.New(screen, h.cfg, log, game.WithPlayerName(name))
	if err := g.Run(s.Context()); err != nil {
		log.Error("sandbox stopped", zap.Error(err))
	}
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// allowedTerms lists the terminal types the server will hand to terminfo.
// Anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

func termFromEnv(env []string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok {
			return v
		}
	}
	return ""
}

const maxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and
// truncates it to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		signer, err := xssh.ParsePrivateKey(data)
		if err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
		log.Warn("unreadable host key, replacing it", zap.String("path", path), zap.Error(err))
	}

	log.Info("generating new ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "sweepbox server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		log.Warn("persist host key", zap.String("path", path), zap.Error(err))
	}
	return signer, nil
}
