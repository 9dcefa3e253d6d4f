package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SessionLog records statistics gathered during one sandbox session.
type SessionLog struct {
	Player       string    `json:"player,omitempty"`
	Arena        string    `json:"arena"`
	Seed         int64     `json:"seed"`
	Started      time.Time `json:"started"`
	DurationMS   int64     `json:"duration_ms"`
	Ticks        uint64    `json:"ticks"`
	Contacts     int       `json:"contacts"`
	Bounces      int       `json:"bounces"`
	ArenasLoaded int       `json:"arenas_loaded"`
}

// saveSessionLog appends the finished session as a single JSON line to
// sessions.jsonl.
func saveSessionLog(log SessionLog) error {
	dir, err := sessionLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}

// sessionLogDir returns the directory where session logs are stored:
// $XDG_DATA_HOME/sweepbox, defaulting to ~/.local/share/sweepbox.
func sessionLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "sweepbox"), nil
}
