package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes kept whole", "日本語のテスト", "日本語のテ"},
		{"emoji kept whole", "🎮Player🎮Name", "🎮Player🎮Na"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"invalid utf-8 dropped", "a\xffb", "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestTermFromEnv(t *testing.T) {
	if got := termFromEnv([]string{"LANG=C", "TERM=tmux"}); got != "tmux" {
		t.Errorf("termFromEnv = %q, want tmux", got)
	}
	if got := termFromEnv([]string{"LANG=C"}); got != "" {
		t.Errorf("termFromEnv = %q, want empty", got)
	}
}

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path, zap.NewNop())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("key not persisted: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("key mode = %v, want 0600", info.Mode().Perm())
	}

	second, err := loadOrCreateHostKey(path, zap.NewNop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(first.PublicKey().Marshal()) != string(second.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyWarnsOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	core, logs := observer.New(zapcore.InfoLevel)

	signer, err := loadOrCreateHostKey(path, zap.New(core))
	if err != nil {
		t.Fatalf("loadOrCreateHostKey: %v", err)
	}
	if signer == nil {
		t.Fatal("no signer returned")
	}
	warned := logs.FilterMessage("unreadable host key, replacing it").FilterLevelExact(zapcore.WarnLevel)
	if warned.Len() != 1 {
		t.Fatalf("got %d warnings, want 1: %v", warned.Len(), logs.All())
	}
	if _, ok := warned.All()[0].ContextMap()["error"]; !ok {
		t.Error("warning does not carry the parse error")
	}
	// The replacement key is persisted and loads cleanly.
	data, err := os.ReadFile(path)
	if err != nil || string(data) == "not a key" {
		t.Fatalf("corrupt key was not replaced (err=%v)", err)
	}
}
