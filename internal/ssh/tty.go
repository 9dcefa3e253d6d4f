// Package ssh adapts an SSH channel into a terminal tcell can drive.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Conn is the part of an SSH session a terminal needs: the byte stream plus
// a way to hang up.
type Conn interface {
	io.ReadWriter
	Close() error
}

// Tty implements tcell.Tty over an SSH channel. Each connected client gets
// its own Tty and tcell.Screen.
type Tty struct {
	conn    Conn
	resizes <-chan gossh.Window

	mu     sync.Mutex
	size   tcell.WindowSize
	notify func()

	watch sync.Once
}

// NewTty wraps conn. initial is the window size from the pty request;
// resizes delivers later window-change requests and is drained for the
// lifetime of the channel.
func NewTty(conn Conn, initial gossh.Window, resizes <-chan gossh.Window) *Tty {
	return &Tty{
		conn:    conn,
		resizes: resizes,
		size:    windowSize(initial),
	}
}

// FromSession builds a Tty for s. It returns the terminal type the client
// asked for, and false when the client did not request a pty.
func FromSession(s gossh.Session) (*Tty, string, bool) {
	pty, resizes, ok := s.Pty()
	if !ok {
		return nil, "", false
	}
	return NewTty(s, pty.Window, resizes), pty.Term, true
}

func windowSize(w gossh.Window) tcell.WindowSize {
	return tcell.WindowSize{Width: w.Width, Height: w.Height}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.conn.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.conn.Write(b) }
func (t *Tty) Close() error                { return t.conn.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the server handler, and writes are not buffered here.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the most recent terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize sets the function called after every window change. A nil
// cb removes it. The window-change channel is watched from the first call on.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.notify = cb
	t.mu.Unlock()

	t.watch.Do(func() { go t.watchResizes() })
}

func (t *Tty) watchResizes() {
	for w := range t.resizes {
		t.mu.Lock()
		t.size = windowSize(w)
		cb := t.notify
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
