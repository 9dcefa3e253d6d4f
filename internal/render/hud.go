package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"sweepbox/internal/geom"
	"sweepbox/internal/system"
)

// Status is the per-tick information shown in the HUD.
type Status struct {
	Arena    string
	Tick     uint64
	DT       time.Duration
	Pos      geom.Vec
	Vel      geom.Vec
	Contacts []system.Contact // the player's contacts this tick
	Bodies   int
}

// DrawHUD renders the status lines and message log at the bottom of the
// screen, then shows the frame.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, colorSeparator)

	statusLine := fmt.Sprintf("[%s]  tick %d  dt %s  bodies %d",
		st.Arena, st.Tick, st.DT.Round(time.Microsecond), st.Bodies)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(colorStatus))

	motion := fmt.Sprintf("pos (%.2f, %.2f)  vel (%.2f, %.2f)", st.Pos.X, st.Pos.Y, st.Vel.X, st.Vel.Y)
	r.drawText(0, hudY+2, motion, tcell.StyleDefault.Foreground(colorStatus))

	contactStyle := tcell.StyleDefault.Foreground(colorIdle)
	contactLine := "contacts: none"
	if len(st.Contacts) > 0 {
		contactStyle = tcell.StyleDefault.Foreground(colorContact)
		contactLine = "contacts:"
		for _, c := range st.Contacts {
			contactLine += fmt.Sprintf(" %s@(%.1f,%.1f)", c.Axis, c.Hit.X, c.Hit.Y)
		}
	}
	r.drawText(0, hudY+3, contactLine, contactStyle)

	if n := len(messages); n > 0 {
		r.drawText(0, hudY+4, messages[n-1], tcell.StyleDefault.Foreground(colorMessage))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
