package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/endzeit/endzeit/internal/countdown"
)

const (
	boxWidth  = 44
	boxHeight = 7
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleClock  = tcell.StyleDefault.Bold(true)
	styleFill   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFaint  = tcell.StyleDefault.Dim(true)
)

// Renderer draws countdown frames onto the session's screen. It implements
// countdown.Renderer.
type Renderer struct {
	session *Session
}

// NewRenderer builds a renderer drawing to the session's screen.
func NewRenderer(session *Session) *Renderer {
	return &Renderer{session: session}
}

// Draw renders one frame, fully replacing the previous one; nothing ever
// scrolls. The tcell backend surfaces terminal write failures through the
// event stream rather than the draw path, so Draw always returns nil; the
// error form is the loop's renderer contract.
func (r *Renderer) Draw(st *countdown.State) error {
	screen := r.session.Screen()
	screen.Clear()
	width, height := screen.Size()

	clockText := countdown.FormatClock(st.Remaining())

	if width < boxWidth || height < boxHeight {
		// Tiny terminal: just the clock, no chrome.
		putString(screen, 0, 0, clockText, styleClock, width)
		screen.Show()
		return nil
	}

	x := (width - boxWidth) / 2
	y := (height - boxHeight) / 2

	drawBox(screen, y, x, boxHeight, boxWidth, "endzeit")
	putCentered(screen, y+2, x, boxWidth, clockText, styleClock)
	drawGauge(screen, y+3, x+3, boxWidth-6, st.Percent())
	putCentered(screen, y+4, x, boxWidth, st.Target().Format("ends 2006-01-02 15:04:05"), styleFaint)

	if y+boxHeight < height {
		putCentered(screen, y+boxHeight, x, boxWidth, "q to quit", styleFaint)
	}

	screen.Show()
	return nil
}

// drawGauge paints [████░░░░] NN% across width cells. The fill truncates
// rather than rounds, so 100% appears only when the countdown is actually
// done.
func drawGauge(screen tcell.Screen, y, x, width int, pct float64) {
	label := fmt.Sprintf(" %3d%%", int(pct))
	cells := width - runewidth.StringWidth(label) - 2
	if cells < 1 {
		return
	}
	filled := int(float64(cells) * pct / 100)
	if filled > cells {
		filled = cells
	}

	col := x
	screen.SetContent(col, y, '[', nil, styleFaint)
	col++
	for i := 0; i < cells; i++ {
		if i < filled {
			screen.SetContent(col, y, '█', nil, styleFill)
		} else {
			screen.SetContent(col, y, '░', nil, styleFaint)
		}
		col++
	}
	screen.SetContent(col, y, ']', nil, styleFaint)
	col++
	putString(screen, y, col, label, styleFaint, width)
}

// drawBox draws a bordered box with a title embedded in the top border.
func drawBox(screen tcell.Screen, y, x, height, width int, title string) {
	if height < 2 || width < 2 {
		return
	}

	screen.SetContent(x, y, '┌', nil, styleBorder)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, styleBorder)
	}
	screen.SetContent(x+width-1, y, '┐', nil, styleBorder)

	titleText := fmt.Sprintf(" %s ", title)
	if runewidth.StringWidth(titleText) < width-4 {
		putString(screen, y, x+2, titleText, styleBorder, width-4)
	}

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, styleBorder)
		screen.SetContent(x+width-1, row, '│', nil, styleBorder)
	}

	screen.SetContent(x, y+height-1, '└', nil, styleBorder)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, styleBorder)
	}
	screen.SetContent(x+width-1, y+height-1, '┘', nil, styleBorder)
}

// putString draws text at (x, y), clipped to maxWidth display cells.
func putString(screen tcell.Screen, y, x int, text string, style tcell.Style, maxWidth int) {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > x+maxWidth {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col += w
	}
}

// putCentered centers text within a width-wide span starting at x.
func putCentered(screen tcell.Screen, y, x, width int, text string, style tcell.Style) {
	off := (width - runewidth.StringWidth(text)) / 2
	if off < 0 {
		off = 0
	}
	putString(screen, y, x+off, text, style, width-off)
}
