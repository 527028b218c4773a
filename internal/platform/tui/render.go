package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/river-raid/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Painter converts screen buffers to styled strings for one output.
// SSH sessions each get their own renderer so color detection follows the
// client terminal rather than the server's.
type Painter struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPainter creates a painter for the given renderer.
// A nil renderer uses the default (local terminal) renderer.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range ansiCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Paint renders the screen buffer. Adjacent cells with the same color are
// grouped into one styled run to keep escape sequences down.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// drawOverlay draws a boxed, centered message over the screen contents.
func drawOverlay(s *core.Screen, lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW := w + 4
	boxH := len(lines) + 2
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	s.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH, c)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l, c)
	}
}
