package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/river-raid/internal/core"
)

func TestPaintKeepsContent(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.DrawText(4, 0, "ef", core.ColorBlue)
	s.DrawText(0, 1, "▲", core.ColorBrightWhite)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	got := NewPainter(r).Paint(s)

	if got != s.String() {
		t.Errorf("Paint without colors = %q, expected %q", got, s.String())
	}
}

func TestPaintColorsRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "xxyy", core.ColorRed)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	got := NewPainter(r).Paint(s)

	if !strings.Contains(got, "xxyy") {
		t.Errorf("same-colored cells should form one run, got %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("colored run should carry an escape sequence, got %q", got)
	}
}

func TestDrawOverlay(t *testing.T) {
	s := core.NewScreen(30, 9)
	s.FillRect(0, 0, 30, 9, '~', core.ColorBlue)

	drawOverlay(s, []string{"PAUSED"}, core.ColorBrightWhite)

	if !strings.Contains(s.String(), "PAUSED") {
		t.Fatalf("overlay text missing:\n%s", s.String())
	}
	if s.Get(0, 0) != '~' {
		t.Error("overlay should leave the rest of the screen alone")
	}
}
