package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/river-raid/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty table should say so")
	}
}

func TestScoreboardListsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{Pilot: "ace", Score: 4200, Level: 6, Distance: 9000})
	store.SaveRun(storage.Run{Pilot: "rookie", Score: 80, Level: 1, Distance: 300})

	for _, width := range []int{60, 120} {
		m := NewScoreboardModel(store, width, 30)
		view := m.View()
		for _, want := range []string{"ace", "4200", "rookie"} {
			if !strings.Contains(view, want) {
				t.Errorf("width %d: view missing %q", width, want)
			}
		}
	}
}

func TestScoreboardReloadAndQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, 100, 30)
	store.SaveRun(storage.Run{Pilot: "late", Score: 10})

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "late") {
		t.Error("reload should pick up new runs")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("esc should leave the scoreboard")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("missing store should be reported")
	}
}
