package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/task"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m TaskBrowserModel, keys ...string) TaskBrowserModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(TaskBrowserModel)
	}
	return m
}

func browserFixture() TaskBrowserModel {
	tk := &task.Task{
		ID: "00d62c1b",
		Train: []task.Pair{
			{Input: grid.MustParse("1"), Output: grid.MustParse("2")},
			{Input: grid.MustParse("3"), Output: grid.MustParse("4")},
		},
		Test: []task.Pair{{Input: grid.MustParse("5")}},
	}
	return NewTaskBrowserModel([]string{"00d62c1b", "broken"}, func(id string) (*task.Task, error) {
		if id == "broken" {
			return nil, errors.New("decode failed")
		}
		return tk, nil
	})
}

func TestTaskBrowserNavigation(t *testing.T) {
	m := press(browserFixture(), "down", "down", "up")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}

	m = press(m, "enter")
	if m.Task == nil {
		t.Fatal("enter did not open the task")
	}

	m = press(m, "right", "right", "right")
	if m.Pair != 2 {
		t.Errorf("Pair = %d, want 2 (clamped to last pair)", m.Pair)
	}
	if _, label := m.current(); label != "test 1/1" {
		t.Errorf("label = %q, want test 1/1", label)
	}

	m = press(m, "left")
	if _, label := m.current(); label != "train 2/2" {
		t.Errorf("label = %q, want train 2/2", label)
	}

	m = press(m, "esc")
	if m.Task != nil {
		t.Error("esc did not return to the list")
	}
}

func TestTaskBrowserLoadError(t *testing.T) {
	m := press(browserFixture(), "down", "enter")
	if m.Task != nil {
		t.Error("broken task opened")
	}
	if m.Err == nil || !strings.Contains(m.View(), "decode failed") {
		t.Errorf("View() should show the load error, got %q", m.View())
	}
}

func TestTaskBrowserQuit(t *testing.T) {
	_, cmd := browserFixture().Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestTaskBrowserWindowSize(t *testing.T) {
	next, _ := browserFixture().Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if h := next.(TaskBrowserModel).Height; h != 5 {
		t.Errorf("Height = %d, want minimum 5", h)
	}
}
