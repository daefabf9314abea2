package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowcanvas/flowcanvas/pkg/pipeline"
)

func newTestNavigateModel(t *testing.T) navigateModel {
	t.Helper()
	tree, err := pipeline.Parse(pipeline.Options{Source: []byte(testSource)})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	cvs, info, err := pipeline.ComputeLayout(tree, pipeline.Options{})
	if err != nil {
		t.Fatalf("ComputeLayout error: %v", err)
	}
	return newNavigateModel("sample.flow.json", cvs, info.Targets)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNavigateModelSortsTargets(t *testing.T) {
	m := newTestNavigateModel(t)
	if len(m.targets) == 0 {
		t.Fatal("expected targets")
	}
	for i := 1; i < len(m.targets); i++ {
		if m.targets[i].Lines.Begin < m.targets[i-1].Lines.Begin {
			t.Fatalf("targets not sorted at %d: %d < %d", i, m.targets[i].Lines.Begin, m.targets[i-1].Lines.Begin)
		}
	}
}

func TestNavigateModelCursor(t *testing.T) {
	m := newTestNavigateModel(t)

	next, _ := m.Update(keyMsg("down"))
	m = next.(navigateModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(navigateModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}

	// Up at the top stays put
	next, _ = m.Update(keyMsg("up"))
	m = next.(navigateModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestNavigateModelSelect(t *testing.T) {
	m := newTestNavigateModel(t)

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(navigateModel)
	if m.choice == nil {
		t.Fatal("enter should record the selection")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestNavigateModelJump(t *testing.T) {
	m := newTestNavigateModel(t)

	// "/" enters jump mode, digits accumulate, enter jumps
	next, _ := m.Update(keyMsg("/"))
	m = next.(navigateModel)
	if !m.jumping {
		t.Fatal("slash should enter jump mode")
	}

	next, _ = m.Update(keyMsg("5"))
	m = next.(navigateModel)
	if m.query != "5" {
		t.Errorf("query = %q, want 5", m.query)
	}

	next, _ = m.Update(keyMsg("enter"))
	m = next.(navigateModel)
	if m.jumping {
		t.Error("enter should leave jump mode")
	}

	// Line 5 falls inside the function, so the cursor lands on a
	// function-related target.
	tooltip := m.targets[m.cursor].Tooltip
	if !strings.Contains(tooltip, "Function") {
		t.Errorf("cursor on %q after jump to line 5", tooltip)
	}
}

func TestNavigateModelView(t *testing.T) {
	m := newTestNavigateModel(t)
	view := m.View()
	if !strings.Contains(view, "Diagram Elements") {
		t.Error("view should render the title")
	}
	if !strings.Contains(view, "▸") {
		t.Error("view should mark the cursor row")
	}
}
