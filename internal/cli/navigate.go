package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/canvas"
	"github.com/flowcanvas/flowcanvas/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// navigateCommand creates the navigate command, an interactive browser over
// a diagram's interaction targets.
func (c *CLI) navigateCommand() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "navigate [file]",
		Short: "Browse a diagram's elements interactively",
		Long: `Navigate lists every interactive element of the rendered diagram with its
source lines. Arrow keys move the selection, "/" jumps to the element
nearest a source line, and enter prints the selected location.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(settingsPath)
			if err != nil {
				return err
			}
			return c.runNavigate(args[0], settings)
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", "", "TOML settings file overriding the default appearance")
	return cmd
}

func (c *CLI) runNavigate(input string, settings *canvas.Settings) error {
	opts := pipeline.Options{Path: input, Settings: settings}
	tree, err := pipeline.Parse(opts)
	if err != nil {
		return err
	}
	cvs, info, err := pipeline.ComputeLayout(tree, opts)
	if err != nil {
		return err
	}
	if len(info.Targets) == 0 {
		printWarning("Diagram has no interactive elements")
		return nil
	}

	model := newNavigateModel(input, cvs, info.Targets)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(navigateModel); ok && m.choice != nil {
		// file:line:pos, the jump format editors accept on stdin.
		jump, ok := cvs.JumpTargetForLine(m.choice.Lines.Begin)
		if !ok {
			jump = canvas.JumpTarget{Line: m.choice.Lines.Begin}
		}
		fmt.Printf("%s:%d:%d\n", input, jump.Line, jump.Pos)
	}
	return nil
}

// navigateModel is the bubbletea model for the element browser.
type navigateModel struct {
	input   string
	canvas  *canvas.Canvas
	targets []pipeline.Target

	cursor int
	offset int
	height int

	// Line-jump mode state: active after "/", digits accumulate in query.
	jumping bool
	query   string

	choice *pipeline.Target
}

func newNavigateModel(input string, cvs *canvas.Canvas, targets []pipeline.Target) navigateModel {
	sorted := make([]pipeline.Target, len(targets))
	copy(sorted, targets)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lines.Begin != sorted[j].Lines.Begin {
			return sorted[i].Lines.Begin < sorted[j].Lines.Begin
		}
		return sorted[i].Lines.End < sorted[j].Lines.End
	})
	return navigateModel{
		input:   input,
		canvas:  cvs,
		targets: sorted,
		height:  15,
	}
}

func (m navigateModel) Init() tea.Cmd {
	return nil
}

func (m navigateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.targets)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "/":
			m.jumping = true
			m.query = ""
		case "enter":
			m.choice = &m.targets[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// updateJump handles key input while a line query is being typed.
func (m navigateModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); {
	case key == "esc":
		m.jumping = false
	case key == "enter":
		m.jumping = false
		m.jumpToLine()
	case key == "backspace" && len(m.query) > 0:
		m.query = m.query[:len(m.query)-1]
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		m.query += key
	}
	return m, nil
}

// jumpToLine moves the cursor to the element nearest the queried line, using
// the same nearest-element search hosts use for cursor synchronization.
func (m *navigateModel) jumpToLine() {
	var line int
	if _, err := fmt.Sscanf(m.query, "%d", &line); err != nil {
		return
	}
	el, _ := m.canvas.NearestByLine(line)
	if el == nil {
		return
	}

	// The nearest element is not always an interaction target itself (the
	// search may land on a declaration). Match its tooltip first, then fall
	// back to the tightest target enclosing the element's start line.
	tooltip := el.SelectTooltip()
	matched := -1
	for i, tgt := range m.targets {
		if tgt.Tooltip == tooltip {
			matched = i
			break
		}
	}
	if matched < 0 {
		start := el.LineRange().Begin
		bestSpan := -1
		for i, tgt := range m.targets {
			if start < tgt.Lines.Begin || start > tgt.Lines.End {
				continue
			}
			span := tgt.Lines.End - tgt.Lines.Begin
			if bestSpan < 0 || span < bestSpan {
				matched, bestSpan = i, span
			}
		}
	}
	if matched >= 0 {
		m.cursor = matched
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m navigateModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Diagram Elements"))
	b.WriteString(" ")
	b.WriteString(listDimStyle.Render(m.input))
	b.WriteString("\n")
	if m.jumping {
		b.WriteString(StyleHighlight.Render("jump to line: " + m.query))
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  / jump to line  ⏎ select  q quit"))
	}
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.targets) {
		end = len(m.targets)
	}

	for i := m.offset; i < end; i++ {
		tgt := m.targets[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		lines := fmt.Sprintf("%4d-%-4d", tgt.Lines.Begin, tgt.Lines.End)
		if tgt.Lines.Begin == tgt.Lines.End {
			lines = fmt.Sprintf("%4d     ", tgt.Lines.Begin)
		}
		line := cursor + lines + "  " + tgt.Tooltip

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.targets))))

	return b.String()
}
