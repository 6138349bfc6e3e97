package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/fixstr/foundation/utils/fixstr"
	"github.com/msto63/fixstr/internal/engine"
)

const (
	fieldSubject = iota
	fieldTarget
	fieldCount
)

// Row is one line of the live result panel
type Row struct {
	Label string
	Value string
	// Match marks a positive result (found, true); Miss a negative one
	Match bool
	Miss  bool
	// Err marks an operation that rejected its input
	Err bool
}

// Model is the interactive explorer: two inputs and the results of every
// operation on them, recomputed on each keystroke.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	engines map[engine.Mode]engine.Engine
	mode    engine.Mode
	width   int
}

// NewModel creates an explorer starting in mode with optional initial values
func NewModel(engines map[engine.Mode]engine.Engine, mode engine.Mode, subject, target string) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 48
		inputs[i] = ti
	}
	inputs[fieldSubject].Placeholder = "string..."
	inputs[fieldSubject].Prompt = "string > "
	inputs[fieldSubject].SetValue(subject)
	inputs[fieldSubject].Focus()
	inputs[fieldTarget].Placeholder = "target..."
	inputs[fieldTarget].Prompt = "target > "
	inputs[fieldTarget].SetValue(target)

	return Model{
		inputs:  inputs,
		engines: engines,
		mode:    mode,
		width:   80,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			cmd := m.moveFocus(1)
			return m, cmd

		case "shift+tab", "up":
			cmd := m.moveFocus(fieldCount - 1)
			return m, cmd

		case "ctrl+w":
			if m.mode == engine.ModeWide {
				m.mode = engine.ModeNarrow
			} else {
				m.mode = engine.ModeWide
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(step int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step) % fieldCount
	return m.inputs[m.focus].Focus()
}

// Subject returns the current string input
func (m Model) Subject() string {
	return m.inputs[fieldSubject].Value()
}

// Target returns the current target input
func (m Model) Target() string {
	return m.inputs[fieldTarget].Value()
}

// Mode returns the width strings are currently built with
func (m Model) Mode() engine.Mode {
	return m.mode
}

// View renders the model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("fixstr explorer"))
	b.WriteString("\n")

	for i, in := range m.inputs {
		style := InputStyle
		if i == m.focus {
			style = FocusedInputStyle
		}
		b.WriteString(style.Render(in.View()))
		b.WriteString("\n")
	}

	rows := Evaluate(m.engines[m.mode], m.Subject(), m.Target())
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		value := ValueStyle.Render(r.Value)
		switch {
		case r.Err:
			value = RenderError(r.Value)
		case r.Match:
			value = MatchStyle.Render(r.Value)
		case r.Miss:
			value = MissStyle.Render(r.Value)
		}
		lines = append(lines, LabelStyle.Render(r.Label)+value)
	}
	panel := BoxStyle.Width(max(m.width-4, 20)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	b.WriteString(panel)
	b.WriteString("\n")

	b.WriteString(StatusBarStyle.Render("mode: " + m.mode.String()))
	b.WriteString(RenderHelp("tab: switch field • ctrl+w: narrow/wide • esc: quit"))
	return b.String()
}

// Evaluate runs every read-only operation on subject and target
func Evaluate(e engine.Engine, subject, target string) []Row {
	ins := e.Inspect(subject)
	rows := []Row{
		{Label: "len", Value: strconv.Itoa(ins.Len)},
		{Label: "size", Value: strconv.Itoa(ins.Size)},
		{Label: "hash", Value: strconv.FormatUint(ins.Hash, 10)},
		{Label: "reverse", Value: strconv.Quote(e.Reverse(subject))},
	}

	rows = append(rows,
		position("find", e.Find(subject, target, engine.FindOptions{})),
		position("rfind", e.Find(subject, target, engine.FindOptions{Reverse: true})),
		predicate("contains", e.Contains(subject, target)),
		predicate("starts-with", e.HasPrefix(subject, target)),
		predicate("ends-with", e.HasSuffix(subject, target)),
		Row{Label: "compare", Value: strconv.Itoa(e.Compare(subject, target, engine.CompareOptions{}))},
	)

	if n, err := e.Count(subject, target); err == nil {
		rows = append(rows, Row{Label: "count", Value: strconv.Itoa(n)})
	} else {
		rows = append(rows, Row{Label: "count", Value: "target must be one unit", Err: true})
	}

	if v, err := e.Atoi(subject, true); err == nil {
		rows = append(rows, Row{Label: "atoi", Value: strconv.FormatInt(v, 10), Match: true})
	} else {
		rows = append(rows, Row{Label: "atoi", Value: fmt.Sprintf("%d (unchecked)", mustAtoi(e, subject)), Miss: true})
	}
	return rows
}

func mustAtoi(e engine.Engine, s string) int64 {
	v, _ := e.Atoi(s, false)
	return v
}

func position(label string, idx int) Row {
	if idx == fixstr.NPos {
		return Row{Label: label, Value: "not found", Miss: true}
	}
	return Row{Label: label, Value: strconv.Itoa(idx), Match: true}
}

func predicate(label string, ok bool) Row {
	return Row{Label: label, Value: strconv.FormatBool(ok), Match: ok, Miss: !ok}
}

// Run starts the explorer on the terminal and blocks until it quits
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
