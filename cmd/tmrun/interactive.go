package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	turingruntime "github.com/turinglab/turing-runtime"
	"github.com/turinglab/turing-runtime/alphabet"
	"github.com/turinglab/turing-runtime/computation"
	"github.com/turinglab/turing-runtime/machine"
	"github.com/turinglab/turing-runtime/persist"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	acceptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateConfigure modelState = iota
	stateRunning
	stateDone
)

type interactiveModel struct {
	err   error
	table *machine.Table
	alpha *alphabet.Alphabet
	comp  *computation.Computation
	input textinput.Model
	tapes int
	state modelState
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newInteractiveModel(machineFile, alphabetFile string, tapes int) (*interactiveModel, error) {
	doc, err := persist.LoadMachine(machineFile)
	if err != nil {
		return nil, err
	}
	table, err := doc.Build(tapes)
	if err != nil {
		return nil, err
	}

	var alpha *alphabet.Alphabet
	if alphabetFile != "" {
		adoc, err := persist.LoadAlphabet(alphabetFile)
		if err != nil {
			return nil, err
		}
		if alpha, err = adoc.Build(); err != nil {
			return nil, err
		}
	}

	ti := textinput.New()
	ti.Placeholder = "input string"
	ti.Prompt = "input: "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		table: table,
		alpha: alpha,
		input: ti,
		tapes: tapes,
		state: stateConfigure,
	}, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

// launch builds a fresh computation for the configured machine and starts
// it. A computation cannot be restarted, so every run gets its own.
func (m *interactiveModel) launch() error {
	c := computation.New()
	c.UseMachine(m.table)
	if m.alpha != nil {
		c.UseAlphabet(m.alpha)
		c.InputString(m.input.Value())
	}
	if err := c.Start(); err != nil {
		return err
	}
	m.comp = c
	return nil
}

func (m *interactiveModel) finished() bool {
	select {
	case <-m.comp.Done():
		return true
	default:
		return false
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateRunning {
				m.comp.Stop()
			}
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateConfigure:
				if err := m.launch(); err != nil {
					m.err = err
					return m, nil
				}
				m.state = stateRunning
				return m, tick()

			case stateDone:
				m.state = stateConfigure
				m.comp = nil
				m.input.Focus()
				return m, textinput.Blink
			}

		case "p":
			if m.state == stateRunning {
				m.comp.Pause()
			}

		case "r":
			if m.state == stateRunning {
				m.comp.Resume()
			}

		case "s":
			if m.state == stateRunning {
				m.comp.Stop()
			}
		}

	case tickMsg:
		if m.state != stateRunning {
			return m, nil
		}
		if m.finished() {
			m.state = stateDone
			return m, nil
		}
		return m, tick()
	}

	if m.state == stateConfigure {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) renderTape(index int) string {
	cells, head := m.comp.TapeView(index)

	var b strings.Builder
	fmt.Fprintf(&b, "%d: ", index)
	for i, s := range cells {
		r := rune(turingruntime.BlankRune)
		if m.alpha != nil {
			if v, ok := m.alpha.Represent(s); ok {
				r = v
			}
		}
		if i == head {
			b.WriteString(headStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteString("...")
	return b.String()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Turing Runner"))
	fmt.Fprintf(&b, "  %d state(s), %d tape(s)\n\n", m.table.States(), m.tapes)

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateConfigure:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • q quit"))

	case stateRunning:
		for i := m.tapes - 1; i >= 0; i-- {
			b.WriteString(m.renderTape(i))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "State: %s  Transitions: %d\n",
			stateStyle.Render(fmt.Sprintf("q%d", m.comp.CurrentState())),
			m.comp.TransitionCount(),
		)
		if m.comp.IsPaused() {
			b.WriteString(pausedStyle.Render("PAUSED"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("p pause • r resume • s stop • q quit"))

	case stateDone:
		for i := m.tapes - 1; i >= 0; i-- {
			b.WriteString(m.renderTape(i))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Transitions: %d\n", m.comp.TransitionCount())
		switch {
		case m.comp.HasAccepted():
			b.WriteString(acceptStyle.Render("ACCEPTED"))
		case m.comp.IsStopped():
			b.WriteString(rejectStyle.Render("STOPPED"))
		default:
			b.WriteString(rejectStyle.Render("REJECTED"))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run again • q quit"))
	}

	return b.String()
}

func runInteractive(machineFile, alphabetFile string, tapes int) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	model, err := newInteractiveModel(machineFile, alphabetFile, tapes)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
