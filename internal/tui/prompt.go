package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"framer/internal/config"
	"framer/internal/naming"
)

// ErrAborted is returned when the user leaves a prompt with ctrl+c or esc.
var ErrAborted = errors.New("prompt aborted")

const emptyAnswer = "Can not be empty!"

// Prompter asks questions on a terminal, one bubbletea program per question.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

var _ config.Prompter = Prompter{}

func (p Prompter) run(m tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}
	return tea.NewProgram(m, opts...).Run()
}

// Text implements config.Prompter.
func (p Prompter) Text(question, initial string) (string, error) {
	final, err := p.run(NewTextModel(question, initial))
	if err != nil {
		return "", err
	}
	m := final.(TextModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.Value(), nil
}

// Confirm implements config.Prompter.
func (p Prompter) Confirm(question string, def bool) (bool, error) {
	final, err := p.run(NewConfirmModel(question, def))
	if err != nil {
		return false, err
	}
	m := final.(ConfirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.value, nil
}

// Select implements config.Prompter.
func (p Prompter) Select(question string, choices []naming.Choice, def naming.Policy) (naming.Policy, error) {
	final, err := p.run(NewSelectModel(question, choices, def))
	if err != nil {
		return "", err
	}
	m := final.(SelectModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.Selected(), nil
}

// TextModel reads one line of required input.
type TextModel struct {
	question string
	value    []rune
	invalid  bool
	done     bool
	aborted  bool
}

func NewTextModel(question, initial string) TextModel {
	return TextModel{question: question, value: []rune(initial)}
}

func (m TextModel) Value() string { return strings.TrimSpace(string(m.value)) }

func (m TextModel) Init() tea.Cmd { return nil }

func (m TextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.Value() == "" {
			m.invalid = true
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyRunes:
		m.value = append(m.value, key.Runes...)
	}
	m.invalid = false
	return m, nil
}

func (m TextModel) View() string {
	line := questionLine(m.question) + answerStyle.Render(string(m.value))
	if m.done {
		return line + "\n"
	}
	line += cursorStyle.Render("▏")
	if m.invalid {
		line += "\n" + errorStyle.Render(">> "+emptyAnswer)
	}
	return line
}

// ConfirmModel asks a yes/no question.
type ConfirmModel struct {
	question string
	value    bool
	done     bool
	aborted  bool
}

func NewConfirmModel(question string, def bool) ConfirmModel {
	return ConfirmModel{question: question, value: def}
}

func (m ConfirmModel) Init() tea.Cmd { return nil }

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
	case "n", "N":
		m.value = false
	case "enter":
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m ConfirmModel) View() string {
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return questionLine(m.question) + answerStyle.Render(answer) + "\n"
	}
	hint := "(y/N)"
	if m.value {
		hint = "(Y/n)"
	}
	return questionLine(m.question) + hintStyle.Render(hint)
}

// SelectModel picks one naming policy from a list.
type SelectModel struct {
	question string
	choices  []naming.Choice
	cursor   int
	done     bool
	aborted  bool
}

func NewSelectModel(question string, choices []naming.Choice, def naming.Policy) SelectModel {
	m := SelectModel{question: question, choices: choices}
	for i, c := range choices {
		if c.Policy == def {
			m.cursor = i
		}
	}
	return m
}

func (m SelectModel) Selected() naming.Policy {
	if len(m.choices) == 0 {
		return naming.Same
	}
	return m.choices[m.cursor].Policy
}

func (m SelectModel) Init() tea.Cmd { return nil }

func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectModel) View() string {
	if m.done {
		label := ""
		if len(m.choices) > 0 {
			label = m.choices[m.cursor].Label
		}
		return questionLine(m.question) + answerStyle.Render(label) + "\n"
	}

	lines := []string{questionLine(m.question) + hintStyle.Render("(use arrow keys)")}
	for i, c := range m.choices {
		if i == m.cursor {
			lines = append(lines, answerStyle.Render(fmt.Sprintf("❯ %s", c.Label)))
			continue
		}
		lines = append(lines, labelStyle.Render("  "+c.Label))
	}
	return strings.Join(lines, "\n")
}

func questionLine(question string) string {
	return markStyle.Render("?") + " " + questionStyle.Render(question) + " "
}

var (
	markStyle     = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	hintStyle     = lipgloss.NewStyle().Foreground(ColorDim)
	cursorStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	errorStyle    = lipgloss.NewStyle().Foreground(ColorError)
)
