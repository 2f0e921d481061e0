package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/irail-cli/internal/input"
)

// maxShownMatches caps the candidate preview under the prompt.
const maxShownMatches = 5

// promptModel asks for one value with tab completion over candidates.
type promptModel struct {
	input      textinput.Model
	def        string
	candidates []string

	warning string
	warnSeq int

	value   string
	done    bool
	aborted bool
}

func newPromptModel(label, def string, candidates []string, warning string, warnSeq int) promptModel {
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.Placeholder = def
	ti.CharLimit = 100
	ti.Width = 50
	if len(candidates) > 0 {
		ti.ShowSuggestions = true
		ti.SetSuggestions(candidates)
	}
	ti.Focus()

	return promptModel{
		input:      ti,
		def:        def,
		candidates: candidates,
		warning:    warning,
		warnSeq:    warnSeq,
	}
}

func (m promptModel) Init() tea.Cmd {
	if m.warning != "" {
		return tea.Batch(textinput.Blink, expireWarning(m.warnSeq))
	}
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case warningExpiredMsg:
		if msg.seq == m.warnSeq {
			m.warning = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			m.value = strings.TrimSpace(m.input.Value())
			if m.value == "" {
				m.value = m.def
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.candidates) > 0 {
		matches := input.Matches(m.input.Value(), m.candidates)
		if len(matches) > maxShownMatches {
			matches = append(matches[:maxShownMatches:maxShownMatches], "…")
		}
		if len(matches) > 0 {
			b.WriteString(styleMuted.Render("  " + strings.Join(matches, "  ")))
		}
	}
	b.WriteString("\n")

	if m.warning != "" {
		b.WriteString(styleWarning.Render("! " + m.warning))
	}
	b.WriteString("\n")

	return b.String()
}

// Prompter asks for input with Bubble Tea prompts. A warning is shown
// under the next prompt and clears itself after a couple of seconds.
type Prompter struct {
	opts    []tea.ProgramOption
	warning string
	warnSeq int
}

// NewPrompter creates a Prompter. opts are passed to every tea.Program.
func NewPrompter(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{opts: opts}
}

// Choose asks for one of candidates with tab completion
func (p *Prompter) Choose(label, def string, candidates []string) (string, error) {
	return p.run(label, def, candidates)
}

// Read asks for free text
func (p *Prompter) Read(label, def string) (string, error) {
	return p.run(label, def, nil)
}

// Warn shows msg under the next prompt
func (p *Prompter) Warn(msg string) {
	p.warning = msg
	p.warnSeq++
}

func (p *Prompter) run(label, def string, candidates []string) (string, error) {
	m := newPromptModel(label, def, candidates, p.warning, p.warnSeq)
	p.warning = ""

	final, err := tea.NewProgram(m, p.opts...).Run()
	if err != nil {
		return "", err
	}

	pm, ok := final.(promptModel)
	if !ok || pm.aborted || !pm.done {
		return "", input.ErrAborted
	}
	return pm.value, nil
}

var _ input.Prompter = (*Prompter)(nil)
