package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ekremtas/lingopyr/internal/events"
	"github.com/ekremtas/lingopyr/internal/pyramid"
	"github.com/ekremtas/lingopyr/internal/stepgen"
	"github.com/ekremtas/lingopyr/internal/store"
)

// Options carries the services the player needs.
type Options struct {
	User     *store.UserRecord
	Pyramids *pyramid.Service
}

type phase int

const (
	phaseSeed phase = iota
	phaseCreating
	phaseChoosing
	phaseGenerating
	phaseFinishing
	phaseSummary
	phaseFailed
)

// model is the root Bubble Tea model: one pyramid session from seed to
// summary.
type model struct {
	opts  Options
	phase phase

	input   seedInput
	rec     *store.PyramidRecord
	event   *events.Record
	started time.Time
	elapsed time.Duration
	errMsg  string

	width  int
	height int
}

func newModel(opts Options) model {
	return model{
		opts:  opts,
		phase: phaseSeed,
		input: newSeedInput("Press Enter to generate one, or type your own...", 200),
	}
}

func (m model) Init() tea.Cmd {
	return m.input.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerTickMsg:
		if m.phase == phaseSummary || m.phase == phaseFailed {
			return m, nil
		}
		if !m.started.IsZero() {
			m.elapsed = time.Since(m.started)
		}
		return m, tickCmd()

	case sessionReadyMsg:
		if msg.Err != nil {
			m.phase = phaseFailed
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.rec = msg.Rec
		m.started = time.Now()
		m.phase = phaseChoosing
		return m, tickCmd()

	case stepAppendedMsg:
		if msg.Err != nil {
			m.phase = phaseFailed
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.rec = msg.Rec
		m.phase = phaseChoosing
		return m, nil

	case completedMsg:
		if msg.Err != nil {
			m.phase = phaseFailed
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.event = msg.Event
		m.phase = phaseSummary
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseSeed {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSeed:
		if key == "enter" {
			seed := strings.TrimSpace(m.input.Value())
			m.phase = phaseCreating
			return m, m.createCmd(seed)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseChoosing:
		switch key {
		case "1", "2", "3":
			idx := int(key[0] - '1')
			step := m.currentStep()
			if step == nil || idx >= step.OptionCount() {
				return m, nil
			}
			m.phase = phaseGenerating
			return m, m.selectAndAdvanceCmd(m.rec.LastStepIndex, idx)
		case "esc":
			m.phase = phaseFinishing
			return m, m.finishEarlyCmd()
		}

	case phaseSummary, phaseFailed:
		if key == "q" || key == "enter" || key == "esc" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// currentStep returns the step awaiting a selection, nil before the
// session exists.
func (m model) currentStep() *stepgen.Step {
	if m.rec == nil || m.rec.LastStepIndex >= len(m.rec.Steps) {
		return nil
	}
	return &m.rec.Steps[m.rec.LastStepIndex]
}

func (m model) createCmd(seed string) tea.Cmd {
	return func() tea.Msg {
		rec, err := m.opts.Pyramids.Create(context.Background(), pyramid.CreateInput{
			UserID:           m.opts.User.ID,
			Level:            m.opts.User.Level,
			LearningLanguage: m.opts.User.LearningLanguage,
			SystemLanguage:   m.opts.User.SystemLanguage,
			Purpose:          m.opts.User.Purpose,
			SeedSentence:     seed,
		})
		return sessionReadyMsg{Rec: rec, Err: err}
	}
}

// selectAndAdvanceCmd commits the choice, then either generates and
// appends the next scheduled step or, on the final step, closes the
// session with XP.
func (m model) selectAndAdvanceCmd(stepIndex, optionIndex int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rec, err := m.opts.Pyramids.Select(ctx, m.rec.ID, m.opts.User.ID, stepIndex, optionIndex)
		if err != nil {
			return stepAppendedMsg{Err: err}
		}

		if rec.LastStepIndex >= rec.TotalSteps-1 {
			ev, err := m.opts.Pyramids.Complete(ctx, rec.ID, m.opts.User.ID, true)
			return completedMsg{Event: ev, Err: err}
		}

		next, err := m.opts.Pyramids.NextStep(ctx, rec.ID, m.opts.User.ID)
		if err != nil {
			return stepAppendedMsg{Err: err}
		}
		rec, err = m.opts.Pyramids.Append(ctx, rec.ID, m.opts.User.ID, next)
		return stepAppendedMsg{Rec: rec, Err: err}
	}
}

// finishEarlyCmd ends the session without awarding XP.
func (m model) finishEarlyCmd() tea.Cmd {
	return func() tea.Msg {
		ev, err := m.opts.Pyramids.Complete(context.Background(), m.rec.ID, m.opts.User.ID, false)
		return completedMsg{Event: ev, Err: err}
	}
}

func (m model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var content string
	switch m.phase {
	case phaseSeed:
		content = m.renderSeed()
	case phaseCreating:
		content = m.renderWait("Building your pyramid")
	case phaseChoosing:
		content = m.renderChoosing()
	case phaseGenerating:
		content = m.renderWait("Generating the next step")
	case phaseFinishing:
		content = m.renderWait("Wrapping up")
	case phaseSummary:
		content = m.renderSummary()
	case phaseFailed:
		content = errorStyle.Render("Something went wrong:") + "\n\n" + bodyStyle.Render(m.errMsg)
	}

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	body := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, content)

	v.SetContent(header + "\n" + body + "\n" + footer)
	return v
}

func (m model) renderHeader() string {
	left := titleStyle.Render("  Lingopyr")
	right := ""
	if m.opts.User != nil {
		right = dimStyle.Render(fmt.Sprintf("%s · %s · %s ",
			m.opts.User.Username, m.opts.User.Level, xpStyle.Render(fmt.Sprintf("%d XP", m.opts.User.XP))))
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m model) renderFooter() string {
	var hints []string
	switch m.phase {
	case phaseSeed:
		hints = []string{"Enter start", "Ctrl+C quit"}
	case phaseChoosing:
		hints = []string{"1-3 choose", "Esc finish early", "Ctrl+C quit"}
	case phaseSummary, phaseFailed:
		hints = []string{"Q quit"}
	default:
		hints = []string{"Ctrl+C quit"}
	}
	line := dimStyle.Render("  " + strings.Join(hints, "  ·  "))
	if !m.started.IsZero() && m.phase != phaseSeed {
		elapsed := dimStyle.Render(formatElapsed(m.elapsed) + " ")
		gap := m.width - lipgloss.Width(line) - lipgloss.Width(elapsed)
		if gap < 1 {
			gap = 1
		}
		return line + strings.Repeat(" ", gap) + elapsed
	}
	return line
}

func (m model) renderSeed() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New pyramid session"))
	b.WriteString("\n\n")
	if m.opts.User != nil {
		b.WriteString(bodyStyle.Render(fmt.Sprintf("%s, %s", m.opts.User.LearningLanguage, m.opts.User.Level)))
		b.WriteString("\n\n")
	}
	b.WriteString(dimStyle.Render("Opening sentence:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderWait(label string) string {
	dots := strings.Repeat(".", 1+int(m.elapsed.Seconds())%3)
	return bodyStyle.Render(label) + dimStyle.Render(dots)
}

func (m model) renderChoosing() string {
	step := m.currentStep()
	if step == nil {
		return errorStyle.Render("No step to show.")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("Step %d of %d", m.rec.LastStepIndex+1, m.rec.TotalSteps)))
	b.WriteString("  ")
	b.WriteString(kindStyle.Render(strings.ToUpper(string(step.Kind))))
	b.WriteString("\n\n")

	sentence := step.InitialSentence
	if step.InitialSentenceMeaning != "" {
		sentence += "\n" + meaningStyle.Render(step.InitialSentenceMeaning)
	}
	b.WriteString(sentenceStyle.Render(sentence))
	b.WriteString("\n\n")

	for i := range step.OptionCount() {
		text, _ := step.OptionSentence(i)
		meaning, _ := step.OptionMeaning(i)
		b.WriteString(optionKeyStyle.Render(fmt.Sprintf("  %d  ", i+1)))
		b.WriteString(bodyStyle.Render(text))
		if meaning != "" {
			b.WriteString("\n     " + meaningStyle.Render(meaning))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummary lists the chain of chosen sentences and the XP outcome.
func (m model) renderSummary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Session complete"))
	b.WriteString("\n\n")

	if m.rec != nil {
		for i, st := range m.rec.Steps {
			if st.SelectedSentence == "" {
				continue
			}
			b.WriteString(dimStyle.Render(fmt.Sprintf("%2d ", i+1)))
			b.WriteString(bodyStyle.Render(st.SelectedSentence))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.event == nil:
		b.WriteString(dimStyle.Render("Already completed elsewhere."))
	case m.event.XPEarned > 0:
		b.WriteString(xpStyle.Render(fmt.Sprintf("+%d XP", m.event.XPEarned)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  in %s", formatElapsed(m.elapsed))))
	default:
		b.WriteString(dimStyle.Render("Ended early, no XP awarded."))
	}
	return b.String()
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
