package quiztui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"learnquiz/internal/question"
	"learnquiz/internal/quiz"
)

// Options configures the TUI shell. A Subset of choice or open skips
// the menu and starts that quiz directly, mirroring the --subset flag
// of the plain shell.
type Options struct {
	Shuffle bool
	Bands   []quiz.Band
	NoColor bool
	Subset  question.Subset
}

// Model is the Bubble Tea shell: a menu, an explicit per-question
// asking/judged state machine, and results/stats screens. Judging
// itself is delegated to the quiz package so this shell and the
// console shell score identically.
type Model struct {
	session *quiz.Session
	opts    Options

	screen screen
	run    *runState
	input  textinput.Model
	stats  table.Model
	notice string
	width  int
}

// NewModel constructs the TUI over a loaded session.
func NewModel(session *quiz.Session, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "type your answer"
	input.CharLimit = 256
	m := Model{
		session: session,
		opts:    opts,
		screen:  screenMenu,
		input:   input,
	}
	if opts.Subset == question.SubsetChoice || opts.Subset == question.SubsetOpen {
		m.beginRun(opts.Subset)
	}
	return m
}

// Init requests no initial work; the TUI is fully key-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update drives the screen state machine from key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(typed)
		case screenAsking:
			return m.updateAsking(typed)
		case screenJudged:
			return m.updateJudged(typed)
		case screenResults:
			return m.updateResults(typed)
		case screenStats:
			return m.updateStats(typed)
		}
	}
	return m, nil
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "1":
		return m.startQuiz(question.SubsetAll)
	case "2":
		return m.startQuiz(question.SubsetChoice)
	case "3":
		return m.startQuiz(question.SubsetOpen)
	case "4":
		m.stats = newStatsTable(m.session.Stats(), m.opts.NoColor)
		m.screen = screenStats
		m.notice = ""
		return m, nil
	case "r":
		m.session.Reload()
		m.notice = "Questions reloaded."
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) startQuiz(subset question.Subset) (tea.Model, tea.Cmd) {
	m.beginRun(subset)
	return m, nil
}

// beginRun starts a quiz over a subset, staying on the menu with a
// notice when the subset is empty.
func (m *Model) beginRun(subset question.Subset) {
	items := m.session.Subset(subset)
	if len(items) == 0 {
		m.notice = "No questions available for this selection."
		return
	}
	if m.opts.Shuffle {
		items = quiz.Shuffled(items)
	}
	m.run = &runState{attemptID: uuid.NewString(), items: items}
	m.screen = screenAsking
	m.notice = ""
	m.prepareInput()
}

// prepareInput resets the free-text field for an open question.
func (m *Model) prepareInput() {
	if m.run.current().IsOpen() {
		m.input.SetValue("")
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) updateAsking(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.run.current()
	if item.IsOpen() {
		if key.Type == tea.KeyEnter {
			answer := m.input.Value()
			m.judge(quiz.Verdict{
				Given:   strings.TrimSpace(answer),
				Correct: quiz.JudgeOpen(item, answer),
			})
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}

	entered := strings.ToUpper(key.String())
	if _, ok := item.Options[entered]; ok {
		m.judge(quiz.Verdict{Given: entered, Correct: quiz.JudgeChoice(item, entered)})
		return m, nil
	}
	if len(key.String()) == 1 {
		m.notice = "Pick one of " + strings.Join(item.OptionKeys(), ", ") + "."
	}
	return m, nil
}

// judge moves the current question into the judged phase.
func (m *Model) judge(verdict quiz.Verdict) {
	if verdict.Correct {
		m.run.correct++
	}
	m.run.verdict = verdict
	m.run.overridable = m.run.current().IsOpen() && !verdict.Correct
	m.screen = screenJudged
	m.notice = ""
	m.input.Blur()
}

func (m Model) updateJudged(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "o":
		if m.run.overridable {
			m.run.correct++
			m.run.verdict.Correct = true
			m.run.verdict.Overridden = true
			m.run.overridable = false
		}
		return m, nil
	case "enter", "n", " ":
		if m.run.last() {
			m.run.band = quiz.Grade(m.run.result().Percentage(), m.opts.Bands)
			m.screen = screenResults
			return m, nil
		}
		m.run.index++
		m.screen = screenAsking
		m.prepareInput()
		return m, nil
	case "q", "esc":
		m.screen = screenMenu
		m.run = nil
		return m, nil
	}
	return m, nil
}

func (m Model) updateResults(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter", "m", "esc":
		m.screen = screenMenu
		m.run = nil
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateStats(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter", "m", "esc", "q":
		m.screen = screenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.stats, cmd = m.stats.Update(key)
	return m, cmd
}

// View renders the active screen.
func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return renderMenu(m.session, m.notice, m.opts.NoColor)
	case screenAsking:
		return renderAsking(m.run, m.input.View(), m.notice, m.opts.NoColor)
	case screenJudged:
		return renderJudged(m.run, m.opts.NoColor)
	case screenResults:
		return renderResults(m.run.result(), m.run.band, m.opts.NoColor)
	case screenStats:
		return renderStats(m.stats, m.opts.NoColor)
	}
	return ""
}
