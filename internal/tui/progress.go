// Package tui renders coverage runs: a bubbletea progress view for
// terminals and lipgloss-styled reports for plain output.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/normdist/internal/simulate"
)

// RunFunc performs a coverage run, reporting through progress.
type RunFunc func(ctx context.Context, progress simulate.ProgressFunc) (simulate.SuiteResult, error)

// progressMsg is sent after each finished trial.
type progressMsg struct{ done, total int }

// doneMsg is sent once the run returns.
type doneMsg struct {
	result simulate.SuiteResult
	err    error
}

// model is the bubbletea model for a running coverage simulation.
type model struct {
	title   string
	total   int
	done    int
	spinner spinner.Model
	bar     progress.Model
	started time.Time

	// cancel stops the run when the user quits early.
	cancel   context.CancelFunc
	finished bool
	result   simulate.SuiteResult
	err      error
	width    int
}

func newModel(title string, total int, cancel context.CancelFunc) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		title:   title,
		total:   total,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient()),
		started: time.Now(),
		cancel:  cancel,
	}
}

// Init starts the spinner.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles trial progress, completion, resizing and quit keys.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(10, min(msg.Width-4, 60))
		return m, nil

	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, nil

	case doneMsg:
		m.finished = true
		m.result, m.err = msg.result, msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// View renders the bar while running and the summary once finished.
func (m *model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.finished {
		return Summary(m.result)
	}

	var b strings.Builder
	elapsed := fmt.Sprintf("%.1f", time.Since(m.started).Seconds())
	b.WriteString(fmt.Sprintf("\n  %s %s... %ss\n\n", m.spinner.View(), m.title, elapsed))
	b.WriteString("  " + m.bar.ViewAs(m.percent()) + "\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d/%d trials (q to quit)", m.done, m.total)) + "\n")
	return b.String()
}

// Run executes run behind a progress view and returns its result. Quitting
// the view cancels the run's context.
func Run(ctx context.Context, title string, total int, run RunFunc, opts ...tea.ProgramOption) (simulate.SuiteResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(title, total, cancel)
	p := tea.NewProgram(m, opts...)

	go func() {
		res, err := run(ctx, func(done, total int) {
			p.Send(progressMsg{done: done, total: total})
		})
		p.Send(doneMsg{result: res, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return simulate.SuiteResult{}, fmt.Errorf("progress view: %w", err)
	}
	fm := final.(*model)
	if !fm.finished {
		return simulate.SuiteResult{}, context.Canceled
	}
	return fm.result, fm.err
}
