package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wellbeing/internal/engine"
	"wellbeing/internal/ui"
)

// RunFocus runs a focus countdown for the given number of minutes and logs
// the session when the timer reaches zero. Quitting early logs nothing.
func RunFocus(ctx context.Context, svc *engine.Service, minutes int, out io.Writer) (bool, error) {
	minutes = engine.ClampFocusMinutes(minutes)
	m := focusModel{
		ctx:     ctx,
		svc:     svc,
		minutes: minutes,
		endAt:   time.Now().Add(time.Duration(minutes) * time.Minute),
	}
	final, err := tea.NewProgram(m, tea.WithOutput(out)).Run()
	if err != nil {
		return false, err
	}
	fm := final.(focusModel)
	return fm.done, fm.err
}

type focusModel struct {
	ctx context.Context
	svc *engine.Service

	minutes int
	endAt   time.Time
	remain  time.Duration

	done bool
	err  error
}

type tickMsg time.Time

type loggedMsg struct{ err error }

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m focusModel) Init() tea.Cmd {
	return tick()
}

func (m focusModel) logCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedMsg{err: m.svc.LogFocus(m.ctx, m.minutes)}
	}
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.remain = time.Until(m.endAt)
		if m.remain <= 0 {
			m.remain = 0
			m.done = true
			return m, m.logCmd()
		}
		return m, tick()
	case loggedMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "s":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	if m.done {
		return ""
	}
	remain := m.remain.Round(time.Second)
	if remain < 0 {
		remain = 0
	}
	mm := int(remain.Minutes())
	ss := int(remain.Seconds()) % 60
	return fmt.Sprintf("%s\n\n  %s\n\n%s\n",
		ui.Heading(ui.IconTimer, fmt.Sprintf("Focus: %d min session", m.minutes)),
		ui.Title.Render(fmt.Sprintf("%02d:%02d", mm, ss)),
		ui.Muted.Render("s or q to stop without logging"))
}
