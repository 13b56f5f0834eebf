package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wellbeing/internal/engine"
	"wellbeing/internal/ui"
)

// RunQuiz steps through the quiz questions for one age group and submits the
// answers when the last one is picked. Returns the scored result, or nil if
// the user quit early.
func RunQuiz(ctx context.Context, svc *engine.Service, group string, out io.Writer) (*engine.QuizResult, error) {
	questions, err := engine.QuizBank(group)
	if err != nil {
		return nil, err
	}
	m := quizModel{
		ctx:       ctx,
		svc:       svc,
		group:     group,
		questions: questions,
	}
	final, err := tea.NewProgram(m, tea.WithOutput(out)).Run()
	if err != nil {
		return nil, err
	}
	fm := final.(quizModel)
	if fm.err != nil {
		return nil, fm.err
	}
	return fm.result, nil
}

type quizModel struct {
	ctx context.Context
	svc *engine.Service

	group     string
	questions []string
	step      int
	choice    int
	answers   []int

	submitting bool
	result     *engine.QuizResult
	err        error
}

type submittedMsg struct {
	result *engine.QuizResult
	err    error
}

func (m quizModel) Init() tea.Cmd {
	return nil
}

func (m quizModel) submitCmd() tea.Cmd {
	answers := m.answers
	return func() tea.Msg {
		res, err := m.svc.SubmitQuiz(m.ctx, m.group, answers)
		return submittedMsg{result: res, err: err}
	}
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		m.submitting = false
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.choice > 0 {
				m.choice--
			}
			return m, nil
		case "down", "j":
			if m.choice < len(engine.LikertLabels)-1 {
				m.choice++
			}
			return m, nil
		case "1", "2", "3", "4":
			m.choice = int(msg.String()[0] - '1')
			return m.pick()
		case "enter", " ":
			return m.pick()
		}
	}
	return m, nil
}

func (m quizModel) pick() (tea.Model, tea.Cmd) {
	m.answers = append(m.answers, m.choice+1)
	if m.step < len(m.questions)-1 {
		m.step++
		m.choice = 0
		return m, nil
	}
	m.submitting = true
	return m, m.submitCmd()
}

func (m quizModel) View() string {
	if m.result != nil || m.err != nil {
		return ""
	}
	if m.submitting {
		return ui.Muted.Render("Scoring…") + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconQuiz, "Digital Well-Being Quiz") + "\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("Question %d / %d", m.step+1, len(m.questions))) + "\n\n")
	b.WriteString(m.questions[m.step] + "\n\n")
	for i, label := range engine.LikertLabels {
		cursor := "  "
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i == m.choice {
			cursor = "> "
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + ui.Muted.Render("↑/↓ or 1-4 to choose, enter to confirm, q to quit") + "\n")
	return b.String()
}
