package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/waggle/internal/core/config"
	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/core/task"
)

const boardColumnWidth = 28

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.state == stateSearching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(styles.MutedStyle.Render("no tasks"))
		b.WriteString("\n")
	case m.view == config.ViewBoard:
		b.WriteString(m.renderBoard())
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("waggle")
	filter := styles.MutedStyle.Render(fmt.Sprintf("due:%s", m.due))
	count := styles.MutedStyle.Render(fmt.Sprintf("%d tasks", len(m.tasks)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", filter, "  ", count)
}

func (m Model) renderList() string {
	var b strings.Builder

	for i, t := range m.tasks {
		prefix := "  "
		if i == m.cursor {
			prefix = styles.TitleStyle.Render("> ")
		}

		b.WriteString(prefix)
		b.WriteString(m.renderRow(t, i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderRow(t task.Task, selected bool) string {
	urgency := task.Classify(t, m.now)

	title := styles.StatusStyle(t.Status).Render(t.Title)
	if selected {
		title = styles.TitleStyle.Render(t.Title)
	}

	meta := fmt.Sprintf("[%s]", t.Status)
	if t.Deadline != nil {
		meta += " " + t.Deadline.Local().Format(m.app.Config.DateFormat)
		if urgency != task.UrgencyNone && urgency != task.UrgencyNormal {
			meta += " " + urgency.String()
		}
	}

	return title + " " + styles.UrgencyStyle(urgency).Render(meta)
}

// boardColumns is the status lane order of the board view.
var boardColumns = []task.Status{
	task.StatusTodo,
	task.StatusInProgress,
	task.StatusDone,
}

func (m Model) renderBoard() string {
	colStyle := lipgloss.NewStyle().
		Width(boardColumnWidth).
		PaddingRight(2)

	cols := make([]string, 0, len(boardColumns))
	for _, status := range boardColumns {
		var b strings.Builder
		b.WriteString(styles.HeaderStyle.Render(strings.ToUpper(status.String())))
		b.WriteString("\n")

		for i, t := range m.tasks {
			if t.Status != status {
				continue
			}

			marker := "· "
			if i == m.cursor {
				marker = styles.TitleStyle.Render("> ")
			}

			urgency := task.Classify(t, m.now)
			b.WriteString(marker)
			b.WriteString(styles.UrgencyStyle(urgency).Render(truncate(t.Title, boardColumnWidth-4)))
			b.WriteString("\n")
		}

		cols = append(cols, colStyle.Render(b.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// truncate shortens s to max runes. Byte slicing would split
// multi-byte runes at the cut point.
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}
