package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/mealweek/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))
)

func mark(v bool) string {
	if v {
		return "✓"
	}
	return ""
}

// renderPlan draws the plan as a table in plan order.
func renderPlan(entries []models.PlanEntry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "DISH", "VEGGIE", "SPECIAL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, e := range entries {
		t.Row(strconv.Itoa(i+1), e.Name, mark(e.Veggie), mark(e.Special))
	}
	return t.String()
}

func printAttempt(w io.Writer, a *Attempt) {
	if a.Warnings.HasConflicts() {
		fmt.Fprintln(w, dimStyle.Render(a.Warnings.FormatReport()))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, renderPlan(a.Plan))

	if len(a.Unused) > 0 {
		fmt.Fprintf(w, "⚠ No dish uses these leftovers: %s\n", strings.Join(a.Unused, ", "))
	}
	if len(a.Unplaced) > 0 {
		fmt.Fprintf(w, "⚠ Leftover dishes left out of the plan: %s\n", strings.Join(a.Unplaced, ", "))
	}
}
