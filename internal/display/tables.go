package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/dustcook/internal/engine"
)

// ── Table styles ─────────────────────────────────────────────────

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bae6fd")).
				Bold(true)

	tableRankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	tableRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	tableScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#52525b"))
)

// RenderRanking renders one ranked report as a bordered table. Columns are
// sized to the widest cell so the ingredient list never truncates.
func RenderRanking(title string, ranked []engine.Ranked) string {
	headers := []string{"#", "Recipe", "Ingredients", "Hunger", "Stress", "Sell", "Score"}
	rows := make([][]string, 0, len(ranked))
	for i, r := range ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Recipe,
			strings.Join(r.Ingredients, ", "),
			fmt.Sprintf("%d", r.Stats.Hunger),
			fmt.Sprintf("%d", r.Stats.Stress),
			fmt.Sprintf("%d", r.Stats.Sell),
			fmt.Sprintf("%d", r.Score),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(reportStyle.Render("  " + title))
	b.WriteByte('\n')

	sep := tableBorderStyle.Render("│")
	renderRow := func(cells []string, styles []lipgloss.Style) {
		b.WriteString("  ")
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(" " + sep + " ")
			}
			b.WriteString(styles[i].Render(pad(cell, widths[i])))
		}
		b.WriteByte('\n')
	}

	headerStyles := make([]lipgloss.Style, len(headers))
	for i := range headerStyles {
		headerStyles[i] = tableHeaderStyle
	}
	renderRow(headers, headerStyles)

	total := 2
	for i, w := range widths {
		if i > 0 {
			total += 3
		}
		total += w
	}
	b.WriteString("  " + tableBorderStyle.Render(strings.Repeat("─", total-2)))
	b.WriteByte('\n')

	rowStyles := []lipgloss.Style{
		tableRankStyle, tableRowStyle, tableRowStyle,
		tableRowStyle, tableRowStyle, tableRowStyle, tableScoreStyle,
	}
	for _, row := range rows {
		renderRow(row, rowStyles)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderIngredientList renders names as a comma-wrapped block, used by the
// inventory and solved listings.
func RenderIngredientList(names []string, width int) string {
	if len(names) == 0 {
		return secondaryStyle.Render("  (none)")
	}
	if width <= 0 {
		width = 78
	}

	var lines []string
	line := "  "
	for i, name := range names {
		cell := name
		if i < len(names)-1 {
			cell += ", "
		}
		if len(line)+len(cell) > width && line != "  " {
			lines = append(lines, line)
			line = "  "
		}
		line += cell
	}
	lines = append(lines, line)
	return primaryStyle.Render(strings.Join(lines, "\n"))
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
