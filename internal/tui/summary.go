package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SummaryRow struct {
	Label string
	Value string
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row.Label))
		valueWidth = max(valueWidth, len(row.Value))
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		line := fmt.Sprintf("%s | %s",
			labelStyle.Render(padRight(row.Label, labelWidth)),
			valueStyle.Render(padRight(row.Value, valueWidth)),
		)
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var valueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
