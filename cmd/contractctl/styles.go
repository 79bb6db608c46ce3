package main

import (
	"strings"

	"contract_tracker/internal/domain/entities"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeader   = lipgloss.Color("#0e4b66")
	colorMuted    = lipgloss.Color("#718096")
	colorCreated  = lipgloss.Color("#4A5568")
	colorApproved = lipgloss.Color("#2B6CB0")
	colorSent     = lipgloss.Color("#B7791F")
	colorSigned   = lipgloss.Color("#2F855A")
	colorLocked   = lipgloss.Color("#553C9A")
	colorRevoked  = lipgloss.Color("#C53030")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	statusPalette = map[entities.ContractStatus]lipgloss.Color{
		entities.ContractStatusCreated:  colorCreated,
		entities.ContractStatusApproved: colorApproved,
		entities.ContractStatusSent:     colorSent,
		entities.ContractStatusSigned:   colorSigned,
		entities.ContractStatusLocked:   colorLocked,
		entities.ContractStatusRevoked:  colorRevoked,
	}
)

func statusStyle(s entities.ContractStatus) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(statusPalette[s])
}

type column struct {
	title string
	width int
}

// renderTable lays rows out in fixed-width columns. Cells longer than their
// column are cut with an ellipsis.
func renderTable(cols []column, rows [][]string, styleCell func(row, col int, s string) string) string {
	var b strings.Builder

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = headerStyle.Width(col.width).Render(col.title)
	}
	b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, header...), " "))
	b.WriteByte('\n')

	for r, row := range rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			text := truncate(row[i], col.width-2)
			if styleCell != nil {
				text = styleCell(r, i, text)
			}
			cells[i] = lipgloss.NewStyle().Width(col.width).Render(text)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 1 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
