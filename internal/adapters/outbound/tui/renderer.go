// Package tui renders orders and products for the terminal.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	statBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(0, 2).
			Align(lipgloss.Center)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	valueStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	okStyle       = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	columnStyle   = lipgloss.NewStyle().Bold(true).Foreground(dim)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	statusColors = map[domain.Status]lipgloss.Color{
		domain.StatusPending:    warning,
		domain.StatusInProgress: info,
		domain.StatusCompleted:  success,
	}
)

func statusStyled(s domain.Status) string {
	color, ok := statusColors[s]
	if !ok {
		color = dim
	}
	return lipgloss.NewStyle().Foreground(color).Render(padRight(string(s), 10))
}

// statBox renders one labeled figure.
func statBox(label, value string) string {
	return statBoxStyle.Render(dimStyle.Render(label) + "\n" + valueStyle.Render(value))
}

func statRow(boxes ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func money(raw string) string {
	if raw == "" {
		return "-"
	}
	return "$" + raw
}

// RenderValidation lists a validation failure field by field.
func RenderValidation(err *domain.ValidationError) string {
	var b strings.Builder
	b.WriteString("  " + failStyle.Render("Invalid input") + "\n")
	for _, field := range sortedFields(err.Fields) {
		fmt.Fprintf(&b, "    %s %s\n",
			columnStyle.Render(padRight(field, 12)),
			err.Fields[field])
	}
	return b.String()
}

func sortedFields(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
