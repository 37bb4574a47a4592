package tui

import (
	"mrisafe/internal/domain/entity"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the terminal surface.
type Styles struct {
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Summary    lipgloss.Style
	DeviceName lipgloss.Style
	Panel      lipgloss.Style
	Status     map[entity.SafetyStatus]lipgloss.Style
}

// DefaultStyles mirrors the safety colours used on the web: green, amber, red and grey.
func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		Summary:    lipgloss.NewStyle().Italic(true),
		DeviceName: lipgloss.NewStyle().Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D1D5DB")).
			Padding(0, 1),
		Status: map[entity.SafetyStatus]lipgloss.Style{
			entity.SafetyStatusSafe:        badge.Foreground(lipgloss.Color("#065F46")).Background(lipgloss.Color("#D1FAE5")),
			entity.SafetyStatusConditional: badge.Foreground(lipgloss.Color("#92400E")).Background(lipgloss.Color("#FEF3C7")),
			entity.SafetyStatusUnsafe:      badge.Foreground(lipgloss.Color("#991B1B")).Background(lipgloss.Color("#FEE2E2")),
			entity.SafetyStatusUnknown:     badge.Foreground(lipgloss.Color("#374151")).Background(lipgloss.Color("#F3F4F6")),
		},
	}
}

func (s Styles) statusBadge(status entity.SafetyStatus) string {
	style, ok := s.Status[status]
	if !ok {
		style = s.Status[entity.SafetyStatusUnknown]
	}

	return style.Render(string(status))
}
