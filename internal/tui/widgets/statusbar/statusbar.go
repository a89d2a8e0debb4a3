package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"txtpad/internal/tui/state"
	"txtpad/internal/tui/widgets/tagchips"
)

type StatusBar struct {
	NoColor bool
}

func NewStatusBar(noColor bool) StatusBar { return StatusBar{NoColor: noColor} }

var labelStyle = lipgloss.NewStyle().Bold(true)

// View composes a status line: document label, chips and notice.
func (b StatusBar) View(s state.UIState, tags []state.Tag) string {
	label := s.Label
	if !b.NoColor {
		label = labelStyle.Render(label)
	}
	parts := []string{label}
	if chips := tagchips.View(tags, b.NoColor); chips != "" {
		parts = append(parts, chips)
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
