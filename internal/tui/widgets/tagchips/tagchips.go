package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"txtpad/internal/tui/state"
	"txtpad/internal/tui/util"
)

// View renders document tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.UNNAMED:
		return "Unsaved"
	case state.NAMED:
		return "Saved"
	case state.CLEAN:
		return "Clean"
	case state.DIRTY:
		return "Modified"
	case state.LINES:
		if t.Value == 1 {
			return "1 line"
		}
		return fmt.Sprintf("%d lines", t.Value)
	case state.SIZE:
		return humanize.Bytes(uint64(t.Value))
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.Text)
	switch t.Kind {
	case state.UNNAMED:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.NAMED:
		return base.Background(p.Primary)
	case state.CLEAN:
		return base.Background(p.Success)
	case state.DIRTY:
		return base.Background(p.Danger)
	default:
		return base.Background(p.Muted)
	}
}
