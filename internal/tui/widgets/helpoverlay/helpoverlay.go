package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"txtpad/internal/tui/state"
)

// Section is a titled group of key bindings.
type Section struct {
	Title string
	Keys  []key.Binding
}

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current document label.
func (HelpOverlay) View(s state.UIState, sections []Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Document: %s)\n", s.Label)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Keys {
			if !k.Enabled() {
				continue
			}
			h := k.Help()
			fmt.Fprintf(&b, "  %s: %s\n", h.Key, h.Desc)
		}
	}
	return b.String()
}
