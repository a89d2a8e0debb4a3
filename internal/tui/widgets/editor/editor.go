package editor

import (
	"fmt"
	"strings"

	"txtpad/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View frames the rendered pane with a header naming the pane that has
// focus. The document label lives in the status bar.
func (Editor) View(s state.UIState, body string) string {
	header := "[" + s.Mode.String() + "]"
	var b strings.Builder
	fmt.Fprintf(&b, "txtpad  %s\n", header)
	fmt.Fprintf(&b, "%s\n", body)
	return b.String()
}
