package util

import (
	"strings"

	"txtpad/internal/editor"
	"txtpad/internal/tui/state"
)

// ComputeTags derives the status chips for a document in state s holding
// text. The order is stable: Unnamed|Named, Clean|Dirty, Lines, Size.
func ComputeTags(s editor.State, text string) []state.Tag {
	tags := make([]state.Tag, 0, 4)

	if s.Named() {
		tags = append(tags, state.Tag{Kind: state.NAMED})
	} else {
		tags = append(tags, state.Tag{Kind: state.UNNAMED})
	}

	if s.Dirty() {
		tags = append(tags, state.Tag{Kind: state.DIRTY})
	} else {
		tags = append(tags, state.Tag{Kind: state.CLEAN})
	}

	tags = append(tags, state.Tag{Kind: state.LINES, Value: lineCount(text)})
	tags = append(tags, state.Tag{Kind: state.SIZE, Value: len(text)})
	return tags
}

// lineCount counts lines the way an editor shows them: an empty buffer has
// one line and a trailing newline opens another.
func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
