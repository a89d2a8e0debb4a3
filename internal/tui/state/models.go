package state

// Mode is the pane that currently receives keys.
type Mode int

const (
	EDIT Mode = iota
	PROMPT
	FILES
	DIFF
	HELP
)

func (m Mode) String() string {
	switch m {
	case PROMPT:
		return "NAME"
	case FILES:
		return "FILES"
	case DIFF:
		return "DIFF"
	case HELP:
		return "HELP"
	default:
		return "EDIT"
	}
}

// PromptAction is what runs once the name prompt is answered.
type PromptAction int

const (
	SAVE PromptAction = iota
	SAVE_AS
)

// UIState holds cross-widget UI state used by the status bar, file list,
// diff and editor panes.
type UIState struct {
	Mode    Mode
	Pending PromptAction

	// Layout
	Width  int
	Height int

	// Editor label as last published by the editor context
	Label string

	// File list filtering
	Filtering bool
	Filter    string

	// Action (quit, new, open NAME) pressed once with unsaved changes; the
	// same action again goes ahead
	Armed string

	// Notices and ephemeral messages
	Notice string
}
