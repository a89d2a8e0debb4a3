package state

// OpenPrompt switches to the name prompt; action runs when it closes.
func OpenPrompt(s UIState, action PromptAction) UIState {
	s.Mode = PROMPT
	s.Pending = action
	s.Armed = ""
	return s
}

// ClosePrompt returns to the editor.
func ClosePrompt(s UIState) UIState {
	s.Mode = EDIT
	return s
}

// Toggle opens mode, or returns to the editor when mode is already open.
func Toggle(s UIState, mode Mode) UIState {
	if s.Mode == mode {
		s.Mode = EDIT
	} else {
		s.Mode = mode
	}
	s.Filtering = false
	s.Armed = ""
	return s
}

// Back leaves any pane for the editor and drops the file filter.
func Back(s UIState) UIState {
	s.Mode = EDIT
	s.Filtering = false
	s.Filter = ""
	return s
}

// Resize records the terminal size.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}

// SetLabel stores the editor label and clears an armed action, since the
// document changed.
func SetLabel(s UIState, label string) UIState {
	if s.Label != label {
		s.Armed = ""
	}
	s.Label = label
	return s
}

// Notify sets the notice shown in the status bar.
func Notify(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}

// StartFilter begins typing a file list filter.
func StartFilter(s UIState) UIState {
	s.Filtering = true
	s.Filter = ""
	return s
}

// EditFilter appends runes to the filter, or removes the last rune when
// backspace is true.
func EditFilter(s UIState, runes []rune, backspace bool) UIState {
	if backspace {
		if r := []rune(s.Filter); len(r) > 0 {
			s.Filter = string(r[:len(r)-1])
		}
		return s
	}
	s.Filter += string(runes)
	return s
}

// EndFilter stops typing but keeps the filter applied.
func EndFilter(s UIState) UIState {
	s.Filtering = false
	return s
}

// Confirm reports whether action may discard the document. A dirty
// document needs the same action twice in a row.
func Confirm(s UIState, action string, dirty bool) (UIState, bool) {
	if !dirty || s.Armed == action {
		s.Armed = ""
		return s, true
	}
	s.Armed = action
	s.Notice = "Unsaved changes: repeat to " + action + " anyway"
	return s, false
}

// ArmQuit is Confirm for quitting.
func ArmQuit(s UIState, dirty bool) (UIState, bool) {
	return Confirm(s, "quit", dirty)
}

// Disarm forgets a pending confirmation.
func Disarm(s UIState) UIState {
	s.Armed = ""
	return s
}

// ClearFilter stops typing and drops the filter.
func ClearFilter(s UIState) UIState {
	s.Filtering = false
	s.Filter = ""
	return s
}
