package editor

import "strings"

// Extension is appended to every name given through save-as.
const Extension = ".txt"

// Kind is the position of a document in the (named, dirty) space.
type Kind int

const (
	CleanUnsaved Kind = iota
	DirtyUnsaved
	CleanSaved
	DirtySaved
)

func (k Kind) String() string {
	switch k {
	case CleanUnsaved:
		return "clean-unsaved"
	case DirtyUnsaved:
		return "dirty-unsaved"
	case CleanSaved:
		return "clean-saved"
	case DirtySaved:
		return "dirty-saved"
	default:
		return "unknown"
	}
}

// State is the save lifecycle of the open document. The zero value is
// CleanUnsaved. States are values; every transition returns a new one.
type State struct {
	kind Kind
	name string
}

// Saved returns CleanSaved(name).
func Saved(name string) State { return State{kind: CleanSaved, name: name} }

func (s State) Kind() Kind { return s.kind }

// Named reports whether a filename has been assigned.
func (s State) Named() bool { return s.kind == CleanSaved || s.kind == DirtySaved }

// Dirty reports whether the buffer has changed since the last save.
func (s State) Dirty() bool { return s.kind == DirtyUnsaved || s.kind == DirtySaved }

// Filename returns the assigned name, if any.
func (s State) Filename() (string, bool) {
	if !s.Named() {
		return "", false
	}
	return s.name, true
}

// Label is the text shown in the status bar.
func (s State) Label() string {
	switch s.kind {
	case DirtyUnsaved:
		return "*"
	case CleanSaved:
		return s.name
	case DirtySaved:
		return s.name + " *"
	default:
		return "_"
	}
}

func (s State) String() string {
	if s.Named() {
		return s.kind.String() + "(" + s.name + ")"
	}
	return s.kind.String()
}

// Input marks the buffer as changed.
func (s State) Input() State {
	switch s.kind {
	case CleanUnsaved:
		return State{kind: DirtyUnsaved}
	case CleanSaved:
		return State{kind: DirtySaved, name: s.name}
	default:
		return s
	}
}

// SaveTarget returns the name a plain save writes under. Unnamed states
// report false and must go through save-as.
func (s State) SaveTarget() (string, bool) {
	return s.Filename()
}

// Commit is the state after content was written under name.
func (s State) Commit(name string) State {
	return Saved(name)
}

// NewFile forgets the filename and any changes.
func (s State) NewFile() State {
	return State{}
}

// NormalizeName appends Extension when the name does not already end with
// it. Blank names report false. Anything else is kept as typed.
func NormalizeName(name string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name, true
}
