package editor

// Storage persists documents by name. Implementations live in internal/store.
type Storage interface {
	Put(name, content string) error
	Get(name string) (string, error)
	List() ([]string, error)
}

// Prompter asks the user for a filename. It reports false when the user
// cancelled or answered with a blank line.
type Prompter interface {
	Ask(message, def string) (string, bool)
}

// Labeler receives the state label after every transition.
type Labeler interface {
	SetLabel(text string)
}

// OpenFunc loads a stored document into the editor.
type OpenFunc func(name string) error

// Lister receives the stored names after every successful write.
type Lister interface {
	ShowFiles(names []string, open OpenFunc)
}

// Buffer is the document text the Context edits.
type Buffer interface {
	Text() string
	SetText(text string)
}

// StringBuffer is a Buffer backed by a plain string.
type StringBuffer struct {
	text string
}

func NewStringBuffer(text string) *StringBuffer { return &StringBuffer{text: text} }

func (b *StringBuffer) Text() string        { return b.text }
func (b *StringBuffer) SetText(text string) { b.text = text }

// LabelFunc adapts a function to a Labeler.
type LabelFunc func(text string)

func (f LabelFunc) SetLabel(text string) { f(text) }

// ListFunc adapts a function to a Lister.
type ListFunc func(names []string, open OpenFunc)

func (f ListFunc) ShowFiles(names []string, open OpenFunc) { f(names, open) }

type noPrompt struct{}

func (noPrompt) Ask(string, string) (string, bool) { return "", false }

type noLabel struct{}

func (noLabel) SetLabel(string) {}

type noList struct{}

func (noList) ShowFiles([]string, OpenFunc) {}
