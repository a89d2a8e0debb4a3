package editor

import (
	"errors"
	"fmt"
)

// PromptMessage is shown when asking for a filename.
const PromptMessage = "Enter a File Name"

var ErrNoStorage = errors.New("no storage configured")

// Context owns the current State and the document Buffer. It runs the
// side effects (prompt, write, label, file list) around the pure State
// transitions. It is not safe for concurrent use; callers serialise events.
type Context struct {
	state   State
	buf     Buffer
	store   Storage
	prompt  Prompter
	labeler Labeler
	lister  Lister
	log     func(format string, args ...any)
}

type Option func(*Context)

func WithStorage(s Storage) Option  { return func(c *Context) { c.store = s } }
func WithPrompter(p Prompter) Option { return func(c *Context) { c.prompt = p } }
func WithLabeler(l Labeler) Option  { return func(c *Context) { c.labeler = l } }
func WithLister(l Lister) Option    { return func(c *Context) { c.lister = l } }

// WithLogger sets a printf-style logger for transitions and writes.
func WithLogger(fn func(format string, args ...any)) Option {
	return func(c *Context) {
		if fn != nil {
			c.log = fn
		}
	}
}

// New returns a Context in CleanUnsaved and publishes its label.
func New(buf Buffer, opts ...Option) *Context {
	c := &Context{
		buf:     buf,
		prompt:  noPrompt{},
		labeler: noLabel{},
		lister:  noList{},
		log:     func(string, ...any) {},
	}
	if c.buf == nil {
		c.buf = NewStringBuffer("")
	}
	for _, o := range opts {
		o(c)
	}
	c.setState(State{})
	return c
}

func (c *Context) State() State { return c.state }
func (c *Context) Text() string { return c.buf.Text() }

func (c *Context) setState(s State) {
	if s != c.state {
		c.log("state %s -> %s", c.state, s)
	}
	c.state = s
	c.labeler.SetLabel(s.Label())
}

// HandleInput records that the buffer changed. It must be called for every
// edit, including programmatic replacement of the text.
func (c *Context) HandleInput() {
	c.setState(c.state.Input())
}

// Save writes the buffer under the current filename, or behaves as SaveAs
// when the document has none.
func (c *Context) Save() error {
	name, ok := c.state.SaveTarget()
	if !ok {
		return c.SaveAs()
	}
	return c.write(name, c.buf.Text())
}

// SaveAs asks for a filename and writes the buffer under it. A blank or
// cancelled answer leaves everything as it was.
func (c *Context) SaveAs() error {
	answer, ok := c.prompt.Ask(PromptMessage, "")
	if !ok {
		c.log("save as cancelled")
		return nil
	}
	name, ok := NormalizeName(answer)
	if !ok {
		c.log("save as cancelled: blank name")
		return nil
	}
	return c.write(name, c.buf.Text())
}

// write persists content and only then commits the new state. A failed
// listing after a successful write keeps the new state.
func (c *Context) write(name, content string) error {
	if c.store == nil {
		return fmt.Errorf("save %s: %w", name, ErrNoStorage)
	}
	if err := c.store.Put(name, content); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	c.log("wrote %s (%d bytes)", name, len(content))
	c.setState(c.state.Commit(name))
	return c.Refresh()
}

// NewFile clears the buffer and forgets the filename.
func (c *Context) NewFile() {
	c.buf.SetText("")
	c.setState(c.state.NewFile())
}

// OpenFile loads content into the buffer as the clean document name. When
// the buffer does not hold content verbatim afterwards (a widget that
// rewrites tabs or line endings), the document opens dirty instead.
func (c *Context) OpenFile(name, content string) {
	c.buf.SetText(content)
	next := Saved(name)
	if c.buf.Text() != content {
		c.log("open %s: buffer altered content", name)
		next = next.Input()
	}
	c.setState(next)
}

// Open reads name from storage and opens it.
func (c *Context) Open(name string) error {
	if c.store == nil {
		return fmt.Errorf("open %s: %w", name, ErrNoStorage)
	}
	content, err := c.store.Get(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	c.OpenFile(name, content)
	return nil
}

// Refresh publishes the stored names to the Lister.
func (c *Context) Refresh() error {
	if c.store == nil {
		return nil
	}
	names, err := c.store.List()
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}
	c.lister.ShowFiles(names, c.Open)
	return nil
}

// SavedText returns what storage holds under the current filename. Unnamed
// documents report false.
func (c *Context) SavedText() (string, bool, error) {
	name, ok := c.state.Filename()
	if !ok || c.store == nil {
		return "", false, nil
	}
	content, err := c.store.Get(name)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", name, err)
	}
	return content, true, nil
}
