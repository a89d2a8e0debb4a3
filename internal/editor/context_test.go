package editor

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

type fakeStore struct {
	files  map[string]string
	writes int
	putErr error
}

func newFakeStore() *fakeStore { return &fakeStore{files: map[string]string{}} }

func (f *fakeStore) Put(name, content string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.writes++
	f.files[name] = content
	return nil
}

func (f *fakeStore) Get(name string) (string, error) {
	c, ok := f.files[name]
	if !ok {
		return "", errors.New("missing " + name)
	}
	return c, nil
}

func (f *fakeStore) List() ([]string, error) {
	names := make([]string, 0, len(f.files))
	for k := range f.files {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

type fakePrompt struct {
	answer string
	ok     bool
	asked  int
}

func (p *fakePrompt) Ask(message, def string) (string, bool) {
	p.asked++
	return p.answer, p.ok
}

type harness struct {
	ctx    *Context
	buf    *StringBuffer
	store  *fakeStore
	prompt *fakePrompt
	labels []string
	lists  [][]string
}

func newHarness() *harness {
	h := &harness{buf: NewStringBuffer(""), store: newFakeStore(), prompt: &fakePrompt{}}
	h.ctx = New(h.buf,
		WithStorage(h.store),
		WithPrompter(h.prompt),
		WithLabeler(LabelFunc(func(s string) { h.labels = append(h.labels, s) })),
		WithLister(ListFunc(func(names []string, _ OpenFunc) { h.lists = append(h.lists, names) })),
	)
	return h
}

func (h *harness) label() string { return h.labels[len(h.labels)-1] }

func (h *harness) answer(name string) {
	h.prompt.answer, h.prompt.ok = name, true
}

func (h *harness) cancel() {
	h.prompt.answer, h.prompt.ok = "", false
}

func TestNewPublishesInitialLabel(t *testing.T) {
	h := newHarness()
	if len(h.labels) != 1 || h.label() != "_" {
		t.Fatalf("expected initial label _, got %v", h.labels)
	}
}

func TestScenarioSaveUnnamed(t *testing.T) {
	h := newHarness()
	h.buf.SetText("hello")
	h.ctx.HandleInput()
	if h.label() != "*" {
		t.Fatalf("expected *, got %q", h.label())
	}
	h.answer("note")
	if err := h.ctx.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if h.ctx.State() != Saved("note.txt") || h.label() != "note.txt" {
		t.Fatalf("unexpected state %s label %q", h.ctx.State(), h.label())
	}
	if h.store.files["note.txt"] != "hello" {
		t.Fatalf("storage: %v", h.store.files)
	}
	if len(h.lists) != 1 || h.lists[0][0] != "note.txt" {
		t.Fatalf("expected file list refresh, got %v", h.lists)
	}
}

func TestScenarioResaveNamed(t *testing.T) {
	h := newHarness()
	h.store.files["note.txt"] = "hello"
	h.ctx.OpenFile("note.txt", "hello")
	h.buf.SetText("bye")
	h.ctx.HandleInput()
	if h.label() != "note.txt *" {
		t.Fatalf("expected dirty label, got %q", h.label())
	}
	if err := h.ctx.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if h.prompt.asked != 0 {
		t.Fatalf("named save must not prompt")
	}
	if h.ctx.State() != Saved("note.txt") || h.store.files["note.txt"] != "bye" {
		t.Fatalf("state %s storage %v", h.ctx.State(), h.store.files)
	}
}

func TestScenarioNewFileForgetsName(t *testing.T) {
	h := newHarness()
	h.store.files["note.txt"] = "bye"
	h.ctx.OpenFile("note.txt", "bye")
	h.buf.SetText("draft")
	h.ctx.HandleInput()
	h.ctx.NewFile()
	if h.ctx.State().Kind() != CleanUnsaved || h.label() != "_" {
		t.Fatalf("state %s label %q", h.ctx.State(), h.label())
	}
	if h.ctx.Text() != "" {
		t.Fatalf("buffer not cleared: %q", h.ctx.Text())
	}
	if h.store.files["note.txt"] != "bye" {
		t.Fatalf("storage changed: %v", h.store.files)
	}
}

func TestScenarioCancelledSaveAs(t *testing.T) {
	for _, start := range allStates() {
		h := newHarness()
		h.ctx.setState(start)
		h.cancel()
		if err := h.ctx.SaveAs(); err != nil {
			t.Fatalf("save as: %v", err)
		}
		if h.ctx.State() != start || h.store.writes != 0 {
			t.Fatalf("%s: cancelled prompt changed state to %s or wrote %d", start, h.ctx.State(), h.store.writes)
		}
		if h.prompt.asked != 1 {
			t.Fatalf("%s: expected one prompt, got %d", start, h.prompt.asked)
		}
	}
}

// tabBuffer expands tabs on SetText, the way a text widget might.
type tabBuffer struct{ StringBuffer }

func (b *tabBuffer) SetText(text string) {
	b.StringBuffer.SetText(strings.ReplaceAll(text, "\t", "    "))
}

func TestOpenFileIntoAlteringBufferIsDirty(t *testing.T) {
	buf := &tabBuffer{}
	ctx := New(buf)
	ctx.OpenFile("a.txt", "a\tb")
	if ctx.State() != Saved("a.txt").Input() || ctx.State().Label() != "a.txt *" {
		t.Fatalf("altered content should open dirty, got %s", ctx.State())
	}
	ctx.OpenFile("b.txt", "plain")
	if ctx.State() != Saved("b.txt") {
		t.Fatalf("verbatim content should open clean, got %s", ctx.State())
	}
}

func TestBlankSaveAsIsNoop(t *testing.T) {
	for _, start := range allStates() {
		h := newHarness()
		h.ctx.setState(start)
		h.answer("   ")
		if err := h.ctx.SaveAs(); err != nil {
			t.Fatalf("save as: %v", err)
		}
		if h.ctx.State() != start || h.store.writes != 0 {
			t.Fatalf("%s: blank answer changed state to %s or wrote %d", start, h.ctx.State(), h.store.writes)
		}
	}
}

func TestScenarioOpenFileFromAnyState(t *testing.T) {
	for _, start := range allStates() {
		h := newHarness()
		h.ctx.setState(start)
		h.ctx.OpenFile("a.txt", "content")
		if h.ctx.State() != Saved("a.txt") || h.ctx.Text() != "content" || h.label() != "a.txt" {
			t.Fatalf("%s: open gave %s %q %q", start, h.ctx.State(), h.ctx.Text(), h.label())
		}
	}
}

func TestSaveAsExtensionRoundTrip(t *testing.T) {
	h := newHarness()
	h.answer("x")
	if err := h.ctx.SaveAs(); err != nil {
		t.Fatal(err)
	}
	if name, _ := h.ctx.State().Filename(); name != "x.txt" {
		t.Fatalf("expected x.txt, got %q", name)
	}
	h.answer("x.txt")
	if err := h.ctx.SaveAs(); err != nil {
		t.Fatal(err)
	}
	if name, _ := h.ctx.State().Filename(); name != "x.txt" {
		t.Fatalf("expected x.txt without double suffix, got %q", name)
	}
}

func TestSaveAsRenamesNamedDocument(t *testing.T) {
	h := newHarness()
	h.ctx.OpenFile("a.txt", "body")
	h.ctx.HandleInput()
	h.answer("b")
	if err := h.ctx.SaveAs(); err != nil {
		t.Fatal(err)
	}
	if h.ctx.State() != Saved("b.txt") || h.store.files["b.txt"] != "body" {
		t.Fatalf("state %s storage %v", h.ctx.State(), h.store.files)
	}
}

func TestCleanSaveStillWrites(t *testing.T) {
	h := newHarness()
	h.ctx.OpenFile("a.txt", "same")
	if err := h.ctx.Save(); err != nil {
		t.Fatal(err)
	}
	if h.store.writes != 1 || h.ctx.State() != Saved("a.txt") {
		t.Fatalf("writes %d state %s", h.store.writes, h.ctx.State())
	}
}

func TestFailedWriteKeepsState(t *testing.T) {
	h := newHarness()
	h.ctx.OpenFile("a.txt", "x")
	h.ctx.HandleInput()
	before := len(h.labels)
	boom := errors.New("disk full")
	h.store.putErr = boom
	err := h.ctx.Save()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped disk error, got %v", err)
	}
	if h.ctx.State().Kind() != DirtySaved {
		t.Fatalf("state advanced after failed write: %s", h.ctx.State())
	}
	if len(h.labels) != before {
		t.Fatalf("label republished after failed write")
	}
}

func TestSaveWithoutStorage(t *testing.T) {
	c := New(nil, WithPrompter(&fakePrompt{answer: "a", ok: true}))
	if err := c.Save(); !errors.Is(err, ErrNoStorage) {
		t.Fatalf("expected ErrNoStorage, got %v", err)
	}
	if c.State().Kind() != CleanUnsaved {
		t.Fatalf("state advanced: %s", c.State())
	}
}

func TestOpenReadsStorage(t *testing.T) {
	h := newHarness()
	h.store.files["a.txt"] = "stored"
	if err := h.ctx.Open("a.txt"); err != nil {
		t.Fatal(err)
	}
	if h.ctx.Text() != "stored" || h.ctx.State() != Saved("a.txt") {
		t.Fatalf("open gave %q %s", h.ctx.Text(), h.ctx.State())
	}
	if err := h.ctx.Open("missing.txt"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if h.ctx.State() != Saved("a.txt") {
		t.Fatalf("failed open changed state")
	}
}

func TestRefreshHandsOpenToLister(t *testing.T) {
	h := newHarness()
	h.store.files["a.txt"] = "A"
	var open OpenFunc
	h.ctx.lister = ListFunc(func(_ []string, fn OpenFunc) { open = fn })
	if err := h.ctx.Refresh(); err != nil {
		t.Fatal(err)
	}
	if err := open("a.txt"); err != nil {
		t.Fatal(err)
	}
	if h.ctx.Text() != "A" {
		t.Fatalf("open from lister did not load content")
	}
}

func TestSavedText(t *testing.T) {
	h := newHarness()
	if _, ok, _ := h.ctx.SavedText(); ok {
		t.Fatalf("unnamed document has no saved text")
	}
	h.store.files["a.txt"] = "old"
	h.ctx.OpenFile("a.txt", "old")
	h.buf.SetText("new")
	h.ctx.HandleInput()
	got, ok, err := h.ctx.SavedText()
	if err != nil || !ok || got != "old" {
		t.Fatalf("saved text %q %v %v", got, ok, err)
	}
}
