package editor

import "testing"

func allStates() []State {
	return []State{
		State{},
		State{}.Input(),
		Saved("note.txt"),
		Saved("note.txt").Input(),
	}
}

func TestLabels(t *testing.T) {
	cases := []struct {
		s    State
		want string
	}{
		{State{}, "_"},
		{State{}.Input(), "*"},
		{Saved("a.txt"), "a.txt"},
		{Saved("a.txt").Input(), "a.txt *"},
	}
	for _, c := range cases {
		if got := c.s.Label(); got != c.want {
			t.Errorf("%s: label %q, want %q", c.s, got, c.want)
		}
	}
}

func TestInputTransitions(t *testing.T) {
	if k := (State{}).Input().Kind(); k != DirtyUnsaved {
		t.Fatalf("clean unsaved input: got %s", k)
	}
	s := Saved("a.txt").Input()
	if s.Kind() != DirtySaved {
		t.Fatalf("clean saved input: got %s", s.Kind())
	}
	if name, ok := s.Filename(); !ok || name != "a.txt" {
		t.Fatalf("filename lost across input: %q %v", name, ok)
	}
}

func TestInputIdempotentOnDirty(t *testing.T) {
	for _, s := range allStates() {
		if !s.Dirty() {
			continue
		}
		if once, twice := s.Input(), s.Input().Input(); once != twice || once != s {
			t.Fatalf("%s: input not idempotent (%s, %s)", s, once, twice)
		}
	}
}

func TestNewFileFromEveryState(t *testing.T) {
	for _, s := range allStates() {
		n := s.NewFile()
		if n.Kind() != CleanUnsaved {
			t.Fatalf("%s: new file gave %s", s, n)
		}
		if _, ok := n.Filename(); ok {
			t.Fatalf("%s: new file kept a filename", s)
		}
		if n.NewFile() != n {
			t.Fatalf("new file not idempotent")
		}
	}
}

func TestTransitionsStayInVariantSet(t *testing.T) {
	valid := map[Kind]bool{CleanUnsaved: true, DirtyUnsaved: true, CleanSaved: true, DirtySaved: true}
	for _, s := range allStates() {
		for _, n := range []State{s.Input(), s.NewFile(), s.Commit("x.txt")} {
			if !valid[n.Kind()] {
				t.Fatalf("%s produced unknown kind %d", s, n.Kind())
			}
		}
	}
}

func TestSaveTarget(t *testing.T) {
	if _, ok := (State{}).SaveTarget(); ok {
		t.Fatalf("unnamed state must not have a save target")
	}
	if _, ok := (State{}).Input().SaveTarget(); ok {
		t.Fatalf("dirty unnamed state must not have a save target")
	}
	if name, ok := Saved("b.txt").Input().SaveTarget(); !ok || name != "b.txt" {
		t.Fatalf("dirty saved target: %q %v", name, ok)
	}
}

func TestCommitAlwaysCleanSaved(t *testing.T) {
	for _, s := range allStates() {
		n := s.Commit("new.txt")
		if n.Kind() != CleanSaved || n.Label() != "new.txt" {
			t.Fatalf("%s: commit gave %s", s, n)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"x", "x.txt", true},
		{"x.txt", "x.txt", true},
		{"x.TXT", "x.TXT.txt", true},
		{"notes.md", "notes.md.txt", true},
		{"", "", false},
		{"   ", "", false},
		{"\t\n", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeName(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("NormalizeName(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}
