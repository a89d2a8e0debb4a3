package filelist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"txtpad/internal/editor"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// List is the stored-files pane. It is the editor's Lister: ShowFiles
// replaces the names and the open callback.
type List struct {
	names  []string
	open   editor.OpenFunc
	cursor int
}

func (l *List) ShowFiles(names []string, open editor.OpenFunc) {
	l.names = append([]string(nil), names...)
	l.open = open
	if l.cursor >= len(l.names) {
		l.cursor = 0
	}
}

func (l *List) Names() []string { return l.names }

// Matches returns the names matching filter, best first. An empty filter
// matches everything in stored order.
func (l *List) Matches(filter string) []string {
	if filter == "" {
		return l.names
	}
	found := fuzzy.Find(filter, l.names)
	out := make([]string, 0, len(found))
	for _, m := range found {
		out = append(out, m.Str)
	}
	return out
}

func (l *List) Up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *List) Down(filter string) {
	if l.cursor < len(l.Matches(filter))-1 {
		l.cursor++
	}
}

// Reset moves the cursor back to the first match.
func (l *List) Reset() { l.cursor = 0 }

// Selected returns the name under the cursor.
func (l *List) Selected(filter string) (string, bool) {
	m := l.Matches(filter)
	if l.cursor < 0 || l.cursor >= len(m) {
		return "", false
	}
	return m[l.cursor], true
}

// Open loads the selected file through the callback given to ShowFiles.
func (l *List) Open(filter string) (string, error) {
	name, ok := l.Selected(filter)
	if !ok || l.open == nil {
		return "", nil
	}
	return name, l.open(name)
}

// View renders the list with the cursor and, when set, the filter line.
func (l *List) View(filter string, filtering, noColor bool) string {
	render := func(st lipgloss.Style, s string) string {
		if noColor {
			return s
		}
		return st.Render(s)
	}
	var b strings.Builder
	b.WriteString(render(titleStyle, "Files") + "\n")
	if filtering || filter != "" {
		b.WriteString(render(faintStyle, "filter: ") + filter + "\n")
	}
	m := l.Matches(filter)
	if len(m) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, name := range m {
		line := "  " + name
		if i == l.cursor {
			line = render(selStyle, "> "+name)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nenter: open   /: filter   esc: back\n")
	return b.String()
}
