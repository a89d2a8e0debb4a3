package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = delLine.Underline(true)
	addChar = addLine.Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct {
	NoColor bool
}

func NewDiffView(noColor bool) DiffView { return DiffView{NoColor: noColor} }

func (v DiffView) render(st lipgloss.Style, s string) string {
	if v.NoColor {
		return s
	}
	return st.Render(s)
}

// View renders the saved copy against the buffer as a line diff. Changed
// line pairs get character-level highlights.
func (v DiffView) View(name, saved, current string) string {
	var sb strings.Builder
	sb.WriteString("SAVED vs BUFFER (" + name + ")\n")
	if saved == current {
		sb.WriteString("No changes\n")
		return sb.String()
	}

	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(saved, current)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	// A delete immediately followed by an insert of the same number of
	// lines is a set of edited lines.
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			for _, l := range splitLines(df.Text) {
				sb.WriteString("  " + v.render(faint, l) + "\n")
			}
		case dmp.DiffDelete:
			del := splitLines(df.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				ins := splitLines(diffs[i+1].Text)
				if len(ins) == len(del) {
					for j := range del {
						v.writePair(&sb, d, del[j], ins[j])
					}
					i++
					continue
				}
			}
			for _, l := range del {
				sb.WriteString(v.render(delLine, "- "+l) + "\n")
			}
		case dmp.DiffInsert:
			for _, l := range splitLines(df.Text) {
				sb.WriteString(v.render(addLine, "+ "+l) + "\n")
			}
		}
	}
	return sb.String()
}

func (v DiffView) writePair(sb *strings.Builder, d *dmp.DiffMatchPatch, before, after string) {
	diffs := d.DiffMain(before, after, false)
	diffs = d.DiffCleanupSemantic(diffs)
	sb.WriteString(v.render(delLine, "- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(v.render(delChar, df.Text))
		case dmp.DiffEqual:
			sb.WriteString(v.render(delLine, df.Text))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(v.render(addLine, "+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(v.render(addChar, df.Text))
		case dmp.DiffEqual:
			sb.WriteString(v.render(addLine, df.Text))
		}
	}
	sb.WriteString("\n")
}

// splitLines splits a diff chunk into lines, dropping the empty tail left
// by a final newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
