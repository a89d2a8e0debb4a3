package tui

import (
	"github.com/charmbracelet/bubbles/key"

	help "txtpad/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Save   key.Binding
	SaveAs key.Binding
	New    key.Binding
	Files  key.Binding
	Diff   key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding

	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Filter key.Binding
	Back   key.Binding
}

var keys = keyMap{
	Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	SaveAs: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "save as")),
	New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new file")),
	Files:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file list")),
	Diff:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "diff against saved")),
	Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy buffer")),
	Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),

	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open / confirm")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter files")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back / cancel")),
}

func (k keyMap) sections() []help.Section {
	return []help.Section{
		{Title: "File", Keys: []key.Binding{k.Save, k.SaveAs, k.New, k.Files}},
		{Title: "View", Keys: []key.Binding{k.Diff, k.Copy, k.Help, k.Quit}},
		{Title: "File list", Keys: []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Back}},
	}
}
