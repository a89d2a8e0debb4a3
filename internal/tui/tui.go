package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"txtpad/internal/editor"
	"txtpad/internal/prompt"
	"txtpad/internal/store"
	"txtpad/internal/tui/state"
	"txtpad/internal/tui/util"
	"txtpad/internal/tui/widgets/diff"
	edview "txtpad/internal/tui/widgets/editor"
	"txtpad/internal/tui/widgets/filelist"
	help "txtpad/internal/tui/widgets/helpoverlay"
	"txtpad/internal/tui/widgets/statusbar"
)

// Options configures Run.
type Options struct {
	Storage editor.Storage
	Dir     string // watched for external changes when Watch is set
	Watch   bool
	NoColor bool
	Open    string // file to open at start, extension optional
	Logf    func(format string, args ...any)
	Errorf  func(format string, args ...any) // errors shown in the status bar; Logf when nil
}

// Run starts the editor and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if opts.Watch && opts.Dir != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err := store.Watch(ctx, opts.Dir, func(string) { p.Send(filesChangedMsg{}) }, m.logf)
		if err != nil {
			m.logf("%v", err)
		}
	}
	_, err := p.Run()
	return err
}

// ===== Model =====

// filesChangedMsg is sent by the directory watcher.
type filesChangedMsg struct{}

type model struct {
	ui    state.UIState
	ctx   *editor.Context
	area  textarea.Model
	input textinput.Model
	slot  *prompt.Slot
	files *filelist.List

	copy     func(string) error
	logf     func(format string, args ...any)
	errorf   func(format string, args ...any)
	noColor  bool
	quitting bool
}

// areaBuffer lets the editor context read and replace the text area.
type areaBuffer struct{ m *model }

func (b areaBuffer) Text() string        { return b.m.area.Value() }
func (b areaBuffer) SetText(text string) { b.m.area.SetValue(text) }

func newModel(opts Options) *model {
	m := &model{
		slot:    &prompt.Slot{},
		files:   &filelist.List{},
		copy:    clipboard.WriteAll,
		logf:    opts.Logf,
		errorf:  opts.Errorf,
		noColor: util.NoColor(opts.NoColor),
	}
	if m.logf == nil {
		m.logf = func(string, ...any) {}
	}
	if m.errorf == nil {
		m.errorf = m.logf
	}

	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()
	m.area = ta

	ti := textinput.New()
	ti.Prompt = editor.PromptMessage + ": "
	ti.Placeholder = "name" + editor.Extension
	m.input = ti

	eopts := []editor.Option{
		editor.WithPrompter(m.slot),
		editor.WithLabeler(editor.LabelFunc(func(label string) { m.ui = state.SetLabel(m.ui, label) })),
		editor.WithLister(m.files),
		editor.WithLogger(m.logf),
	}
	if opts.Storage != nil {
		eopts = append(eopts, editor.WithStorage(opts.Storage))
	}
	m.ctx = editor.New(areaBuffer{m}, eopts...)
	m.report(m.ctx.Refresh())

	if opts.Open != "" {
		m.openInitial(opts.Open)
	}
	return m
}

func (m *model) openInitial(name string) {
	name, ok := editor.NormalizeName(name)
	if !ok {
		return
	}
	err := m.ctx.Open(name)
	if errors.Is(err, store.ErrNotFound) {
		m.ui = state.Notify(m.ui, name+" does not exist yet: save to create it")
		return
	}
	if err != nil {
		m.report(err)
		return
	}
	m.opened(name)
}

// opened announces a freshly loaded document. The text area rewrites tabs
// and carriage returns, which leaves such a document dirty.
func (m *model) opened(name string) {
	if m.ctx.State().Dirty() {
		m.ui = state.Notify(m.ui, "Opened "+name+": converted tabs/line endings, save to keep")
		return
	}
	m.ui = state.Notify(m.ui, "Opened "+name)
}

// report shows err in the status bar and logs it.
func (m *model) report(err error) {
	if err == nil {
		return
	}
	m.errorf("error: %v", err)
	m.ui = state.Notify(m.ui, "Error: "+err.Error())
}

func (m *model) Init() tea.Cmd { return textarea.Blink }

// Update handles all TUI interactions.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.area.SetWidth(msg.Width)
		// header line, status line and prompt line
		m.area.SetHeight(max(msg.Height-3, 1))
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		return m, nil
	case filesChangedMsg:
		m.report(m.ctx.Refresh())
		return m, nil
	case tea.KeyMsg:
		switch m.ui.Mode {
		case state.PROMPT:
			return m.updatePrompt(msg)
		case state.FILES:
			return m.updateFiles(msg)
		case state.DIFF, state.HELP:
			return m.updateOverlay(msg)
		default:
			return m.updateEdit(msg)
		}
	}

	var cmd tea.Cmd
	if m.ui.Mode == state.PROMPT {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.area, cmd = m.area.Update(msg)
	}
	return m, cmd
}

func (m *model) quit() (tea.Model, tea.Cmd) {
	var ok bool
	m.ui, ok = state.ArmQuit(m.ui, m.ctx.State().Dirty())
	if !ok {
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.New):
		return m.newFile()
	}
	m.ui = state.Disarm(m.ui)

	switch {
	case key.Matches(msg, keys.Save):
		if _, named := m.ctx.State().SaveTarget(); named {
			m.save(state.SAVE, false)
			return m, nil
		}
		return m, m.askName(state.SAVE)
	case key.Matches(msg, keys.SaveAs):
		return m, m.askName(state.SAVE_AS)
	case key.Matches(msg, keys.Files):
		m.files.Reset()
		m.ui = state.Toggle(m.ui, state.FILES)
		return m, nil
	case key.Matches(msg, keys.Diff):
		m.ui = state.Toggle(m.ui, state.DIFF)
		return m, nil
	case key.Matches(msg, keys.Help):
		m.ui = state.Toggle(m.ui, state.HELP)
		return m, nil
	case key.Matches(msg, keys.Copy):
		if err := m.copy(m.ctx.Text()); err != nil {
			m.report(err)
		} else {
			m.ui = state.Notify(m.ui, "Copied buffer to clipboard")
		}
		return m, nil
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if m.area.Value() != before {
		m.ctx.HandleInput()
	}
	return m, cmd
}

func (m *model) newFile() (tea.Model, tea.Cmd) {
	var ok bool
	m.ui, ok = state.Confirm(m.ui, "start a new file", m.ctx.State().Dirty())
	if !ok {
		return m, nil
	}
	m.ctx.NewFile()
	m.ui = state.Notify(m.ui, "New file")
	return m, nil
}

func (m *model) askName(action state.PromptAction) tea.Cmd {
	m.ui = state.OpenPrompt(m.ui, action)
	m.input.Reset()
	m.area.Blur()
	return m.input.Focus()
}

func (m *model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m.quit()
	}
	m.ui = state.Disarm(m.ui)

	var cancelled bool
	switch {
	case key.Matches(msg, keys.Open):
		m.slot.Set(m.input.Value())
		_, ok := editor.NormalizeName(m.input.Value())
		cancelled = !ok
	case key.Matches(msg, keys.Back):
		m.slot.Cancel()
		cancelled = true
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	action := m.ui.Pending
	m.ui = state.ClosePrompt(m.ui)
	m.input.Blur()
	m.save(action, cancelled)
	return m, m.area.Focus()
}

// save runs the pending save. A cancelled prompt still goes through the
// context so the no-op transition is the one the editor defines.
func (m *model) save(action state.PromptAction, cancelled bool) {
	var err error
	if action == state.SAVE_AS {
		err = m.ctx.SaveAs()
	} else {
		err = m.ctx.Save()
	}
	switch {
	case err != nil:
		m.report(err)
	case cancelled:
		m.ui = state.Notify(m.ui, "Save cancelled")
	default:
		name, _ := m.ctx.State().Filename()
		m.logf("saved %s", name)
		m.ui = state.Notify(m.ui, "Saved "+name)
	}
}

func (m *model) updateFiles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case !m.ui.Filtering && key.Matches(msg, keys.Open):
		return m.openSelected()
	}
	m.ui = state.Disarm(m.ui)

	if m.ui.Filtering {
		switch msg.Type {
		case tea.KeyEnter:
			m.ui = state.EndFilter(m.ui)
		case tea.KeyEsc:
			m.ui = state.ClearFilter(m.ui)
			m.files.Reset()
		case tea.KeyBackspace:
			m.ui = state.EditFilter(m.ui, nil, true)
			m.files.Reset()
		case tea.KeyRunes, tea.KeySpace:
			m.ui = state.EditFilter(m.ui, msg.Runes, false)
			m.files.Reset()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Files):
		m.ui = state.Back(m.ui)
	case key.Matches(msg, keys.Up):
		m.files.Up()
	case key.Matches(msg, keys.Down):
		m.files.Down(m.ui.Filter)
	case key.Matches(msg, keys.Filter):
		m.ui = state.StartFilter(m.ui)
		m.files.Reset()
	}
	return m, nil
}

// openSelected opens the file under the cursor. Replacing a dirty buffer
// needs a second enter on the same file.
func (m *model) openSelected() (tea.Model, tea.Cmd) {
	name, ok := m.files.Selected(m.ui.Filter)
	if !ok {
		return m, nil
	}
	m.ui, ok = state.Confirm(m.ui, "open "+name, m.ctx.State().Dirty())
	if !ok {
		return m, nil
	}
	if _, err := m.files.Open(m.ui.Filter); err != nil {
		m.report(err)
		return m, nil
	}
	m.ui = state.Back(m.ui)
	m.opened(name)
	return m, nil
}

func (m *model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Diff), key.Matches(msg, keys.Help):
		m.ui = state.Back(m.ui)
	}
	return m, nil
}

// ===== Views =====

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch m.ui.Mode {
	case state.FILES:
		body = m.files.View(m.ui.Filter, m.ui.Filtering, m.noColor)
	case state.DIFF:
		body = m.diffView()
	case state.HELP:
		body = help.NewHelpOverlay().View(m.ui, keys.sections())
	default:
		body = m.area.View()
		if m.ui.Mode == state.PROMPT {
			body += "\n" + m.input.View()
		}
	}
	var b strings.Builder
	b.WriteString(edview.NewEditor().View(m.ui, body))
	b.WriteString(statusbar.NewStatusBar(m.noColor).View(m.ui, util.ComputeTags(m.ctx.State(), m.ctx.Text())))
	return b.String()
}

func (m *model) diffView() string {
	name, named := m.ctx.State().Filename()
	if !named {
		return "Not saved yet: nothing to compare.\n"
	}
	saved, ok, err := m.ctx.SavedText()
	if err != nil {
		return "Unable to read saved copy: " + err.Error() + "\n"
	}
	if !ok {
		return "Not saved yet: nothing to compare.\n"
	}
	return diff.NewDiffView(m.noColor).View(name, saved, m.ctx.Text())
}
