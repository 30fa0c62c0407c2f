package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/rubrica/internal/config"
	"github.com/jask/rubrica/internal/contact"
	"github.com/jask/rubrica/internal/controller"
)

// App is the terminal address book. It is the Presenter of its own
// dispatcher: controller calls land here and switch views.
type App struct {
	ctx       context.Context
	cfg       config.Config
	reg       *contact.Registry
	dispatch  *controller.Dispatcher
	log       zerolog.Logger
	saveSort  func(byFirstName bool) error
	keys      listKeyMap
	detailKey detailKeyMap

	state    appState
	contacts []contact.Contact
	cursor   int
	detail   contact.Contact
	form     contactForm
	prompt   textinput.Model
	promptOf promptKind
	query    string
	status   string
	busy     bool
	height   int

	// confirmation flow
	modal       modalState
	confirmText string
	pending     controller.Intent
	confirmed   bool
}

type appState string

const (
	viewList   appState = "list"
	viewDetail appState = "detail"
	viewForm   appState = "form"
	viewPrompt appState = "prompt"
)

type modalState string

const (
	modalNone    modalState = ""
	modalConfirm modalState = "confirm"
)

type promptKind string

const (
	promptImport promptKind = "import"
	promptExport promptKind = "export"
	promptSearch promptKind = "search"
)

// Options carries optional collaborators.
type Options struct {
	// SaveSort remembers the sort order when it changes. Nil skips it.
	SaveSort func(byFirstName bool) error
	Log      zerolog.Logger
}

func New(ctx context.Context, cfg config.Config, reg *contact.Registry, opts Options) *App {
	prompt := textinput.New()
	prompt.CharLimit = 512
	prompt.Width = 60
	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		reg:       reg,
		log:       opts.Log,
		saveSort:  opts.SaveSort,
		keys:      newListKeyMap(),
		detailKey: newDetailKeyMap(),
		state:     viewList,
		prompt:    prompt,
	}
	a.dispatch = controller.NewDispatcher(reg, a, opts.Log)
	a.contacts = reg.List()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

// Presenter

func (a *App) DisplayContact(c contact.Contact) {
	a.detail = c
	a.state = viewDetail
}

// DisplayContactList shows cs as given, so any search filter is dropped.
func (a *App) DisplayContactList(cs []contact.Contact) {
	a.contacts = cs
	a.query = ""
	a.state = viewList
}

func (a *App) ShowError(msg string) {
	a.status = "error: " + msg
}

// Confirm cannot block the event loop. The first call opens the modal and
// declines; once the user answers yes the pending intent is dispatched
// again and this call agrees.
func (a *App) Confirm(msg string) bool {
	if a.confirmed {
		a.confirmed = false
		return true
	}
	a.modal = modalConfirm
	a.confirmText = msg
	return false
}

// run dispatches in on the UI goroutine. Errors were already shown by the
// controllers.
func (a *App) run(in controller.Intent) error {
	a.status = ""
	err := a.dispatch.Dispatch(a.ctx, in)
	if s, ok := in.(controller.Search); ok {
		a.query = s.Query
	}
	if errors.Is(err, contact.ErrCancelled) && a.modal == modalConfirm {
		a.pending = in
	} else if err != nil {
		a.log.Debug().Err(err).Str("intent", fmt.Sprintf("%T", in)).Msg("intent failed")
	}
	a.refresh()
	return err
}

// refresh reloads the visible list, applying the active search.
func (a *App) refresh() {
	if a.state == viewList || a.state == viewPrompt {
		a.contacts = a.reg.Search(a.query)
	}
	if a.cursor >= len(a.contacts) {
		a.cursor = len(a.contacts) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) current() (contact.Contact, bool) {
	if len(a.contacts) == 0 {
		return contact.Contact{}, false
	}
	return a.contacts[a.cursor], true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.height = m.Height
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch a.state {
		case viewForm:
			return a.handleFormKey(m)
		case viewPrompt:
			return a.handlePromptKey(m)
		case viewDetail:
			return a.handleDetailKey(m)
		default:
			return a.handleListKey(m)
		}
	case transferDoneMsg:
		a.busy = false
		m.rec.Replay(a)
		if m.err == nil {
			a.status = m.summary()
		}
		a.refresh()
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	switch {
	case key.Matches(m, k.Quit):
		return a, tea.Quit
	case key.Matches(m, k.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, k.Down):
		if a.cursor < len(a.contacts)-1 {
			a.cursor++
		}
	case key.Matches(m, k.Open):
		if c, ok := a.current(); ok {
			_ = a.run(controller.ViewContact{ID: c.ID})
		}
	case key.Matches(m, k.Select):
		if c, ok := a.current(); ok {
			_ = a.run(controller.ToggleSelect{ID: c.ID})
		}
	case key.Matches(m, k.New):
		a.openCreate()
	case key.Matches(m, k.Edit):
		if c, ok := a.current(); ok {
			a.openEdit(c.ID)
		}
	case key.Matches(m, k.Delete):
		_ = a.run(controller.DeleteSelected{})
	case key.Matches(m, k.Sort):
		return a, a.toggleSort()
	case key.Matches(m, k.Search):
		a.openPrompt(promptSearch, a.query)
	case key.Matches(m, k.Import):
		a.openPrompt(promptImport, a.cfg.UI.ExportPath)
	case key.Matches(m, k.Export):
		a.openPrompt(promptExport, a.cfg.UI.ExportPath)
	case key.Matches(m, k.Clear):
		if a.query != "" {
			_ = a.run(controller.Search{})
		}
	}
	return a, nil
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.detailKey.Quit):
		return a, tea.Quit
	case key.Matches(m, a.detailKey.Edit):
		a.openEdit(a.detail.ID)
	case key.Matches(m, a.detailKey.Back):
		a.state = viewList
		a.refresh()
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		_ = a.run(controller.CancelEdit{})
		return a, nil
	case "tab", "down":
		a.form.move(1)
		return a, nil
	case "shift+tab", "up":
		a.form.move(-1)
		return a, nil
	case "ctrl+s":
		a.submitForm()
		return a, nil
	case "enter":
		if a.form.onLastField() {
			a.submitForm()
		} else {
			a.form.move(1)
		}
		return a, nil
	}
	return a, a.form.update(m)
}

func (a *App) handlePromptKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = viewList
		if a.promptOf == promptSearch {
			_ = a.run(controller.Search{})
		}
		return a, nil
	case "enter":
		value := strings.TrimSpace(a.prompt.Value())
		a.prompt.Blur()
		a.state = viewList
		switch a.promptOf {
		case promptSearch:
			a.refresh()
			return a, nil
		case promptImport:
			return a, a.transfer(controller.Import{Path: value})
		case promptExport:
			return a, a.transfer(controller.Export{Path: value})
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(m)
	if a.promptOf == promptSearch {
		a.query = a.prompt.Value()
		a.contacts = a.reg.Search(a.query)
		a.refresh()
	}
	return a, cmd
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "y", "Y":
		a.modal = modalNone
		in := a.pending
		a.pending = nil
		if in != nil {
			a.confirmed = true
			_ = a.run(in)
			a.confirmed = false
		}
	case "n", "N", "esc":
		a.modal = modalNone
		a.pending = nil
		a.status = "nothing deleted"
	case "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) openCreate() {
	if err := a.run(controller.AddContact{}); err != nil {
		return
	}
	a.form = newContactForm("New contact", contact.Contact{})
	a.state = viewForm
}

func (a *App) openEdit(id string) {
	if err := a.run(controller.EditContact{ID: id}); err != nil {
		return
	}
	target, ok := a.dispatch.Editing().(controller.Editing)
	if !ok {
		return
	}
	a.form = newContactForm("Edit contact", target.Original)
	a.state = viewForm
}

func (a *App) submitForm() {
	// on failure the error is in the status line and the form stays open
	_ = a.run(controller.SubmitContact{Contact: a.form.contact()})
}

func (a *App) openPrompt(kind promptKind, value string) {
	a.promptOf = kind
	a.prompt.SetValue(value)
	a.prompt.CursorEnd()
	a.prompt.Focus()
	a.state = viewPrompt
}

func (a *App) toggleSort() tea.Cmd {
	byFirst := !a.reg.Ordering().IsSortedByFirstName()
	_ = a.run(controller.ToggleSort{ByFirstName: byFirst})
	a.cfg.UI.SortByFirstName = byFirst
	if a.saveSort == nil {
		return nil
	}
	save := a.saveSort
	return func() tea.Msg {
		if err := save(byFirst); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// transfer runs an import or export off the UI goroutine. Controller output
// is recorded and replayed when the result message arrives.
func (a *App) transfer(in controller.Intent) tea.Cmd {
	if a.busy {
		a.status = "another import/export is running"
		return nil
	}
	a.busy = true
	bulk := a.dispatch.Bulk()
	ctx := a.ctx
	switch op := in.(type) {
	case controller.Import:
		a.status = "importing " + op.Path + "..."
	case controller.Export:
		a.status = "exporting to " + op.Path + "..."
	}
	return func() tea.Msg {
		rec := &controller.Recorder{}
		b := bulk.WithPresenter(rec)
		done := transferDoneMsg{rec: rec}
		switch op := in.(type) {
		case controller.Import:
			done.imported = true
			done.path = op.Path
			done.count, done.err = b.ImportContacts(ctx, op.Path)
		case controller.Export:
			done.path = op.Path
			done.count, done.err = b.ExportContacts(ctx, op.Path)
		}
		return done
	}
}

// messages
type errMsg struct{ error }

type transferDoneMsg struct {
	rec      *controller.Recorder
	imported bool
	path     string
	count    int
	err      error
}

func (m transferDoneMsg) summary() string {
	if m.imported {
		return fmt.Sprintf("imported %d contacts from %s", m.count, m.path)
	}
	return fmt.Sprintf("exported %d contacts to %s", m.count, m.path)
}
