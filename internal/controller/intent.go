package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jask/rubrica/internal/contact"
)

// Intent is a user request produced by the presentation layer.
type Intent interface{ isIntent() }

type (
	// ViewContact shows one contact in detail.
	ViewContact struct{ ID string }
	// AddContact opens an editor for a new contact.
	AddContact struct{}
	// EditContact opens an editor over an existing contact.
	EditContact struct{ ID string }
	// SubmitContact saves the open editor.
	SubmitContact struct{ Contact contact.Contact }
	// CancelEdit abandons the open editor.
	CancelEdit struct{}
	// ToggleSelect flips the bulk-action flag of one contact.
	ToggleSelect struct{ ID string }
	DeleteSelected struct{}
	ToggleSort     struct{ ByFirstName bool }
	Import         struct{ Path string }
	Export         struct{ Path string }
	// Search lists the contacts matching Query; an empty query lists all.
	Search struct{ Query string }
)

func (ViewContact) isIntent()    {}
func (AddContact) isIntent()     {}
func (EditContact) isIntent()    {}
func (SubmitContact) isIntent()  {}
func (CancelEdit) isIntent()     {}
func (ToggleSelect) isIntent()   {}
func (DeleteSelected) isIntent() {}
func (ToggleSort) isIntent()     {}
func (Import) isIntent()         {}
func (Export) isIntent()         {}
func (Search) isIntent()         {}

// Dispatcher routes intents to the controllers. It keeps at most one open
// Editor. It is meant to be driven from a single goroutine.
type Dispatcher struct {
	reg    *contact.Registry
	view   Presenter
	bulk   *Bulk
	log    zerolog.Logger
	editor *Editor
}

func NewDispatcher(reg *contact.Registry, view Presenter, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		reg:  reg,
		view: view,
		bulk: NewBulk(reg, view, log),
		log:  log,
	}
}

// Bulk exposes the bulk controller, e.g. to run an import elsewhere with
// another presenter.
func (d *Dispatcher) Bulk() *Bulk { return d.bulk }

// Editing returns the target of the open editor, or nil.
func (d *Dispatcher) Editing() Target {
	if d.editor == nil {
		return nil
	}
	return d.editor.Target()
}

// Dispatch executes in. Errors have already been shown to the user when
// they are returned.
func (d *Dispatcher) Dispatch(ctx context.Context, in Intent) error {
	switch in := in.(type) {
	case ViewContact:
		c, err := d.lookup(in.ID)
		if err != nil {
			return err
		}
		d.view.DisplayContact(c)
	case AddContact:
		d.editor = NewEditor(d.reg, d.view, Creating{}, d.log)
	case EditContact:
		c, err := d.lookup(in.ID)
		if err != nil {
			return err
		}
		d.editor = NewEditor(d.reg, d.view, Editing{Original: c}, d.log)
	case SubmitContact:
		if d.editor == nil {
			return ErrEditorClosed
		}
		if _, err := d.editor.Submit(ctx, in.Contact); err != nil {
			return err
		}
		d.editor = nil
	case CancelEdit:
		if d.editor == nil {
			return ErrEditorClosed
		}
		err := d.editor.Cancel()
		d.editor = nil
		return err
	case ToggleSelect:
		c, err := d.lookup(in.ID)
		if err != nil {
			return err
		}
		return d.reg.SetSelected(c.ID, !c.Selected)
	case DeleteSelected:
		_, err := d.bulk.DeleteSelected(ctx)
		return err
	case ToggleSort:
		d.bulk.ToggleSort(in.ByFirstName)
	case Import:
		_, err := d.bulk.ImportContacts(ctx, in.Path)
		return err
	case Export:
		_, err := d.bulk.ExportContacts(ctx, in.Path)
		return err
	case Search:
		d.view.DisplayContactList(d.reg.Search(in.Query))
	default:
		return fmt.Errorf("unknown intent %T", in)
	}
	return nil
}

func (d *Dispatcher) lookup(id string) (contact.Contact, error) {
	c, err := d.reg.Get(id)
	if err != nil {
		d.view.ShowError(userMessage(err))
	}
	return c, err
}
