package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jask/rubrica/internal/contact"
)

// ErrEditorClosed is returned when an Editor is used after it finished.
var ErrEditorClosed = errors.New("editor already closed")

// Target says what an Editor works on: a new contact or an existing one.
type Target interface{ isTarget() }

// Creating targets a contact that does not exist yet.
type Creating struct{}

// Editing targets an existing contact, captured when editing started.
type Editing struct{ Original contact.Contact }

func (Creating) isTarget() {}
func (Editing) isTarget()  {}

// Editor runs one create or modify flow. It finishes after a successful
// Submit or any Cancel; a failed Submit leaves it open so the user can fix
// the form or cancel.
type Editor struct {
	reg    *contact.Registry
	view   Presenter
	target Target
	log    zerolog.Logger
	closed bool
}

func NewEditor(reg *contact.Registry, view Presenter, target Target, log zerolog.Logger) *Editor {
	if target == nil {
		target = Creating{}
	}
	return &Editor{reg: reg, view: view, target: target, log: log}
}

func (e *Editor) Target() Target { return e.target }

func (e *Editor) Closed() bool { return e.closed }

// Submit stores c, adding it or replacing the original, and shows the
// stored contact.
func (e *Editor) Submit(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	if e.closed {
		return contact.Contact{}, ErrEditorClosed
	}
	var (
		stored contact.Contact
		err    error
	)
	switch t := e.target.(type) {
	case Creating:
		stored, err = e.reg.Add(ctx, c)
	case Editing:
		stored, err = e.reg.Replace(ctx, t.Original, c)
	default:
		err = fmt.Errorf("%w: unknown editor target %T", contact.ErrInvalidArgument, t)
	}
	if err != nil {
		e.log.Warn().Err(err).Msg("submit contact")
		e.view.ShowError(userMessage(err))
		return contact.Contact{}, err
	}
	e.closed = true
	e.log.Info().Str("id", stored.ID).Msg("contact saved")
	e.view.DisplayContact(stored)
	return stored, nil
}

// Cancel abandons the flow: a new contact returns to the full list, an edit
// returns to the untouched original, or to the list if it was deleted
// meanwhile.
func (e *Editor) Cancel() error {
	if e.closed {
		return ErrEditorClosed
	}
	switch t := e.target.(type) {
	case Creating:
		e.view.DisplayContactList(e.reg.List())
	case Editing:
		if e.gone(t.Original) {
			e.view.DisplayContactList(e.reg.List())
		} else {
			e.view.DisplayContact(t.Original)
		}
	default:
		return fmt.Errorf("%w: unknown editor target %T", contact.ErrInvalidArgument, t)
	}
	e.closed = true
	return nil
}

func (e *Editor) gone(c contact.Contact) bool {
	if c.ID == "" {
		return false
	}
	_, err := e.reg.Get(c.ID)
	return errors.Is(err, contact.ErrNotFound)
}
