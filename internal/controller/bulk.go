package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jask/rubrica/internal/contact"
	"github.com/jask/rubrica/internal/transfer"
)

// Bulk handles actions over the whole address book or the selected part
// of it.
type Bulk struct {
	reg  *contact.Registry
	view Presenter
	log  zerolog.Logger
}

func NewBulk(reg *contact.Registry, view Presenter, log zerolog.Logger) *Bulk {
	return &Bulk{reg: reg, view: view, log: log}
}

// WithPresenter returns a copy of b reporting to view.
func (b *Bulk) WithPresenter(view Presenter) *Bulk {
	cp := *b
	cp.view = view
	return &cp
}

// ListContacts returns the address book in the active order.
func (b *Bulk) ListContacts() []contact.Contact {
	return b.reg.List()
}

// DeleteSelected removes every selected contact after the user confirms.
// It returns ErrNoSelection without asking when nothing is selected, and
// ErrCancelled when the user says no.
func (b *Bulk) DeleteSelected(ctx context.Context) (int, error) {
	selected := b.reg.Selected()
	if len(selected) == 0 {
		b.view.ShowError(userMessage(contact.ErrNoSelection))
		return 0, contact.ErrNoSelection
	}
	question := "Delete the selected contact?"
	if len(selected) > 1 {
		question = fmt.Sprintf("Delete the %d selected contacts?", len(selected))
	}
	if !b.view.Confirm(question) {
		return 0, contact.ErrCancelled
	}
	n, err := b.reg.RemoveAll(ctx, selected)
	if err != nil {
		b.log.Warn().Err(err).Msg("delete selected")
		b.view.ShowError(userMessage(err))
		return 0, err
	}
	b.log.Info().Int("count", n).Msg("contacts deleted")
	b.view.DisplayContactList(b.reg.List())
	return n, nil
}

// ToggleSort switches the listing key and re-renders the list.
func (b *Bulk) ToggleSort(byFirstName bool) {
	b.reg.Ordering().SetSortedByFirstName(byFirstName)
	b.log.Debug().Bool("by_first_name", byFirstName).Msg("sort changed")
	b.view.DisplayContactList(b.reg.List())
}

// ImportContacts appends the contacts found in the file at path. The file is
// parsed completely before the registry is touched; on any error nothing is
// added.
func (b *Bulk) ImportContacts(ctx context.Context, path string) (int, error) {
	fail := func(err error) (int, error) {
		err = fmt.Errorf("%w: import %s: %w", contact.ErrImportExport, path, err)
		b.log.Warn().Err(err).Msg("import")
		b.view.ShowError(userMessage(err))
		return 0, err
	}
	cs, err := transfer.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	added, err := b.reg.AddAll(ctx, cs)
	if err != nil {
		return fail(err)
	}
	b.log.Info().Int("count", len(added)).Str("path", path).Msg("contacts imported")
	b.view.DisplayContactList(b.reg.List())
	return len(added), nil
}

// ExportContacts writes the address book, in list order, to path.
func (b *Bulk) ExportContacts(ctx context.Context, path string) (int, error) {
	cs := b.reg.List()
	err := ctx.Err()
	if err == nil {
		err = transfer.WriteFile(path, cs)
	}
	if err != nil {
		err = fmt.Errorf("%w: export %s: %w", contact.ErrImportExport, path, err)
		b.log.Warn().Err(err).Msg("export")
		b.view.ShowError(userMessage(err))
		return 0, err
	}
	b.log.Info().Int("count", len(cs)).Str("path", path).Msg("contacts exported")
	return len(cs), nil
}
