package controller

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/rubrica/internal/contact"
)

func newRegistry(t *testing.T, cs ...contact.Contact) (*contact.Registry, []contact.Contact) {
	t.Helper()
	reg := contact.NewRegistry(contact.NewOrdering(true, "it"), nil, zerolog.Nop())
	stored, err := reg.AddAll(context.Background(), cs)
	require.NoError(t, err)
	return reg, stored
}

func TestEditorCreateSubmit(t *testing.T) {
	reg, _ := newRegistry(t, contact.Contact{FirstName: "Anna", LastName: "Rossi"})
	rec := &Recorder{}
	ed := NewEditor(reg, rec, Creating{}, zerolog.Nop())

	c := contact.Contact{FirstName: "Carla", LastName: "Verdi", Phones: []string{"333 1234567"}}
	stored, err := ed.Submit(context.Background(), c)
	require.NoError(t, err)
	require.True(t, stored.Equal(c))
	require.Equal(t, 2, reg.Len())

	ev, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, EventContact, ev.Kind)
	require.True(t, ev.Contact.Equal(c))

	// terminal after one submit
	_, err = ed.Submit(context.Background(), c)
	require.ErrorIs(t, err, ErrEditorClosed)
	require.ErrorIs(t, ed.Cancel(), ErrEditorClosed)
	require.Equal(t, 2, reg.Len())
}

func TestEditorCreateCancelShowsList(t *testing.T) {
	reg, _ := newRegistry(t, contact.Contact{FirstName: "Anna"})
	rec := &Recorder{}
	ed := NewEditor(reg, rec, nil, zerolog.Nop())
	require.Equal(t, Creating{}, ed.Target())

	require.NoError(t, ed.Cancel())
	require.True(t, ed.Closed())
	ev, _ := rec.Last()
	require.Equal(t, EventList, ev.Kind)
	require.Len(t, ev.Contacts, 1)
}

func TestEditorInvalidSubmitStaysOpen(t *testing.T) {
	reg, _ := newRegistry(t)
	rec := &Recorder{}
	ed := NewEditor(reg, rec, Creating{}, zerolog.Nop())

	_, err := ed.Submit(context.Background(), contact.Contact{})
	require.ErrorIs(t, err, contact.ErrInvalidArgument)
	require.Len(t, rec.Errors(), 1)
	require.False(t, ed.Closed())

	_, err = ed.Submit(context.Background(), contact.Contact{FirstName: "Anna"})
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())
}

func TestEditorEditSubmitAndCancel(t *testing.T) {
	reg, stored := newRegistry(t, contact.Contact{FirstName: "Anna", LastName: "Rossi"})
	a := stored[0]

	rec := &Recorder{}
	ed := NewEditor(reg, rec, Editing{Original: a}, zerolog.Nop())
	upd := contact.Contact{FirstName: "Anna", LastName: "Verdi"}
	got, err := ed.Submit(context.Background(), upd)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
	require.Equal(t, "Verdi", reg.List()[0].LastName)
	ev, _ := rec.Last()
	require.Equal(t, "Verdi", ev.Contact.LastName)

	rec = &Recorder{}
	ed = NewEditor(reg, rec, Editing{Original: reg.List()[0]}, zerolog.Nop())
	require.NoError(t, ed.Cancel())
	ev, _ = rec.Last()
	require.Equal(t, EventContact, ev.Kind)
	require.Equal(t, "Verdi", ev.Contact.LastName)
}

func TestEditorEditAfterConcurrentDelete(t *testing.T) {
	ctx := context.Background()
	reg, stored := newRegistry(t,
		contact.Contact{FirstName: "Anna", LastName: "Rossi"},
		contact.Contact{FirstName: "Bruno", LastName: "Bianchi"},
	)
	a := stored[0]
	rec := &Recorder{}
	ed := NewEditor(reg, rec, Editing{Original: a}, zerolog.Nop())

	// a bulk delete removes A while the editor is open
	require.NoError(t, reg.SetSelected(a.ID, true))
	_, err := NewBulk(reg, &Recorder{Answer: true}, zerolog.Nop()).DeleteSelected(ctx)
	require.NoError(t, err)

	_, err = ed.Submit(ctx, contact.Contact{FirstName: "Anna", LastName: "Verdi"})
	require.ErrorIs(t, err, contact.ErrNotFound)
	require.Equal(t, []string{"The contact no longer exists; it may have been deleted."}, rec.Errors())
	require.Equal(t, 1, reg.Len())
	require.Equal(t, "Bruno", reg.List()[0].FirstName)
	require.False(t, ed.Closed())

	require.NoError(t, ed.Cancel())
	last, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, EventList, last.Kind)
	require.Len(t, last.Contacts, 1)
}

func TestEditorRejectsUnknownTarget(t *testing.T) {
	ctx := context.Background()
	reg, stored := newRegistry(t, contact.Contact{FirstName: "Anna", LastName: "Rossi"})
	rec := &Recorder{}
	ed := NewEditor(reg, rec, &Editing{Original: stored[0]}, zerolog.Nop())

	_, err := ed.Submit(ctx, contact.Contact{FirstName: "Anita"})
	require.ErrorIs(t, err, contact.ErrInvalidArgument)
	require.False(t, ed.Closed())
	require.Len(t, rec.Errors(), 1)
	require.Equal(t, "Anna", reg.List()[0].FirstName)

	require.ErrorIs(t, ed.Cancel(), contact.ErrInvalidArgument)
	require.False(t, ed.Closed())
}
