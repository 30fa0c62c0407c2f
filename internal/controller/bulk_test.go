package controller

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/rubrica/internal/contact"
)

func TestDeleteSelectedWithoutSelection(t *testing.T) {
	reg, _ := newRegistry(t, contact.Contact{FirstName: "Anna"})
	rec := &Recorder{Answer: true}
	b := NewBulk(reg, rec, zerolog.Nop())

	n, err := b.DeleteSelected(context.Background())
	require.ErrorIs(t, err, contact.ErrNoSelection)
	require.Zero(t, n)
	require.Equal(t, []string{"No contact selected."}, rec.Errors())
	require.Equal(t, 1, reg.Len())
}

func TestDeleteSelectedDeclined(t *testing.T) {
	reg, stored := newRegistry(t, contact.Contact{FirstName: "Anna"}, contact.Contact{FirstName: "Bruno"})
	require.NoError(t, reg.SetSelected(stored[0].ID, true))
	rec := &Recorder{Answer: false}

	_, err := NewBulk(reg, rec, zerolog.Nop()).DeleteSelected(context.Background())
	require.ErrorIs(t, err, contact.ErrCancelled)
	require.Empty(t, rec.Events)
	require.Equal(t, 2, reg.Len())
}

func TestDeleteSelectedConfirmed(t *testing.T) {
	reg, stored := newRegistry(t,
		contact.Contact{FirstName: "Anna"},
		contact.Contact{FirstName: "Bruno"},
		contact.Contact{FirstName: "Carla"},
	)
	require.NoError(t, reg.SetSelected(stored[0].ID, true))
	require.NoError(t, reg.SetSelected(stored[2].ID, true))
	rec := &Recorder{Answer: true}

	n, err := NewBulk(reg, rec, zerolog.Nop()).DeleteSelected(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	ev, _ := rec.Last()
	require.Equal(t, EventList, ev.Kind)
	require.Len(t, ev.Contacts, 1)
	require.Equal(t, "Bruno", ev.Contacts[0].FirstName)
}

func TestToggleSort(t *testing.T) {
	reg, _ := newRegistry(t,
		contact.Contact{FirstName: "Anna", LastName: "Rossi"},
		contact.Contact{FirstName: "Bruno", LastName: "Bianchi"},
	)
	rec := &Recorder{}
	b := NewBulk(reg, rec, zerolog.Nop())
	require.Equal(t, "Anna", b.ListContacts()[0].FirstName)

	b.ToggleSort(false)
	require.False(t, reg.Ordering().IsSortedByFirstName())
	ev, _ := rec.Last()
	require.Equal(t, "Bruno", ev.Contacts[0].FirstName)
	require.Equal(t, "Bruno", b.ListContacts()[0].FirstName)
}

func TestImportExport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src, _ := newRegistry(t,
		contact.Contact{FirstName: "Anna", LastName: "Rossi", Emails: []string{"anna@example.it"}},
		contact.Contact{FirstName: "Bruno", LastName: "Bianchi"},
	)
	path := filepath.Join(dir, "rubrica.yaml")
	n, err := NewBulk(src, &Recorder{}, zerolog.Nop()).ExportContacts(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	dst, _ := newRegistry(t, contact.Contact{FirstName: "Carla"})
	rec := &Recorder{}
	n, err = NewBulk(dst, rec, zerolog.Nop()).ImportContacts(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 3, dst.Len())
	ev, _ := rec.Last()
	require.Equal(t, EventList, ev.Kind)
	require.Len(t, ev.Contacts, 3)
}

func TestImportFailureLeavesRegistryUnchanged(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	reg, _ := newRegistry(t, contact.Contact{FirstName: "Anna"})
	before := reg.List()

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("first_name,last_name\nBruno,Bianchi\n,\n"), 0o600))

	for _, path := range []string{bad, filepath.Join(dir, "missing.csv")} {
		rec := &Recorder{}
		_, err := NewBulk(reg, rec, zerolog.Nop()).ImportContacts(ctx, path)
		require.ErrorIs(t, err, contact.ErrImportExport)
		require.Len(t, rec.Errors(), 1)
		require.Equal(t, before, reg.List())
	}
}

func TestImportHonoursCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("first_name\nBruno\n"), 0o600))
	reg, _ := newRegistry(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewBulk(reg, &Recorder{}, zerolog.Nop()).ImportContacts(ctx, path)
	require.ErrorIs(t, err, contact.ErrImportExport)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, reg.Len())
}

func TestExportFailure(t *testing.T) {
	dir := t.TempDir()
	reg, _ := newRegistry(t, contact.Contact{FirstName: "Anna"})
	// the target directory path is taken by a file
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	rec := &Recorder{}
	_, err := NewBulk(reg, rec, zerolog.Nop()).ExportContacts(context.Background(), filepath.Join(blocker, "out.csv"))
	require.ErrorIs(t, err, contact.ErrImportExport)
	require.Len(t, rec.Errors(), 1)
	require.Equal(t, 1, reg.Len())
}
