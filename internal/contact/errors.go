package contact

import "errors"

var (
	// ErrInvalidArgument reports a missing or malformed contact.
	ErrInvalidArgument = errors.New("invalid contact")
	// ErrNotFound reports that the contact to edit is no longer in the registry.
	ErrNotFound = errors.New("contact not found")
	// ErrNoSelection reports a bulk delete with nothing selected.
	ErrNoSelection = errors.New("no contact selected")
	// ErrImportExport wraps any failure of an import or export.
	ErrImportExport = errors.New("import/export failed")
	// ErrCancelled reports that the user declined a confirmation.
	ErrCancelled = errors.New("cancelled")
)
