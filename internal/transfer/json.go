package transfer

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/jask/rubrica/internal/contact"
)

// document is the older wrapped layout, still accepted on import.
type document struct {
	Contacts []contact.Contact `json:"contacts" yaml:"contacts"`
}

// decodeJSON reads a top-level array of contacts or a {"contacts": [...]}
// object.
func decodeJSON(r io.Reader) ([]contact.Contact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Contacts, nil
	}
	var cs []contact.Contact
	if err := dec.Decode(&cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func encodeJSON(w io.Writer, contacts []contact.Contact) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportable(contacts))
}

// exportable strips storage IDs; they mean nothing outside this database.
func exportable(contacts []contact.Contact) []contact.Contact {
	out := make([]contact.Contact, len(contacts))
	for i, c := range contacts {
		c.ID = ""
		out[i] = c
	}
	return out
}
