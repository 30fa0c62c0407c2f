package transfer

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jask/rubrica/internal/contact"
)

// decodeYAML reads a top-level sequence of contacts or a mapping with a
// contacts key.
func decodeYAML(r io.Reader) ([]contact.Contact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if root.Content[0].Kind == yaml.MappingNode {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Contacts, nil
	}
	var cs []contact.Contact
	if err := dec.Decode(&cs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return cs, nil
}

func encodeYAML(w io.Writer, contacts []contact.Contact) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exportable(contacts)); err != nil {
		return err
	}
	return enc.Close()
}
