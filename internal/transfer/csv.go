package transfer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jask/rubrica/internal/contact"
)

// CSV columns: first_name, last_name, address, phone1..3, email1..3.
// The header row is required on import.
var csvHeader = []string{
	"first_name", "last_name", "address",
	"phone1", "phone2", "phone3",
	"email1", "email2", "email3",
}

func decodeCSV(r io.Reader) ([]contact.Contact, error) {
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols["first_name"]; !ok {
		if _, ok := cols["last_name"]; !ok {
			return nil, fmt.Errorf("line 1: missing first_name/last_name header")
		}
	}

	var out []contact.Contact
	line := 1
	for {
		line++
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		c := contact.Contact{
			FirstName: field("first_name"),
			LastName:  field("last_name"),
			Address:   field("address"),
		}
		for n := 1; n <= contact.MaxPhones; n++ {
			c.Phones = append(c.Phones, field(fmt.Sprintf("phone%d", n)))
		}
		for n := 1; n <= contact.MaxEmails; n++ {
			c.Emails = append(c.Emails, field(fmt.Sprintf("email%d", n)))
		}
		out = append(out, c)
	}
	return out, nil
}

func encodeCSV(w io.Writer, contacts []contact.Contact) error {
	csvw := csv.NewWriter(w)
	if err := csvw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range contacts {
		rec := []string{c.FirstName, c.LastName, c.Address}
		rec = append(rec, padded(c.Phones, contact.MaxPhones)...)
		rec = append(rec, padded(c.Emails, contact.MaxEmails)...)
		if err := csvw.Write(rec); err != nil {
			return err
		}
	}
	csvw.Flush()
	return csvw.Error()
}

func padded(values []string, n int) []string {
	out := make([]string, n)
	copy(out, values)
	return out
}
