package transfer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/rubrica/internal/contact"
)

func sample() []contact.Contact {
	return []contact.Contact{
		{ID: "x1", FirstName: "Anna", LastName: "Rossi", Address: "Via Roma 1, Milano", Phones: []string{"+39 02 123456"}, Emails: []string{"anna@example.it", "a.rossi@example.com"}},
		{ID: "x2", FirstName: "Bruno", LastName: "Bianchi", Phones: []string{"333 1234567", "02 7654321"}},
	}
}

func stripIDs(cs []contact.Contact) []contact.Contact {
	return exportable(cs)
}

func TestRoundTripAllFormats(t *testing.T) {
	for _, f := range []Format{FormatCSV, FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, f, sample()))
			got, err := Decode(&buf, f)
			require.NoError(t, err)
			require.Equal(t, stripIDs(sample()), got)
		})
	}
}

func TestFormatFor(t *testing.T) {
	require.Equal(t, FormatJSON, FormatFor("/tmp/rubrica.JSON"))
	require.Equal(t, FormatYAML, FormatFor("book.yml"))
	require.Equal(t, FormatYAML, FormatFor("book.yaml"))
	require.Equal(t, FormatCSV, FormatFor("book.csv"))
	require.Equal(t, FormatCSV, FormatFor("book"))
}

func TestDecodeCSVHeaderOrderAndShortRows(t *testing.T) {
	data := "last_name,first_name,email1\nRossi,Anna,anna@example.it\nBianchi,Bruno\n"
	got, err := Decode(strings.NewReader(data), FormatCSV)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Anna", got[0].FirstName)
	require.Equal(t, []string{"anna@example.it"}, got[0].Emails)
	require.Nil(t, got[1].Emails)
	require.Nil(t, got[1].Phones)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := map[string]struct {
		data string
		f    Format
	}{
		"csv missing header":  {"nome,cognome\nAnna,Rossi\n", FormatCSV},
		"csv invalid contact": {"first_name,last_name,phone1\nAnna,Rossi,call me\n", FormatCSV},
		"csv empty names":     {"first_name,last_name\nAnna,Rossi\n,\n", FormatCSV},
		"json syntax":         {`{"contacts": [`, FormatJSON},
		"json unknown field":  {`{"contacts": [{"first_name": "Anna", "nickname": "A"}]}`, FormatJSON},
		"yaml unknown field":  {"contacts:\n  - first_name: Anna\n    nickname: A\n", FormatYAML},
		"yaml bad email":      {"contacts:\n  - first_name: Anna\n    emails: [nope]\n", FormatYAML},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tc.data), tc.f)
			require.Error(t, err)
			require.Nil(t, got)
		})
	}
}

func TestDecodeTopLevelList(t *testing.T) {
	want := []contact.Contact{{FirstName: "Anna", LastName: "Rossi"}}

	got, err := Decode(strings.NewReader(`[{"first_name":"Anna","last_name":"Rossi"}]`), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = Decode(strings.NewReader("- first_name: Anna\n  last_name: Rossi\n"), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = Decode(strings.NewReader(`{"contacts": [{"first_name":"Anna","last_name":"Rossi"}]}`), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = Decode(strings.NewReader("- first_name: Anna\n  nickname: A\n"), FormatYAML)
	require.Error(t, err)
}

func TestEncodeWritesTopLevelList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, sample()))
	require.True(t, strings.HasPrefix(buf.String(), "["))

	buf.Reset()
	require.NoError(t, Encode(&buf, FormatYAML, sample()))
	require.True(t, strings.HasPrefix(buf.String(), "- "))
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(strings.NewReader(""), FormatCSV)
	require.NoError(t, err)
	require.Empty(t, got)
	got, err = Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWriteFileAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "rubrica.json")
	require.NoError(t, WriteFile(path, sample()))

	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, stripIDs(sample()), got)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}

func TestWriteFileKeepsPreviousExportOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rubrica.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	// a directory squatting on the temp name makes the write fail
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	require.Error(t, WriteFile(path, sample()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old", string(data))
}
