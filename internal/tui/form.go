package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rubrica/internal/contact"
)

var formLabels = []string{
	"First name", "Last name", "Address",
	"Phone 1", "Phone 2", "Phone 3",
	"Email 1", "Email 2", "Email 3",
}

const (
	fieldFirst = iota
	fieldLast
	fieldAddress
	fieldPhone
	fieldEmail = fieldPhone + contact.MaxPhones
)

// contactForm edits one contact with a text input per field.
type contactForm struct {
	title  string
	inputs []textinput.Model
	focus  int
}

func newContactForm(title string, c contact.Contact) contactForm {
	values := []string{c.FirstName, c.LastName, c.Address}
	values = append(values, padTo(c.Phones, contact.MaxPhones)...)
	values = append(values, padTo(c.Emails, contact.MaxEmails)...)

	inputs := make([]textinput.Model, len(formLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 40
		ti.SetValue(values[i])
		inputs[i] = ti
	}
	inputs[0].Focus()
	return contactForm{title: title, inputs: inputs}
}

func (f *contactForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *contactForm) onLastField() bool { return f.focus == len(f.inputs)-1 }

func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// contact collects the field values. Blank phones and emails are dropped
// when the registry normalises the contact.
func (f contactForm) contact() contact.Contact {
	val := func(i int) string { return f.inputs[i].Value() }
	c := contact.Contact{
		FirstName: val(fieldFirst),
		LastName:  val(fieldLast),
		Address:   val(fieldAddress),
	}
	for i := 0; i < contact.MaxPhones; i++ {
		c.Phones = append(c.Phones, val(fieldPhone+i))
	}
	for i := 0; i < contact.MaxEmails; i++ {
		c.Emails = append(c.Emails, val(fieldEmail+i))
	}
	return c
}

func (f contactForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title) + "\n")
	for i, in := range f.inputs {
		marker := " "
		if i == f.focus {
			marker = "▶"
		}
		fmt.Fprintf(&b, "%s %-11s %s\n", marker, labelStyle.Render(formLabels[i]), in.View())
	}
	b.WriteString("[tab/↓] Next  [shift+tab/↑] Prev  [ctrl+s] Save  [esc] Cancel")
	return b.String()
}

func padTo(values []string, n int) []string {
	out := make([]string, n)
	copy(out, values)
	return out
}
