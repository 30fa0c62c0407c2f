package controller

import (
	"errors"
	"fmt"

	"github.com/jask/rubrica/internal/contact"
)

// Presenter is what the controllers need from a user interface.
type Presenter interface {
	DisplayContact(c contact.Contact)
	DisplayContactList(cs []contact.Contact)
	ShowError(msg string)
	// Confirm asks a yes/no question before a destructive action.
	Confirm(msg string) bool
}

// Event is one call recorded by a Recorder.
type Event struct {
	Kind     EventKind
	Contact  contact.Contact
	Contacts []contact.Contact
	Message  string
}

type EventKind int

const (
	EventContact EventKind = iota
	EventList
	EventError
)

// Recorder is a Presenter that buffers display calls so they can be replayed
// later on the goroutine that owns the real interface. Confirm answers with
// the fixed Answer.
type Recorder struct {
	Events []Event
	Answer bool
}

func (r *Recorder) DisplayContact(c contact.Contact) {
	r.Events = append(r.Events, Event{Kind: EventContact, Contact: c})
}

func (r *Recorder) DisplayContactList(cs []contact.Contact) {
	r.Events = append(r.Events, Event{Kind: EventList, Contacts: cs})
}

func (r *Recorder) ShowError(msg string) {
	r.Events = append(r.Events, Event{Kind: EventError, Message: msg})
}

func (r *Recorder) Confirm(string) bool { return r.Answer }

// Replay forwards the buffered calls to p in order.
func (r *Recorder) Replay(p Presenter) {
	for _, e := range r.Events {
		switch e.Kind {
		case EventContact:
			p.DisplayContact(e.Contact)
		case EventList:
			p.DisplayContactList(e.Contacts)
		case EventError:
			p.ShowError(e.Message)
		}
	}
}

// Errors returns the recorded error messages.
func (r *Recorder) Errors() []string {
	var out []string
	for _, e := range r.Events {
		if e.Kind == EventError {
			out = append(out, e.Message)
		}
	}
	return out
}

// Last returns the most recent event, if any.
func (r *Recorder) Last() (Event, bool) {
	if len(r.Events) == 0 {
		return Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, contact.ErrNoSelection):
		return "No contact selected."
	case errors.Is(err, contact.ErrNotFound):
		return "The contact no longer exists; it may have been deleted."
	case errors.Is(err, contact.ErrInvalidArgument),
		errors.Is(err, contact.ErrImportExport):
		return capitalize(err.Error())
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
