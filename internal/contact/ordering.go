package contact

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordering selects the key used to list contacts.
type Ordering struct {
	mu          sync.RWMutex
	byFirstName bool
	lang        language.Tag
}

// NewOrdering returns an ordering for the given locale. An unparsable
// locale falls back to Italian.
func NewOrdering(byFirstName bool, locale string) *Ordering {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Italian
	}
	return &Ordering{byFirstName: byFirstName, lang: tag}
}

func (o *Ordering) IsSortedByFirstName() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.byFirstName
}

// SetSortedByFirstName takes effect on the next List.
func (o *Ordering) SetSortedByFirstName(v bool) {
	o.mu.Lock()
	o.byFirstName = v
	o.mu.Unlock()
}

// comparator returns a three-way compare over the active key.
// A collator is not safe for concurrent use, so each call builds its own.
func (o *Ordering) comparator() func(a, b Contact) int {
	o.mu.RLock()
	byFirst, tag := o.byFirstName, o.lang
	o.mu.RUnlock()

	col := collate.New(tag, collate.IgnoreCase)
	if byFirst {
		return func(a, b Contact) int { return col.CompareString(a.FirstName, b.FirstName) }
	}
	return func(a, b Contact) int { return col.CompareString(a.LastName, b.LastName) }
}
