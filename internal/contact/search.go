package contact

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxTypos is the edit distance tolerated between a query and a name.
const maxTypos = 2

// Search returns the contacts whose first name, last name or full name
// contains query, or is within a couple of typos of it. Results keep list
// order. An empty query returns the full list.
func (r *Registry) Search(query string) []Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	all := r.List()
	if q == "" {
		return all
	}
	var out []Contact
	for _, c := range all {
		if matchesQuery(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matchesQuery(c Contact, q string) bool {
	for _, field := range []string{c.FirstName, c.LastName, c.FullName()} {
		f := strings.ToLower(field)
		if f == "" {
			continue
		}
		if strings.Contains(f, q) {
			return true
		}
		// short queries would match almost anything within two edits
		if len(q) > maxTypos+1 && levenshtein.ComputeDistance(f, q) <= maxTypos {
			return true
		}
	}
	return false
}
