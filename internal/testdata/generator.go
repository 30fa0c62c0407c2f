// Package testdata generates sample address books for demos and tests.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jask/rubrica/internal/contact"
)

var (
	firstNames = []string{"Anna", "Bruno", "Carla", "Davide", "Elena", "Francesco", "Giulia", "Luca", "Marta", "Nicola", "Paola", "Stefano"}
	lastNames  = []string{"Rossi", "Bianchi", "Russo", "Ferrari", "Esposito", "Romano", "Colombo", "Ricci", "Marino", "Greco"}
	streets    = []string{"Via Roma", "Corso Italia", "Via Garibaldi", "Piazza Dante", "Via Mazzini"}
	cities     = []string{"Milano", "Torino", "Napoli", "Bologna", "Firenze"}
)

// Contacts returns n sample contacts. The same seed yields the same book.
func Contacts(n int, seed int64) []contact.Contact {
	rng := rand.New(rand.NewSource(seed))
	out := make([]contact.Contact, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		c := contact.Contact{
			FirstName: first,
			LastName:  last,
			Address:   fmt.Sprintf("%s %d, %s", streets[rng.Intn(len(streets))], rng.Intn(200)+1, cities[rng.Intn(len(cities))]),
		}
		for p := rng.Intn(contact.MaxPhones); p >= 0; p-- {
			c.Phones = append(c.Phones, fmt.Sprintf("+39 3%02d %07d", rng.Intn(100), rng.Intn(10000000)))
		}
		if rng.Intn(4) > 0 {
			c.Emails = append(c.Emails, fmt.Sprintf("%s.%s@example.it", strings.ToLower(first), strings.ToLower(last)))
		}
		out = append(out, c)
	}
	return out
}

// Seed adds n sample contacts to reg unless it already holds some.
// It returns how many were added.
func Seed(ctx context.Context, reg *contact.Registry, n int, seed int64) (int, error) {
	if reg.Len() > 0 {
		return 0, nil
	}
	added, err := reg.AddAll(ctx, Contacts(n, seed))
	if err != nil {
		return 0, err
	}
	return len(added), nil
}
