package testdata

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/rubrica/internal/contact"
)

func TestContactsDeterministicAndValid(t *testing.T) {
	a := Contacts(25, 7)
	b := Contacts(25, 7)
	require.Equal(t, a, b)
	for _, c := range a {
		require.NoError(t, c.Validate())
	}
}

func TestSeedOnlyFillsEmptyRegistry(t *testing.T) {
	ctx := context.Background()
	reg := contact.NewRegistry(contact.NewOrdering(true, "it"), nil, zerolog.Nop())

	n, err := Seed(ctx, reg, 10, 1)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	n, err = Seed(ctx, reg, 10, 1)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, 10, reg.Len())
}
