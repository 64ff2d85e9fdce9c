package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alao-ohio/roster/internal/core/domain"
)

func TestFactory_DefaultsWhenNil(t *testing.T) {
	f := NewFactory(nil)

	assert.Equal(t, []string{
		"address", "city", "country", "name", "organization", "phone", "postal", "state",
	}, f.Rules())
}

func TestFactory_Normaliser(t *testing.T) {
	f := NewFactory(nil)

	n, err := f.Normaliser("state", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"OH"}, n.Normalise(domain.Texts("ohio")))

	_, err = f.Normaliser("zodiac", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestFactory_Build(t *testing.T) {
	f := NewFactory(nil)
	tbl, err := domain.NewTable([]string{"Work Country"})
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow(domain.Texts("United States")))

	p, err := f.Build([]domain.ColumnBinding{{Column: "Work Country", Rule: domain.RuleCountry}}, nil)
	require.NoError(t, err)

	stats, err := p.Apply(context.Background(), tbl)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, domain.Texts("USA"), tbl.Rows[0])

	_, err = f.Build([]domain.ColumnBinding{{Column: "x", Rule: "zodiac"}}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}
