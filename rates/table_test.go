package rates

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"travel-companion/domain"
)

func TestDefault_Complete(t *testing.T) {
	table := Default()

	currencies := table.Currencies()
	assert.Len(t, currencies, 12)

	for _, from := range currencies {
		for _, to := range currencies {
			rate, err := table.Rate(from, to)
			require.NoError(t, err, "%v -> %v", from, to)
			assert.Greater(t, float64(rate), 0.0, "%v -> %v", from, to)
		}
		identity, err := table.Rate(from, from)
		require.NoError(t, err)
		assert.Equal(t, domain.Rate(1), identity, from)
	}
}

func TestDefault_KnownRate(t *testing.T) {
	rate, err := Default().Rate("USD", "JPY")
	require.NoError(t, err)
	assert.Equal(t, domain.Rate(153.21), rate)
}

func TestTable_Currencies_Sorted(t *testing.T) {
	table, err := Load(strings.NewReader(`{
		"currencies": ["USD", "EUR"],
		"rates": {
			"USD": {"USD": 1, "EUR": 0.5},
			"EUR": {"USD": 2, "EUR": 1}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []domain.Currency{"EUR", "USD"}, table.Currencies())
	assert.True(t, table.Supports("EUR"))
	assert.False(t, table.Supports("GBP"))
}

func TestTable_RateUnknown(t *testing.T) {
	table := Default()

	_, err := table.Rate("XYZ", "USD")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = table.Rate("USD", "XYZ")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestTable_RowIsCopy(t *testing.T) {
	table := Default()

	row, err := table.Row("USD")
	require.NoError(t, err)
	row["JPY"] = 1

	rate, err := table.Rate("USD", "JPY")
	require.NoError(t, err)
	assert.Equal(t, domain.Rate(153.21), rate)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
	}{
		{
			"missing row",
			`{"currencies": ["USD", "EUR"], "rates": {"USD": {"USD": 1, "EUR": 0.9}}}`,
			ErrIncompleteTable,
		},
		{
			"missing pair",
			`{"currencies": ["USD", "EUR"], "rates": {"USD": {"USD": 1, "EUR": 0.9}, "EUR": {"EUR": 1}}}`,
			ErrIncompleteTable,
		},
		{
			"zero rate",
			`{"currencies": ["USD", "EUR"], "rates": {"USD": {"USD": 1, "EUR": 0}, "EUR": {"USD": 1.1, "EUR": 1}}}`,
			ErrInvalidRate,
		},
		{
			"negative rate",
			`{"currencies": ["USD"], "rates": {"USD": {"USD": -1}}}`,
			ErrInvalidRate,
		},
		{
			"no currencies",
			`{"currencies": [], "rates": {}}`,
			ErrIncompleteTable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.json))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	_, err := Load(strings.NewReader(`{not json`))
	assert.Error(t, err)
}
