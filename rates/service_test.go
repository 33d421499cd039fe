package rates

import (
	"bytes"
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"travel-companion/domain"
)

func TestService_ExchangeRates(t *testing.T) {
	s := NewService(Default())

	rates, err := s.ExchangeRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Len(t, rates, 12)
	assert.Equal(t, domain.Rate(1), rates["USD"])
	assert.Equal(t, domain.Rate(153.21), rates["JPY"])
}

func TestService_ExchangeRatesUnknown(t *testing.T) {
	s := NewService(Default())

	_, err := s.ExchangeRates(context.Background(), "ABC")

	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestLoggingService(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService(Default()))

	_, err := s.ExchangeRates(context.Background(), "GBP")

	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "method=exchange_rates"))
	assert.True(t, strings.Contains(buf.String(), "currency=GBP"))
}

func TestService_Currencies(t *testing.T) {
	s := NewService(Default())

	currencies, err := s.Currencies(context.Background())

	require.NoError(t, err)
	assert.Contains(t, currencies, domain.Currency("THB"))
	assert.Len(t, currencies, 12)
}
