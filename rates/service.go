package rates

import (
	"context"
	"fmt"
	"travel-companion/domain"
)

// Service looks up exchange rates for a currency
type Service interface {
	ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Rates, error)
	Currencies(ctx context.Context) ([]domain.Currency, error)
}

// service serves rates from a static Table
type service struct {
	// table the rate matrix, read on every lookup
	table *Table
}

// NewService constructs a valid rates Service.
func NewService(table *Table) Service {
	return &service{
		table: table,
	}
}

// ExchangeRates returns every rate from currency. The returned map is a copy
// and may be modified by the caller.
func (s *service) ExchangeRates(_ context.Context, currency domain.Currency) (domain.Rates, error) {
	rates, err := s.table.Row(currency)
	if err != nil {
		return nil, fmt.Errorf("exchange rates: %w", err)
	}
	return rates, nil
}

func (s *service) Currencies(_ context.Context) ([]domain.Currency, error) {
	return s.table.Currencies(), nil
}
