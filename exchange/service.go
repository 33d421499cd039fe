package exchange

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"travel-companion/domain"
	"travel-companion/rates"
)

var (
	// ErrInvalidCurrency the from or to currency is not supported
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidAmount the amount is not a finite, non-negative number
	ErrInvalidAmount = errors.New("invalid amount")
)

// Service interface for converting from one currency to another
type Service interface {
	Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error)
	Swap(request domain.ConversionRequest) domain.ConversionRequest
	Currencies(ctx context.Context) ([]domain.Currency, error)
}

// Option configures a Service
type Option func(*service)

// WithClock overrides the source of conversion timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// service converts with the rates of a rates.Service
type service struct {
	// ratesService to lookup exchange rates, consulted on every conversion
	ratesService rates.Service

	now func() time.Time
}

// NewService constructs a valid Service
func NewService(s rates.Service, opts ...Option) Service {
	svc := &service{
		ratesService: s,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Convert computes a conversion from one currency to another.
// Converting a currency to itself always uses a rate of exactly 1.
func (s *service) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error) {
	available, err := s.ratesService.ExchangeRates(ctx, from)
	if errors.Is(err, rates.ErrUnknownCurrency) {
		return domain.Exchanged{}, fmt.Errorf("unknown 'from' currency [%v]: %w", from, ErrInvalidCurrency)
	}
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}

	rate, ok := available[to]
	if !ok {
		return domain.Exchanged{}, fmt.Errorf("unknown 'to' currency [%v]: %w", to, ErrInvalidCurrency)
	}
	if from == to {
		rate = 1
	}

	if err := validateAmount(amount); err != nil {
		return domain.Exchanged{}, err
	}

	result := domain.Exchanged{
		Rate:      rate,
		Amount:    domain.Amount(float64(rate) * float64(amount)),
		Timestamp: s.now(),
	}

	return result, nil
}

// Swap exchanges the currencies of a request. Nothing is converted.
func (s *service) Swap(request domain.ConversionRequest) domain.ConversionRequest {
	return Swap(request)
}

func (s *service) Currencies(ctx context.Context) ([]domain.Currency, error) {
	return s.ratesService.Currencies(ctx)
}

// Swap returns request with From and To exchanged.
func Swap(request domain.ConversionRequest) domain.ConversionRequest {
	request.From, request.To = request.To, request.From
	return request
}

func validateAmount(amount domain.Amount) error {
	f := float64(amount)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return fmt.Errorf("amount [%v]: %w", f, ErrInvalidAmount)
	}
	return nil
}
