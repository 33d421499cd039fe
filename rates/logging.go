package rates

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"time"
	"travel-companion/domain"
)

// loggingService decorates a rates.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRates(ctx context.Context, currency domain.Currency) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "exchange_rates",
			"currency", currency,
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRates(ctx, currency)
}

func (s *loggingService) Currencies(ctx context.Context) (currencies []domain.Currency, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "currencies",
			"count", len(currencies),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currencies(ctx)
}
