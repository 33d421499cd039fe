package exchange

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"reflect"
	"testing"
	"time"
	"travel-companion/domain"
	"travel-companion/rates"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

type mock struct {
	exchangeRates map[domain.Currency]domain.Rates
	calls         int
}

func (m *mock) ExchangeRates(_ context.Context, currency domain.Currency) (domain.Rates, error) {
	m.calls++
	r, ok := m.exchangeRates[currency]
	if !ok {
		return nil, rates.ErrUnknownCurrency
	}
	return r, nil
}

func (m *mock) Currencies(_ context.Context) ([]domain.Currency, error) {
	var out []domain.Currency
	for c := range m.exchangeRates {
		out = append(out, c)
	}
	return out, nil
}

func TestService_Convert(t *testing.T) {
	usdRates := domain.Rates{
		"USD": 1.0,
		"FOO": 2.0,
		"BAR": 3.0,
	}

	gbpRates := domain.Rates{
		"FOO": 4.0,
		"BAR": 5.0,
		"GBP": 1.5, // identity is always 1, whatever the table says
	}

	allRates := map[domain.Currency]domain.Rates{
		"USD": usdRates,
		"GBP": gbpRates,
	}

	service := &service{
		ratesService: &mock{exchangeRates: allRates},
		now:          fixedClock,
	}

	type args struct {
		amount domain.Amount
		from   domain.Currency
		to     domain.Currency
	}
	tests := []struct {
		name    string
		args    args
		want    domain.Exchanged
		wantErr error
	}{
		{
			"usd -> foo",
			args{10.0, "USD", "FOO"},
			domain.Exchanged{Rate: 2.0, Amount: 20.0, Timestamp: fixedTime},
			nil,
		},
		{
			"usd -> bar",
			args{10.0, "USD", "BAR"},
			domain.Exchanged{Rate: 3.0, Amount: 30.0, Timestamp: fixedTime},
			nil,
		},
		{
			"gbp -> foo",
			args{10.0, "GBP", "FOO"},
			domain.Exchanged{Rate: 4.0, Amount: 40.0, Timestamp: fixedTime},
			nil,
		},
		{
			"gbp -> gbp",
			args{10.0, "GBP", "GBP"},
			domain.Exchanged{Rate: 1.0, Amount: 10.0, Timestamp: fixedTime},
			nil,
		},
		{
			"zero amount",
			args{0, "USD", "BAR"},
			domain.Exchanged{Rate: 3.0, Amount: 0, Timestamp: fixedTime},
			nil,
		},
		{
			"gbp -> xyz",
			args{10.0, "GBP", "XYZ"},
			domain.Exchanged{},
			ErrInvalidCurrency,
		},
		{
			"abc -> xyz",
			args{10.0, "ABC", "XYZ"},
			domain.Exchanged{},
			ErrInvalidCurrency,
		},
		{
			"negative amount",
			args{-1, "USD", "FOO"},
			domain.Exchanged{},
			ErrInvalidAmount,
		},
		{
			"nan amount",
			args{domain.Amount(math.NaN()), "USD", "FOO"},
			domain.Exchanged{},
			ErrInvalidAmount,
		},
		{
			"infinite amount",
			args{domain.Amount(math.Inf(1)), "USD", "FOO"},
			domain.Exchanged{},
			ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Convert(context.Background(), tt.args.amount, tt.args.from, tt.args.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Convert() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_ConvertRecomputesEveryCall(t *testing.T) {
	m := &mock{exchangeRates: map[domain.Currency]domain.Rates{"USD": {"EUR": 0.5}}}
	s := NewService(m)

	first, err := s.Convert(context.Background(), 10, "USD", "EUR")
	require.NoError(t, err)
	m.exchangeRates["USD"]["EUR"] = 0.25
	second, err := s.Convert(context.Background(), 10, "USD", "EUR")
	require.NoError(t, err)

	assert.Equal(t, 2, m.calls)
	assert.Equal(t, domain.Amount(5), first.Amount)
	assert.Equal(t, domain.Amount(2.5), second.Amount)
}

func TestService_ConvertDefaultTable(t *testing.T) {
	s := NewService(rates.NewService(rates.Default()), WithClock(fixedClock))

	got, err := s.Convert(context.Background(), 1000, "USD", "JPY")

	require.NoError(t, err)
	assert.Equal(t, domain.Rate(153.21), got.Rate)
	assert.Equal(t, domain.Amount(153210.0), got.Amount)
	assert.Equal(t, "153210.00", got.Display())
	assert.Equal(t, fixedTime, got.Timestamp)
}

func TestService_ConvertIdentity(t *testing.T) {
	s := NewService(rates.NewService(rates.Default()))
	ctx := context.Background()

	currencies, err := s.Currencies(ctx)
	require.NoError(t, err)

	for _, c := range currencies {
		for _, amount := range []domain.Amount{0, 1, 12.345, 1e9} {
			got, err := s.Convert(ctx, amount, c, c)
			require.NoError(t, err)
			assert.Equal(t, amount, got.Amount, "%v %v", c, amount)
			assert.Equal(t, domain.Rate(1), got.Rate)
		}
	}
}

func TestService_ConvertTimestamp(t *testing.T) {
	s := NewService(rates.NewService(rates.Default()))

	before := time.Now()
	got, err := s.Convert(context.Background(), 1, "EUR", "GBP")
	require.NoError(t, err)

	assert.False(t, got.Timestamp.Before(before))
}

func TestSwap(t *testing.T) {
	s := NewService(rates.NewService(rates.Default()))
	request := domain.ConversionRequest{Amount: 25, From: "USD", To: "THB"}

	swapped := s.Swap(request)

	assert.Equal(t, domain.ConversionRequest{Amount: 25, From: "THB", To: "USD"}, swapped)
	assert.Equal(t, request, s.Swap(swapped))
}
