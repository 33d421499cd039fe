package rates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"travel-companion/domain"
)

var (
	// ErrIncompleteTable a table is missing the rate for some ordered pair of its currencies
	ErrIncompleteTable = errors.New("incomplete rate table")

	// ErrInvalidRate a rate is zero, negative or not finite
	ErrInvalidRate = errors.New("invalid rate")

	// ErrUnknownCurrency the currency is not part of the table
	ErrUnknownCurrency = errors.New("unknown currency")
)

//go:embed table.json
var defaultTable []byte

// Table a fixed matrix of pairwise exchange rates.
// Every direction is stored explicitly, inverses are never computed.
// A Table is immutable once loaded and safe for concurrent reads.
type Table struct {
	currencies []domain.Currency
	rates      map[domain.Currency]domain.Rates
}

// Load decodes a JSON rate table and checks it is fully populated.
func Load(r io.Reader) (*Table, error) {
	type file struct {
		Currencies []domain.Currency                               `json:"currencies"`
		Rates      map[domain.Currency]map[domain.Currency]float64 `json:"rates"`
	}

	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding rate table: %w", err)
	}
	if len(f.Currencies) == 0 {
		return nil, fmt.Errorf("no currencies declared: %w", ErrIncompleteTable)
	}

	t := &Table{
		currencies: make([]domain.Currency, 0, len(f.Currencies)),
		rates:      make(map[domain.Currency]domain.Rates, len(f.Currencies)),
	}
	for _, from := range f.Currencies {
		row, ok := f.Rates[from]
		if !ok {
			return nil, fmt.Errorf("missing row [%v]: %w", from, ErrIncompleteTable)
		}
		rates := make(domain.Rates, len(f.Currencies))
		for _, to := range f.Currencies {
			v, ok := row[to]
			if !ok {
				return nil, fmt.Errorf("missing rate [%v -> %v]: %w", from, to, ErrIncompleteTable)
			}
			if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("rate [%v -> %v] = %v: %w", from, to, v, ErrInvalidRate)
			}
			rates[to] = domain.Rate(v)
		}
		t.currencies = append(t.currencies, from)
		t.rates[from] = rates
	}
	sort.Slice(t.currencies, func(i, j int) bool { return t.currencies[i] < t.currencies[j] })
	return t, nil
}

// Default returns the table shipped with the service.
func Default() *Table {
	t, err := Load(bytes.NewReader(defaultTable))
	if err != nil {
		panic(fmt.Sprintf("embedded rate table: %v", err))
	}
	return t
}

// Currencies the supported currencies, sorted
func (t *Table) Currencies() []domain.Currency {
	out := make([]domain.Currency, len(t.currencies))
	copy(out, t.currencies)
	return out
}

// Supports reports whether c has a row in the table.
func (t *Table) Supports(c domain.Currency) bool {
	_, ok := t.rates[c]
	return ok
}

// Rate looks up the stored rate for from -> to.
func (t *Table) Rate(from, to domain.Currency) (domain.Rate, error) {
	row, ok := t.rates[from]
	if !ok {
		return 0, fmt.Errorf("from [%v]: %w", from, ErrUnknownCurrency)
	}
	rate, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("to [%v]: %w", to, ErrUnknownCurrency)
	}
	return rate, nil
}

// Row returns a copy of all rates from a currency.
func (t *Table) Row(from domain.Currency) (domain.Rates, error) {
	row, ok := t.rates[from]
	if !ok {
		return nil, fmt.Errorf("row [%v]: %w", from, ErrUnknownCurrency)
	}
	out := make(domain.Rates, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out, nil
}
