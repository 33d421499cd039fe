package exchange

import (
	"fmt"
	"strconv"
	"strings"
	"travel-companion/domain"
)

// ParseAmount parses an amount typed by a user. Anything that is not a
// finite, non-negative decimal number is rejected with ErrInvalidAmount.
func ParseAmount(s string) (domain.Amount, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount: %w", ErrInvalidAmount)
	}
	// ParseFloat also reads hexadecimal floats such as 0x1p4
	if digits := strings.TrimLeft(trimmed, "+-"); strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("parsing amount %q: %w", s, ErrInvalidAmount)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, ErrInvalidAmount)
	}
	amount := domain.Amount(f)
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}
