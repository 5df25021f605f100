// Package currency holds the one piece of truly global display state: the
// platform's default currency. Readers format money labels; the single
// writer is the currencies screen when an admin changes the default.
package currency

import (
	"sync"

	"github.com/shopspring/decimal"
)

type Store struct {
	mu     sync.RWMutex
	symbol string
	code   string
}

func NewStore() *Store {
	return &Store{symbol: "$", code: "USD"}
}

func (s *Store) Set(symbol, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if symbol != "" {
		s.symbol = symbol
	}
	if code != "" {
		s.code = code
	}
}

func (s *Store) Symbol() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.symbol
}

func (s *Store) Code() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.code
}

// Format renders an amount with the active symbol, two fraction digits,
// half-up: "$24.50". Amounts arrive from the API as JSON numbers; decimal
// keeps the rounding away from float artifacts.
func (s *Store) Format(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	return s.Symbol() + d.StringFixed(2)
}

// FormatDecimal is Format for callers that already hold a decimal.
func (s *Store) FormatDecimal(d decimal.Decimal) string {
	return s.Symbol() + d.Round(2).StringFixed(2)
}
