package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	s := NewStore()

	tests := []struct {
		amount float64
		want   string
	}{
		{24.5, "$24.50"},
		{0, "$0.00"},
		{19.999, "$20.00"},
		{1.005, "$1.01"}, // decimal rounds this up; float64 math would not
		{-3.2, "$-3.20"},
	}
	for _, tt := range tests {
		if got := s.Format(tt.amount); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}

	s.Set("₹", "INR")
	if got := s.Format(100); got != "₹100.00" {
		t.Errorf("Format after Set = %q", got)
	}
	if got := s.FormatDecimal(decimal.RequireFromString("12.345")); got != "₹12.35" {
		t.Errorf("FormatDecimal = %q", got)
	}
}

func TestSetIgnoresEmpties(t *testing.T) {
	s := NewStore()
	s.Set("€", "EUR")
	s.Set("", "")
	if s.Symbol() != "€" || s.Code() != "EUR" {
		t.Errorf("store = %s/%s, want €/EUR preserved", s.Symbol(), s.Code())
	}
	s.Set("", "GBP")
	if s.Symbol() != "€" || s.Code() != "GBP" {
		t.Errorf("store = %s/%s, want symbol kept and code updated", s.Symbol(), s.Code())
	}
}
