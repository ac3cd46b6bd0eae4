package models

import "github.com/shopspring/decimal"

// Amount is a nullable monetary value. The zero value is the null amount.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount wraps a decimal into a non-null Amount.
func NewAmount(v decimal.Decimal) Amount {
	return Amount{Value: v, Valid: true}
}

// String renders the amount with two decimal places, or "" when null.
// This is the exact form written into the CSV reports.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Value.StringFixed(2)
}

// RateUnit says what a parsed price figure is scoped to. The fallback
// extraction path recovers a bare number from a display string with no
// night count attached, so the unit genuinely cannot be known there.
type RateUnit int

const (
	RatePerNight RateUnit = iota
	RateUnitUnknown
)

func (u RateUnit) String() string {
	if u == RateUnitUnknown {
		return "unknown"
	}
	return "per_night"
}
