// Package roundup computes transaction roundups and summarizes them.
//
// All arithmetic is done with shopspring/decimal at cent precision, so
// results are exact for any amount with at most two fractional digits.
package roundup

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Rule selects the boundary a transaction amount is rounded up to.
type Rule string

const (
	// RuleFixed rounds up to the next whole currency unit.
	RuleFixed Rule = "fixed"
	// RuleCustom rounds up to the next multiple of a caller supplied boundary.
	RuleCustom Rule = "custom"
)

// Rules lists every supported rule in reporting order.
var Rules = []Rule{RuleFixed, RuleCustom}

// CurrencyPlaces is the number of fractional digits kept for money.
const CurrencyPlaces = 2

var (
	ErrInvalidRule     = errors.New("rounding rule must be fixed or custom")
	ErrInvalidBoundary = errors.New("custom boundary must be a positive amount with at most 2 decimal places")
	ErrInvalidAmount   = errors.New("amount must be a positive amount with at most 2 decimal places")
)

// Valid reports whether r is a supported rule.
func (r Rule) Valid() bool {
	return r == RuleFixed || r == RuleCustom
}

// Result is a single roundup calculation.
type Result struct {
	OriginalAmount decimal.Decimal
	RoundedAmount  decimal.Decimal
	RoundupAmount  decimal.Decimal
}

// Compute rounds amount up according to rule. boundary is only consulted for
// RuleCustom and must be nil or ignored otherwise.
func Compute(amount decimal.Decimal, rule Rule, boundary *decimal.Decimal) (Result, error) {
	step, err := resolveStep(rule, boundary)
	if err != nil {
		return Result{}, err
	}
	if !isCurrencyAmount(amount) {
		return Result{}, ErrInvalidAmount
	}
	return compute(amount, step), nil
}

// ValidateRule checks a rule and its boundary without computing anything.
func ValidateRule(rule Rule, boundary *decimal.Decimal) error {
	_, err := resolveStep(rule, boundary)
	return err
}

// resolveStep returns the rounding step for rule: one unit for fixed, the
// boundary for custom.
func resolveStep(rule Rule, boundary *decimal.Decimal) (decimal.Decimal, error) {
	switch rule {
	case RuleFixed:
		return decimal.NewFromInt(1), nil
	case RuleCustom:
		if boundary == nil || !isCurrencyAmount(*boundary) {
			return decimal.Zero, ErrInvalidBoundary
		}
		return *boundary, nil
	default:
		return decimal.Zero, ErrInvalidRule
	}
}

func compute(amount, step decimal.Decimal) Result {
	target := amount
	if rem := amount.Mod(step); !rem.IsZero() {
		target = amount.Add(step.Sub(rem))
	}
	return Result{
		OriginalAmount: amount,
		RoundedAmount:  target,
		RoundupAmount:  target.Sub(amount).Round(CurrencyPlaces),
	}
}

// isCurrencyAmount reports whether d is positive with at most two fractional
// digits.
func isCurrencyAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(CurrencyPlaces))
}
