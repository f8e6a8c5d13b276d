package roundup

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		rule     Rule
		boundary *decimal.Decimal
		rounded  string
		roundup  string
	}{
		{name: "fixed rounds to next unit", amount: "12.34", rule: RuleFixed, rounded: "13", roundup: "0.66"},
		{name: "fixed integral amount", amount: "5.00", rule: RuleFixed, rounded: "5", roundup: "0"},
		{name: "fixed one cent", amount: "0.01", rule: RuleFixed, rounded: "1", roundup: "0.99"},
		{name: "fixed ignores boundary", amount: "3.10", rule: RuleFixed, boundary: decPtr("-1"), rounded: "4", roundup: "0.9"},
		{name: "custom five", amount: "12.34", rule: RuleCustom, boundary: decPtr("5"), rounded: "15", roundup: "2.66"},
		{name: "custom exact multiple", amount: "10.00", rule: RuleCustom, boundary: decPtr("5"), rounded: "10", roundup: "0"},
		{name: "custom quarter", amount: "3.30", rule: RuleCustom, boundary: decPtr("0.25"), rounded: "3.5", roundup: "0.2"},
		{name: "custom cent boundary", amount: "7.77", rule: RuleCustom, boundary: decPtr("0.01"), rounded: "7.77", roundup: "0"},
		{name: "custom boundary above amount", amount: "0.50", rule: RuleCustom, boundary: decPtr("10"), rounded: "10", roundup: "9.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(dec(tt.amount), tt.rule, tt.boundary)
			require.NoError(t, err)
			assert.True(t, dec(tt.amount).Equal(res.OriginalAmount))
			assert.True(t, dec(tt.rounded).Equal(res.RoundedAmount), "rounded %s", res.RoundedAmount)
			assert.True(t, dec(tt.roundup).Equal(res.RoundupAmount), "roundup %s", res.RoundupAmount)
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		rule     Rule
		boundary *decimal.Decimal
		wantErr  error
	}{
		{name: "unknown rule", amount: "1.00", rule: "dollar", wantErr: ErrInvalidRule},
		{name: "empty rule", amount: "1.00", rule: "", wantErr: ErrInvalidRule},
		{name: "custom without boundary", amount: "1.00", rule: RuleCustom, wantErr: ErrInvalidBoundary},
		{name: "custom zero boundary", amount: "1.00", rule: RuleCustom, boundary: decPtr("0"), wantErr: ErrInvalidBoundary},
		{name: "custom negative boundary", amount: "1.00", rule: RuleCustom, boundary: decPtr("-5"), wantErr: ErrInvalidBoundary},
		{name: "custom sub-cent boundary", amount: "1.00", rule: RuleCustom, boundary: decPtr("0.001"), wantErr: ErrInvalidBoundary},
		{name: "zero amount", amount: "0", rule: RuleFixed, wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: "-3.20", rule: RuleFixed, wantErr: ErrInvalidAmount},
		{name: "sub-cent amount", amount: "1.005", rule: RuleFixed, wantErr: ErrInvalidAmount},
		{name: "rule checked before amount", amount: "-1", rule: "bogus", wantErr: ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(dec(tt.amount), tt.rule, tt.boundary)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCompute_FixedProperties(t *testing.T) {
	one := decimal.NewFromInt(1)
	for i := 0; i < 500; i++ {
		amount := decimal.New(int64(gofakeit.Number(1, 10_000_000)), -CurrencyPlaces)

		res, err := Compute(amount, RuleFixed, nil)
		require.NoError(t, err)

		assert.True(t, res.RoundedAmount.Equal(amount.Ceil()), "amount %s", amount)
		assert.True(t, res.RoundupAmount.Equal(res.RoundedAmount.Sub(amount)))
		assert.False(t, res.RoundupAmount.IsNegative())
		assert.True(t, res.RoundupAmount.LessThan(one))
	}
}

func TestCompute_CustomProperties(t *testing.T) {
	for i := 0; i < 500; i++ {
		amount := decimal.New(int64(gofakeit.Number(1, 10_000_000)), -CurrencyPlaces)
		boundary := decimal.New(int64(gofakeit.Number(1, 5_000)), -CurrencyPlaces)

		res, err := Compute(amount, RuleCustom, &boundary)
		require.NoError(t, err)

		assert.True(t, res.RoundedAmount.Mod(boundary).IsZero(), "%s not a multiple of %s", res.RoundedAmount, boundary)
		assert.True(t, res.RoundupAmount.Equal(res.RoundedAmount.Sub(amount)))
		assert.False(t, res.RoundupAmount.IsNegative())
		assert.True(t, res.RoundupAmount.LessThan(boundary))
	}
}

func TestRuleValid(t *testing.T) {
	assert.True(t, RuleFixed.Valid())
	assert.True(t, RuleCustom.Valid())
	assert.False(t, Rule("quarter").Valid())
	assert.NoError(t, ValidateRule(RuleCustom, decPtr("0.25")))
	assert.ErrorIs(t, ValidateRule(RuleCustom, nil), ErrInvalidBoundary)
}
