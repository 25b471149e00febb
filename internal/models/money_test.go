package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	amount := decimal.NewFromFloat(7.5)
	money := NewMoney(amount, "USD")

	assert.Equal(t, amount, money.Amount)
	assert.Equal(t, "USD", money.Currency)
	assert.True(t, ZeroMoney("ARS").IsZero())
}

func TestMoneyOperations(t *testing.T) {
	current := NewMoney(decimal.RequireFromString("1.20"), "USD")
	previous := NewMoney(decimal.RequireFromString("0.45"), "USD")

	delta, err := current.Sub(previous)
	require.NoError(t, err)
	assert.Equal(t, "0.75", delta.Amount.StringFixed(2))

	negative, err := previous.Sub(current)
	require.NoError(t, err)
	assert.True(t, negative.IsNegative())
	assert.Equal(t, "0.75", negative.Abs().Amount.StringFixed(2))

	_, err = current.Sub(NewMoney(decimal.NewFromInt(1), "ARS"))
	assert.Error(t, err)

	assert.Equal(t, "1200.00", current.Mul(decimal.NewFromInt(1000)).Amount.StringFixed(2))
}

func TestMoneyCompare(t *testing.T) {
	a := NewMoney(decimal.NewFromInt(50), "USD")
	b := NewMoney(decimal.RequireFromString("49.99"), "USD")

	cmp, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	_, err = a.Compare(NewMoney(decimal.NewFromInt(50), "ARS"))
	assert.Error(t, err)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "1.20 USD", NewMoney(decimal.RequireFromString("1.2"), "USD").String())
}
