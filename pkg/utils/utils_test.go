package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFCurrency(t *testing.T) {
	assert.Equal(t, "1,249", FCurrency(decimal.NewFromFloat(1248.6), 0))
	assert.Equal(t, "0", FCurrency(decimal.Zero, 0))
	assert.Equal(t, "4.99", FCurrency(decimal.NewFromFloat(4.99), 2))
	assert.Equal(t, "30.00", FCurrency(decimal.NewFromInt(30), 2))
}

func TestGenKSUIDIsUnique(t *testing.T) {
	assert.NotEqual(t, GenKSUID(), GenKSUID())
}
