package utils

import (
	"encoding/json"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/segmentio/ksuid"
	"github.com/shopspring/decimal"
)

func GenKSUID() string {
	return ksuid.New().String()
}

func Marshal(value interface{}) []byte {
	b, _ := json.Marshal(value)
	return b
}

// FCurrency formats an amount for display with the given number of decimal
// digits, inserting thousands separators.
func FCurrency(n decimal.Decimal, digits int) string {
	rounded := n.Round(int32(digits))
	f, _ := rounded.Float64()
	formatted := humanize.CommafWithDigits(f, digits)

	if digits > 0 && !strings.Contains(formatted, ".") {
		formatted += "." + strings.Repeat("0", digits)
	}

	return formatted
}
