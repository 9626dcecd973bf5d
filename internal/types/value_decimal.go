//go:build !sqltree_nodecimal

package types

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

func init() {
	registerKind(KindDecimal, extension{
		text:   func(raw any) string { return raw.(decimal.Decimal).String() },
		driver: func(raw any) (driver.Value, error) { return raw.(decimal.Decimal).String(), nil },
		equal:  func(a, b any) bool { return a.(decimal.Decimal).Equal(b.(decimal.Decimal)) },
	})
	registerConverter(decimal.Decimal{}, func(x any) Value { return DecimalValue(x.(decimal.Decimal)) })
}

// DecimalValue wraps an arbitrary-precision decimal.
func DecimalValue(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, raw: d}
}
