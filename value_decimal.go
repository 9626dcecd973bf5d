//go:build !sqltree_nodecimal

package sqltree

import (
	"github.com/shopspring/decimal"
	"github.com/zoobzio/sqltree/internal/types"
)

func Decimal(d decimal.Decimal) Value { return types.DecimalValue(d) }
