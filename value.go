package sqltree

import (
	"time"

	"github.com/zoobzio/sqltree/internal/types"
)

// Value is a typed SQL literal. The zero Value is NULL.
type Value = types.Value

// Kind identifies the variant held by a Value.
type Kind = types.Kind

const (
	KindNull          = types.KindNull
	KindBool          = types.KindBool
	KindTinyInt       = types.KindTinyInt
	KindSmallInt      = types.KindSmallInt
	KindInt           = types.KindInt
	KindBigInt        = types.KindBigInt
	KindTinyUnsigned  = types.KindTinyUnsigned
	KindSmallUnsigned = types.KindSmallUnsigned
	KindUnsigned      = types.KindUnsigned
	KindBigUnsigned   = types.KindBigUnsigned
	KindFloat         = types.KindFloat
	KindDouble        = types.KindDouble
	KindString        = types.KindString
	KindBytes         = types.KindBytes
	KindDateTimeTZ    = types.KindDateTimeTZ
	KindDate          = types.KindDate
	KindTime          = types.KindTime
	KindDateTime      = types.KindDateTime
	KindJSON          = types.KindJSON
	KindDecimal       = types.KindDecimal
	KindUUID          = types.KindUUID
)

// ValueOf converts a Go value to a Value. int maps to BigInt, uint to
// BigUnsigned, time.Time to DateTimeTZ, and nil or a nil pointer to NULL.
func ValueOf(x any) (Value, error) { return types.ValueOf(x) }

func Null() Value { return types.NullValue() }
func Bool(b bool) Value { return types.BoolValue(b) }
func TinyInt(i int8) Value { return types.TinyIntValue(i) }
func SmallInt(i int16) Value { return types.SmallIntValue(i) }
func Int(i int32) Value { return types.IntValue(i) }
func BigInt(i int64) Value { return types.BigIntValue(i) }
func TinyUnsigned(u uint8) Value { return types.TinyUnsignedValue(u) }
func SmallUnsigned(u uint16) Value { return types.SmallUnsignedValue(u) }
func Unsigned(u uint32) Value { return types.UnsignedValue(u) }
func BigUnsigned(u uint64) Value { return types.BigUnsignedValue(u) }
func Float(f float32) Value { return types.FloatValue(f) }
func Double(f float64) Value { return types.DoubleValue(f) }
func String(s string) Value { return types.StringValue(s) }
func Bytes(b []byte) Value { return types.BytesValue(b) }
func DateTimeTZ(t time.Time) Value { return types.DateTimeTZValue(t) }
