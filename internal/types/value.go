package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindTinyUnsigned
	KindSmallUnsigned
	KindUnsigned
	KindBigUnsigned
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindDateTimeTZ
	KindDate
	KindTime
	KindDateTime
	KindJSON
	KindDecimal
	KindUUID
)

var kindNames = [...]string{
	KindNull:          "Null",
	KindBool:          "Bool",
	KindTinyInt:       "TinyInt",
	KindSmallInt:      "SmallInt",
	KindInt:           "Int",
	KindBigInt:        "BigInt",
	KindTinyUnsigned:  "TinyUnsigned",
	KindSmallUnsigned: "SmallUnsigned",
	KindUnsigned:      "Unsigned",
	KindBigUnsigned:   "BigUnsigned",
	KindFloat:         "Float",
	KindDouble:        "Double",
	KindString:        "String",
	KindBytes:         "Bytes",
	KindDateTimeTZ:    "DateTimeWithTimeZone",
	KindDate:          "Date",
	KindTime:          "Time",
	KindDateTime:      "DateTime",
	KindJSON:          "Json",
	KindDecimal:       "Decimal",
	KindUUID:          "Uuid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a typed SQL literal. The zero Value is NULL.
// Values are immutable; the payload is only reachable through accessors.
type Value struct {
	raw  any
	kind Kind
}

// extension describes an optional value kind compiled in through a build tag.
type extension struct {
	// text is the canonical textual form used for inline literals.
	text func(raw any) string
	// driver converts the payload to a database/sql/driver value.
	driver func(raw any) (driver.Value, error)
	equal  func(a, b any) bool
}

var (
	extensions = map[Kind]extension{}
	// converters map Go types of optional kinds to Values for ValueOf.
	converters = map[reflect.Type]func(any) Value{}
)

func registerKind(k Kind, ext extension) {
	extensions[k] = ext
}

func registerConverter(sample any, fn func(any) Value) {
	converters[reflect.TypeOf(sample)] = fn
}

func NullValue() Value { return Value{kind: KindNull} }
func BoolValue(b bool) Value { return Value{kind: KindBool, raw: b} }
func TinyIntValue(i int8) Value { return Value{kind: KindTinyInt, raw: i} }
func SmallIntValue(i int16) Value { return Value{kind: KindSmallInt, raw: i} }
func IntValue(i int32) Value { return Value{kind: KindInt, raw: i} }
func BigIntValue(i int64) Value { return Value{kind: KindBigInt, raw: i} }
func TinyUnsignedValue(u uint8) Value { return Value{kind: KindTinyUnsigned, raw: u} }
func SmallUnsignedValue(u uint16) Value { return Value{kind: KindSmallUnsigned, raw: u} }
func UnsignedValue(u uint32) Value { return Value{kind: KindUnsigned, raw: u} }
func BigUnsignedValue(u uint64) Value { return Value{kind: KindBigUnsigned, raw: u} }
func FloatValue(f float32) Value { return Value{kind: KindFloat, raw: f} }
func DoubleValue(f float64) Value { return Value{kind: KindDouble, raw: f} }
func StringValue(s string) Value { return Value{kind: KindString, raw: s} }
func DateTimeTZValue(t time.Time) Value { return Value{kind: KindDateTimeTZ, raw: t} }

// BytesValue copies b so later mutation by the caller cannot leak into the value.
func BytesValue(b []byte) Value {
	if b == nil {
		return Value{kind: KindBytes, raw: []byte{}}
	}
	return Value{kind: KindBytes, raw: bytes.Clone(b)}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the NULL value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Raw returns the Go payload. Byte payloads are copied.
func (v Value) Raw() any {
	if b, ok := v.raw.([]byte); ok {
		return bytes.Clone(b)
	}
	return v.raw
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBytes:
		return bytes.Equal(v.raw.([]byte), o.raw.([]byte))
	case KindDateTimeTZ:
		return v.raw.(time.Time).Equal(o.raw.(time.Time))
	case KindFloat:
		a, b := v.raw.(float32), o.raw.(float32)
		return a == b || (math.IsNaN(float64(a)) && math.IsNaN(float64(b)))
	case KindDouble:
		a, b := v.raw.(float64), o.raw.(float64)
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	if ext, ok := extensions[v.kind]; ok && ext.equal != nil {
		return ext.equal(v.raw, o.raw)
	}
	return v.raw == o.raw
}

// Text returns the canonical textual form of the payload, without quoting.
// NULL yields "NULL".
func (v Value) Text() string {
	switch x := v.raw.(type) {
	case nil:
		return "NULL"
	case bool:
		return strconv.FormatBool(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05.999999 -07:00")
	}
	if ext, ok := extensions[v.kind]; ok {
		return ext.text(v.raw)
	}
	return fmt.Sprint(v.raw)
}

func (v Value) String() string {
	if v.kind == KindNull {
		return "Null"
	}
	return v.kind.String() + "(" + v.Text() + ")"
}

// Value implements driver.Valuer so bindings can be handed to database/sql.
func (v Value) Value() (driver.Value, error) {
	switch x := v.raw.(type) {
	case nil:
		return nil, nil
	case bool:
		return x, nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("uint64 value %d overflows int64", x)
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		return x, nil
	case []byte:
		return bytes.Clone(x), nil
	case time.Time:
		return x, nil
	}
	if ext, ok := extensions[v.kind]; ok && ext.driver != nil {
		return ext.driver(v.raw)
	}
	return nil, fmt.Errorf("value of kind %s has no driver representation", v.kind)
}

// MarshalJSON encodes v as its natural JSON counterpart. Bytes become a
// string, JSON documents are embedded as they are, and temporal, decimal and
// UUID kinds use their text form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch x := v.raw.(type) {
	case nil:
		return []byte("null"), nil
	case json.RawMessage:
		return bytes.Clone(x), nil
	case []byte:
		return json.Marshal(string(x))
	case time.Time:
		return json.Marshal(v.Text())
	case bool, int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64, string:
		return json.Marshal(x)
	}
	return json.Marshal(v.Text())
}

// ErrUnsupportedGoType is returned by ValueOf for Go types with no Value kind.
var ErrUnsupportedGoType = errors.New("unsupported Go type")

// ValueOf converts a Go value to a Value. Nil pointers and nil become NULL.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return t, nil
	case bool:
		return BoolValue(t), nil
	case int8:
		return TinyIntValue(t), nil
	case int16:
		return SmallIntValue(t), nil
	case int32:
		return IntValue(t), nil
	case int64:
		return BigIntValue(t), nil
	case int:
		return BigIntValue(int64(t)), nil
	case uint8:
		return TinyUnsignedValue(t), nil
	case uint16:
		return SmallUnsignedValue(t), nil
	case uint32:
		return UnsignedValue(t), nil
	case uint64:
		return BigUnsignedValue(t), nil
	case uint:
		return BigUnsignedValue(uint64(t)), nil
	case float32:
		return FloatValue(t), nil
	case float64:
		return DoubleValue(t), nil
	case string:
		return StringValue(t), nil
	case []byte:
		return BytesValue(t), nil
	case time.Time:
		return DateTimeTZValue(t), nil
	}

	if fn, ok := converters[reflect.TypeOf(x)]; ok {
		return fn(x), nil
	}

	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return NullValue(), nil
		}
		return ValueOf(rv.Elem().Interface())
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedGoType, x)
}
