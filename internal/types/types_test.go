package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestValueOf(t *testing.T) {
	id := uuid.MustParse("9b2f6a4e-3c1d-4f5e-8a7b-6c5d4e3f2a1b")
	n := 7
	var nilPtr *int

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, NullValue()},
		{"bool", true, BoolValue(true)},
		{"int8", int8(-3), TinyIntValue(-3)},
		{"int16", int16(300), SmallIntValue(300)},
		{"int32", int32(1), IntValue(1)},
		{"int", 42, BigIntValue(42)},
		{"uint", uint(9), BigUnsignedValue(9)},
		{"float32", float32(1.5), FloatValue(1.5)},
		{"float64", 2.25, DoubleValue(2.25)},
		{"string", "x", StringValue("x")},
		{"bytes", []byte{1, 2}, BytesValue([]byte{1, 2})},
		{"pointer", &n, BigIntValue(7)},
		{"nil pointer", nilPtr, NullValue()},
		{"value", StringValue("v"), StringValue("v")},
		{"uuid", id, UUIDValue(id)},
		{"decimal", decimal.RequireFromString("1.10"), DecimalValue(decimal.RequireFromString("1.1"))},
		{"date", civil.Date{Year: 2024, Month: 2, Day: 29}, DateValue(civil.Date{Year: 2024, Month: 2, Day: 29})},
		{"json", json.RawMessage(`{"a":1}`), JSONValue(json.RawMessage(`{"a":1}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ValueOf(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueOfUnsupported(t *testing.T) {
	_, err := ValueOf(struct{}{})
	if !errors.Is(err, ErrUnsupportedGoType) {
		t.Errorf("expected ErrUnsupportedGoType, got %v", err)
	}
}

func TestValueEqual(t *testing.T) {
	if IntValue(1).Equal(BigIntValue(1)) {
		t.Error("values of different kinds must not be equal")
	}
	if !DoubleValue(math.NaN()).Equal(DoubleValue(math.NaN())) {
		t.Error("NaN payloads should compare equal")
	}
	if !NullValue().Equal(Value{}) {
		t.Error("zero Value should be NULL")
	}
	a := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if !DateTimeTZValue(a).Equal(DateTimeTZValue(a.In(time.FixedZone("x", 3600)))) {
		t.Error("same instant in different zones should be equal")
	}
}

func TestBytesValueCopies(t *testing.T) {
	b := []byte("abc")
	v := BytesValue(b)
	b[0] = 'z'
	if got := v.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
	raw := v.Raw().([]byte)
	raw[1] = 'z'
	if got := v.Text(); got != "abc" {
		t.Errorf("Raw() leaked payload, Text() = %q", got)
	}
}

func TestDriverValue(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want any
	}{
		{"null", NullValue(), nil},
		{"int", IntValue(5), int64(5)},
		{"uint", UnsignedValue(5), int64(5)},
		{"float", FloatValue(0.5), float64(0.5)},
		{"decimal", DecimalValue(decimal.RequireFromString("3.14")), "3.14"},
		{"time", TimeValue(civil.Time{Hour: 8, Minute: 30}), "08:30:00"},
		{"json", JSONValue(json.RawMessage(`[1]`)), "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Value()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %#v, want %#v", got, tt.want)
			}
		})
	}

	if _, err := BigUnsignedValue(math.MaxUint64).Value(); err == nil {
		t.Error("expected overflow error for large uint64")
	}
}

func TestToIden(t *testing.T) {
	id, err := ToIden("users")
	if err != nil || id.String() != "users" {
		t.Errorf("ToIden(string) = %v, %v", id, err)
	}
	id, err = ToIden(Name("posts"))
	if err != nil || id.String() != "posts" {
		t.Errorf("ToIden(Name) = %v, %v", id, err)
	}
	if _, err := ToIden(12); !errors.Is(err, ErrNotIdentifier) {
		t.Errorf("expected ErrNotIdentifier, got %v", err)
	}
	if _, err := ToIden(nil); !errors.Is(err, ErrNotIdentifier) {
		t.Errorf("expected ErrNotIdentifier for nil, got %v", err)
	}
}

func TestConditionGroupEffective(t *testing.T) {
	eq := BinaryExpr{Op: OpEq, Left: ColumnExpr{Name: Name("a")}, Right: ValueExpr{Value: IntValue(1)}}
	g := All(eq, Any(), All(Any()), nil)
	if got := len(g.Effective()); got != 1 {
		t.Errorf("Effective() len = %d, want 1", got)
	}
	if !All(Any(All())).IsEmpty() {
		t.Error("nested empty groups should reduce to empty")
	}
}

func TestPrecedence(t *testing.T) {
	if OpMul.Precedence() <= OpAdd.Precedence() {
		t.Error("* must bind tighter than +")
	}
	if OpAnd.Precedence() <= OpOr.Precedence() {
		t.Error("AND must bind tighter than OR")
	}
	if OpSub.Associative() || !OpAdd.Associative() {
		t.Error("associativity table is wrong")
	}
	single := All(BinaryExpr{Op: OpAdd, Left: ValueExpr{}, Right: ValueExpr{}})
	if Precedence(single) != PrecAdditive {
		t.Errorf("single-member group should take its member's precedence")
	}
}

func TestSelectClone(t *testing.T) {
	limit := uint64(5)
	orig := &SelectStatement{
		Columns: []SelectExpr{{Expr: ColumnExpr{Name: Name("id")}}},
		Where:   All(BinaryExpr{Op: OpEq, Left: ColumnExpr{Name: Name("id")}, Right: ValueExpr{Value: IntValue(1)}}),
		Limit:   &limit,
	}
	c := orig.Clone()
	*c.Limit = 10
	c.Where.Conditions[0] = ValueExpr{Value: BoolValue(true)}
	c.Columns = append(c.Columns, SelectExpr{Expr: ColumnExpr{Name: Name("name")}})

	if *orig.Limit != 5 {
		t.Errorf("clone shares limit")
	}
	if _, ok := orig.Where.Conditions[0].(BinaryExpr); !ok {
		t.Errorf("clone shares where members")
	}
	if len(orig.Columns) != 1 {
		t.Errorf("clone shares columns")
	}
}
