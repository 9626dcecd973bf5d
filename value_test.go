package sqltree_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zoobzio/sqltree"
	"github.com/zoobzio/sqltree/postgres"
	sqltesting "github.com/zoobzio/sqltree/testing"
)

func TestValueOfKinds(t *testing.T) {
	id := uuid.MustParse("7f1c1f3e-5a0e-4c44-9a43-0d6a3f0f0b11")
	tests := []struct {
		in   any
		kind sqltree.Kind
	}{
		{nil, sqltree.KindNull},
		{true, sqltree.KindBool},
		{int8(1), sqltree.KindTinyInt},
		{int16(1), sqltree.KindSmallInt},
		{int32(1), sqltree.KindInt},
		{1, sqltree.KindBigInt},
		{uint(1), sqltree.KindBigUnsigned},
		{float32(1.5), sqltree.KindFloat},
		{1.5, sqltree.KindDouble},
		{"x", sqltree.KindString},
		{[]byte("x"), sqltree.KindBytes},
		{time.Unix(0, 0), sqltree.KindDateTimeTZ},
		{civil.Date{Year: 2024, Month: time.March, Day: 1}, sqltree.KindDate},
		{civil.Time{Hour: 12}, sqltree.KindTime},
		{decimal.RequireFromString("12.50"), sqltree.KindDecimal},
		{id, sqltree.KindUUID},
		{json.RawMessage(`{"a":1}`), sqltree.KindJSON},
		{(*int)(nil), sqltree.KindNull},
	}
	for _, tt := range tests {
		v, err := sqltree.ValueOf(tt.in)
		if err != nil {
			t.Errorf("ValueOf(%#v) error = %v", tt.in, err)
			continue
		}
		if v.Kind() != tt.kind {
			t.Errorf("ValueOf(%#v).Kind() = %v, want %v", tt.in, v.Kind(), tt.kind)
		}
	}
}

func TestExtendedValuesBind(t *testing.T) {
	id := uuid.MustParse("7f1c1f3e-5a0e-4c44-9a43-0d6a3f0f0b11")
	price := decimal.RequireFromString("19.99")
	day := civil.Date{Year: 2024, Month: time.March, Day: 1}

	q := sqltree.Insert().Into("orders").
		Columns("id", "price", "day", "meta").
		Values(id, price, day, sqltree.JSON(json.RawMessage(`{"gift":true}`)))

	result, err := q.Render(postgres.New())
	sqltesting.AssertNoError(t, err)
	sqltesting.AssertSQL(t, `INSERT INTO "orders" ("id", "price", "day", "meta") VALUES ($1, $2, $3, $4)`, result.SQL)
	sqltesting.AssertArgs(t,
		[]any{id.String(), "19.99", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), `{"gift":true}`},
		result.Args)

	sql, err := q.RenderInline(postgres.New())
	sqltesting.AssertNoError(t, err)
	sqltesting.AssertSQL(t,
		`INSERT INTO "orders" ("id", "price", "day", "meta") VALUES ('7f1c1f3e-5a0e-4c44-9a43-0d6a3f0f0b11', 19.99, '2024-03-01', '{"gift":true}')`,
		sql)
}

func TestTimeValueNotTreatedAsColumn(t *testing.T) {
	at := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	sql, err := sqltree.Select(sqltree.Max(at)).RenderInline(postgres.New())
	sqltesting.AssertNoError(t, err)
	sqltesting.AssertSQL(t, `SELECT MAX('2024-01-02 03:04:05 +00:00')`, sql)
}

func TestInlineNonFiniteFloat(t *testing.T) {
	_, err := sqltree.Select(sqltree.Val(math.Inf(1))).RenderInline(postgres.New())
	sqltesting.AssertErrorIs(t, err, sqltree.ErrMalformed)

	// Bound, the value is the driver's problem.
	_, err = sqltree.Select(sqltree.Val(math.Inf(1))).Render(postgres.New())
	sqltesting.AssertNoError(t, err)
}

func TestMarshalJSON(t *testing.T) {
	v, err := sqltree.MarshalJSON(map[string]int{"a": 1})
	sqltesting.AssertNoError(t, err)
	if v.Kind() != sqltree.KindJSON || v.Text() != `{"a":1}` {
		t.Errorf("MarshalJSON = %v", v)
	}

	_, err = sqltree.MarshalJSON(func() {})
	if err == nil {
		t.Error("expected error marshaling a func")
	}
}

func TestValueToJSON(t *testing.T) {
	id := uuid.MustParse("7f1c1f3e-5a0e-4c44-9a43-0d6a3f0f0b11")
	doc, err := sqltree.MarshalJSON(map[string]int{"a": 1})
	sqltesting.AssertNoError(t, err)

	tests := []struct {
		v    sqltree.Value
		want string
	}{
		{sqltree.Null(), `null`},
		{sqltree.Bool(true), `true`},
		{sqltree.Int(-3), `-3`},
		{sqltree.BigUnsigned(math.MaxUint64), `18446744073709551615`},
		{sqltree.Double(1.5), `1.5`},
		{sqltree.String(`say "hi"`), `"say \"hi\""`},
		{sqltree.Bytes([]byte("raw")), `"raw"`},
		{doc, `{"a":1}`},
		{sqltree.DateTime(civil.DateTime{
			Date: civil.Date{Year: 2024, Month: time.March, Day: 1},
			Time: civil.Time{Hour: 12, Minute: 30},
		}), `"2024-03-01 12:30:00"`},
		{sqltree.UUID(id), `"7f1c1f3e-5a0e-4c44-9a43-0d6a3f0f0b11"`},
		{sqltree.Decimal(decimal.RequireFromString("12.50")), `"12.5"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.v)
		sqltesting.AssertNoError(t, err)
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}

	got, err := json.Marshal(map[string]sqltree.Value{"n": sqltree.BigInt(7)})
	sqltesting.AssertNoError(t, err)
	if string(got) != `{"n":7}` {
		t.Errorf("nested = %s", got)
	}
}

func TestValueFromJSON(t *testing.T) {
	tests := []struct {
		in   string
		want sqltree.Value
	}{
		{`null`, sqltree.Null()},
		{`false`, sqltree.Bool(false)},
		{`42`, sqltree.BigInt(42)},
		{`-7`, sqltree.BigInt(-7)},
		{`18446744073709551615`, sqltree.BigUnsigned(math.MaxUint64)},
		{`2.5`, sqltree.Double(2.5)},
		{`1e3`, sqltree.Double(1000)},
		{` "text" `, sqltree.String("text")},
		{`{"a": [1, 2]}`, sqltree.JSON(json.RawMessage(`{"a": [1, 2]}`))},
		{`[true]`, sqltree.JSON(json.RawMessage(`[true]`))},
	}
	for _, tt := range tests {
		got, err := sqltree.ValueFromJSON([]byte(tt.in))
		sqltesting.AssertNoError(t, err)
		if !got.Equal(tt.want) {
			t.Errorf("ValueFromJSON(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{``, `{`, `1 2`} {
		if _, err := sqltree.ValueFromJSON([]byte(in)); err == nil {
			t.Errorf("ValueFromJSON(%q): expected error", in)
		}
	}
}

func TestUnsignedOverflow(t *testing.T) {
	_, err := sqltree.BigUnsigned(math.MaxUint64).Value()
	if err == nil {
		t.Error("expected overflow error")
	}
	if errors.Is(err, sqltree.ErrMalformed) {
		t.Error("driver conversion errors are not statement errors")
	}
}
