package testing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zoobzio/sqltree"
)

// =============================================================================
// TestSchema Tests
// =============================================================================

func TestTestSchema(t *testing.T) {
	schema := TestSchema(t)
	if schema == nil {
		t.Fatal("Expected non-nil schema")
	}

	for _, table := range []string{"users", "posts", "comments", "orders", "products"} {
		_ = schema.T(table)
	}
	_ = schema.F("id")
	_ = schema.C("users", "email")
}

// =============================================================================
// AssertSQL Tests
// =============================================================================

func TestAssertSQL_Match(t *testing.T) {
	AssertSQL(t, `SELECT * FROM "users"`, `SELECT * FROM "users"`)
}

// =============================================================================
// AssertArgs Tests
// =============================================================================

func TestAssertArgs_Match(t *testing.T) {
	AssertArgs(t, []any{int64(1), "alice", true}, []sqltree.Value{
		sqltree.BigInt(1),
		sqltree.String("alice"),
		sqltree.Bool(true),
	})
}

func TestAssertArgs_Empty(t *testing.T) {
	AssertArgs(t, nil, nil)
}

// =============================================================================
// Error assertion Tests
// =============================================================================

func TestAssertNoError_Nil(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError_Error(t *testing.T) {
	AssertError(t, errors.New("test error"))
}

func TestAssertErrorIs_Wrapped(t *testing.T) {
	err := fmt.Errorf("render: %w", sqltree.MalformedError{Reason: "bad"})
	AssertErrorIs(t, err, sqltree.ErrMalformed)
}

func TestAssertErrorContains_Match(t *testing.T) {
	AssertErrorContains(t, errors.New("table not found in schema"), "not found")
}

// =============================================================================
// Panic assertion Tests
// =============================================================================

func TestAssertPanics_Panics(t *testing.T) {
	AssertPanics(t, func() { panic("boom") })
}

func TestAssertPanicsWithMessage_Error(t *testing.T) {
	schema := TestSchema(t)
	AssertPanicsWithMessage(t, func() { schema.T("missing") }, "table not found")
}
