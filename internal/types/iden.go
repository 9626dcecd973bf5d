package types

import (
	"errors"
	"fmt"
)

// Iden is anything that can name a table, column, index or schema.
// Any fmt.Stringer qualifies, including stringer-generated enums.
type Iden interface {
	String() string
}

// Name is a raw string identifier.
type Name string

func (n Name) String() string { return string(n) }

// ErrNotIdentifier is returned by ToIden for values that cannot name anything.
var ErrNotIdentifier = errors.New("not an identifier")

// ToIden accepts a string or an Iden.
func ToIden(x any) (Iden, error) {
	switch t := x.(type) {
	case string:
		return Name(t), nil
	case Iden:
		return t, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIdentifier, x)
}

// TableRef names the source of rows: a table, optionally schema-qualified and
// aliased, or an aliased derived table.
type TableRef struct {
	Schema   Iden
	Name     Iden
	Alias    Iden
	SubQuery *SelectStatement
}

// Table returns a reference to a plain table.
func Table(name Iden) TableRef {
	return TableRef{Name: name}
}

// IsZero reports whether no table has been set.
func (t TableRef) IsZero() bool {
	return t.Name == nil && t.SubQuery == nil
}
