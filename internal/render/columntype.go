package render

import (
	"strconv"

	"github.com/zoobzio/sqltree/internal/types"
)

// Sized appends "(n)" to name when length is set.
func Sized(name string, length *uint32) string {
	if length == nil {
		return name
	}
	return name + "(" + strconv.FormatUint(uint64(*length), 10) + ")"
}

// Numeric appends "(p)" or "(p, s)" to name when precision is set.
func Numeric(name string, precision, scale *uint32) string {
	if precision == nil {
		return name
	}
	p := strconv.FormatUint(uint64(*precision), 10)
	if scale == nil {
		return name + "(" + p + ")"
	}
	return name + "(" + p + ", " + strconv.FormatUint(uint64(*scale), 10) + ")"
}

// CustomType returns the verbatim type name of a TypeCustom column type.
func CustomType(t types.ColumnType) (string, error) {
	if t.Custom == "" {
		return "", Malformedf("column type is not set")
	}
	return t.Custom, nil
}

// IsInteger reports whether k is an integer type family.
func IsInteger(k types.TypeKind) bool {
	switch k {
	case types.TypeTinyInteger, types.TypeSmallInteger, types.TypeInteger, types.TypeBigInteger:
		return true
	}
	return false
}
