//go:build !sqltree_nocivil

package sqltree

import (
	"github.com/golang-sql/civil"
	"github.com/zoobzio/sqltree/internal/types"
)

// Date is a calendar date without a time zone.
func Date(d civil.Date) Value { return types.DateValue(d) }

// Time is a wall-clock time without a date or time zone.
func Time(t civil.Time) Value { return types.TimeValue(t) }

// DateTime is a date and time without a time zone.
func DateTime(dt civil.DateTime) Value { return types.DateTimeValue(dt) }
