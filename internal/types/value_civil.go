//go:build !sqltree_nocivil

package types

import (
	"database/sql/driver"
	"time"

	"github.com/golang-sql/civil"
)

func init() {
	registerKind(KindDate, extension{
		text:   func(raw any) string { return raw.(civil.Date).String() },
		driver: func(raw any) (driver.Value, error) { return raw.(civil.Date).In(time.UTC), nil },
	})
	registerKind(KindTime, extension{
		text:   func(raw any) string { return raw.(civil.Time).String() },
		driver: func(raw any) (driver.Value, error) { return raw.(civil.Time).String(), nil },
	})
	registerKind(KindDateTime, extension{
		text:   func(raw any) string { return dateTimeText(raw.(civil.DateTime)) },
		driver: func(raw any) (driver.Value, error) { return raw.(civil.DateTime).In(time.UTC), nil },
	})
	registerConverter(civil.Date{}, func(x any) Value { return DateValue(x.(civil.Date)) })
	registerConverter(civil.Time{}, func(x any) Value { return TimeValue(x.(civil.Time)) })
	registerConverter(civil.DateTime{}, func(x any) Value { return DateTimeValue(x.(civil.DateTime)) })
}

// dateTimeText uses a space separator, which every supported dialect parses.
func dateTimeText(dt civil.DateTime) string {
	return dt.Date.String() + " " + dt.Time.String()
}

// DateValue is a calendar date without a time zone.
func DateValue(d civil.Date) Value { return Value{kind: KindDate, raw: d} }

// TimeValue is a wall-clock time without a date or time zone.
func TimeValue(t civil.Time) Value { return Value{kind: KindTime, raw: t} }

// DateTimeValue is a date and time without a time zone.
func DateTimeValue(dt civil.DateTime) Value { return Value{kind: KindDateTime, raw: dt} }
