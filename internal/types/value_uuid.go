//go:build !sqltree_nouuid

package types

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

func init() {
	registerKind(KindUUID, extension{
		text:   func(raw any) string { return raw.(uuid.UUID).String() },
		driver: func(raw any) (driver.Value, error) { return raw.(uuid.UUID).String(), nil },
	})
	registerConverter(uuid.UUID{}, func(x any) Value { return UUIDValue(x.(uuid.UUID)) })
}

func UUIDValue(u uuid.UUID) Value {
	return Value{kind: KindUUID, raw: u}
}
