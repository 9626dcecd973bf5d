//go:build !sqltree_nouuid

package sqltree

import (
	"github.com/google/uuid"
	"github.com/zoobzio/sqltree/internal/types"
)

func UUID(u uuid.UUID) Value { return types.UUIDValue(u) }
