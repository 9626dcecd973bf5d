//go:build !sqltree_nojson

package sqltree

import (
	"encoding/json"

	"github.com/zoobzio/sqltree/internal/types"
)

// JSON wraps an encoded JSON document.
func JSON(doc json.RawMessage) Value { return types.JSONValue(doc) }

// MarshalJSON encodes x and wraps the document.
func MarshalJSON(x any) (Value, error) { return types.MarshalJSONValue(x) }

// ValueFromJSON converts one encoded JSON value to the closest Value kind.
func ValueFromJSON(raw []byte) (Value, error) { return types.ValueFromJSON(raw) }
