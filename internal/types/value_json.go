//go:build !sqltree_nojson

package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	registerKind(KindJSON, extension{
		text:   func(raw any) string { return string(raw.(json.RawMessage)) },
		driver: func(raw any) (driver.Value, error) { return string(raw.(json.RawMessage)), nil },
		equal:  func(a, b any) bool { return bytes.Equal(a.(json.RawMessage), b.(json.RawMessage)) },
	})
	registerConverter(json.RawMessage(nil), func(x any) Value { return JSONValue(x.(json.RawMessage)) })
}

// JSONValue wraps an already encoded JSON document. The bytes are copied.
func JSONValue(doc json.RawMessage) Value {
	return Value{kind: KindJSON, raw: json.RawMessage(bytes.Clone(doc))}
}

// MarshalJSONValue encodes x with encoding/json and wraps the result.
func MarshalJSONValue(x any) (Value, error) {
	doc, err := json.Marshal(x)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindJSON, raw: json.RawMessage(doc)}, nil
}

// ValueFromJSON decodes a single JSON value. Integral numbers become BigInt,
// or BigUnsigned beyond the int64 range; other numbers become Double. Arrays
// and objects stay JSON documents.
func ValueFromJSON(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return Value{}, fmt.Errorf("decoding JSON value: %w", err)
	}
	if dec.More() {
		return Value{}, fmt.Errorf("decoding JSON value: trailing data")
	}
	switch t := x.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		return numberValue(t)
	}
	return JSONValue(bytes.TrimSpace(raw)), nil
}

func numberValue(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return BigIntValue(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return BigUnsignedValue(u), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("decoding JSON number %s: %w", s, err)
	}
	return DoubleValue(f), nil
}
