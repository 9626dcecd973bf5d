package sqltree

import (
	"fmt"

	"github.com/zoobzio/sqltree/internal/render"
	"github.com/zoobzio/sqltree/internal/types"
)

// Error kinds returned by builders and renderers. Match them with errors.Is
// against the sentinels or errors.As against the types.
type (
	MalformedError          = render.MalformedError
	UnsupportedFeatureError = render.UnsupportedFeatureError
	InvalidIdentifierError  = render.InvalidIdentifierError
)

var (
	ErrMalformed          = render.ErrMalformed
	ErrUnsupportedFeature = render.ErrUnsupportedFeature
	ErrInvalidIdentifier  = render.ErrInvalidIdentifier
)

func toIden(x any) (types.Iden, error) {
	id, err := types.ToIden(x)
	if err != nil {
		return nil, render.InvalidIdentifierError{Name: fmt.Sprint(x), Reason: err.Error()}
	}
	return id, nil
}

func toIdens(xs []any) ([]types.Iden, error) {
	out := make([]types.Iden, 0, len(xs))
	for _, x := range xs {
		id, err := toIden(x)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func toValue(x any) (types.Value, error) {
	v, err := types.ValueOf(x)
	if err != nil {
		return types.Value{}, render.MalformedError{Reason: err.Error()}
	}
	return v, nil
}
