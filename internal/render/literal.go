package render

import (
	"math"

	"github.com/zoobzio/sqltree/internal/types"
)

// literal writes v in the dialect's literal syntax.
func (w *Writer) literal(v types.Value) error {
	switch v.Kind() {
	case types.KindNull:
		w.sql.WriteString("NULL")
	case types.KindBool:
		w.sql.WriteString(w.d.BoolLiteral(v.Raw().(bool)))
	case types.KindTinyInt, types.KindSmallInt, types.KindInt, types.KindBigInt,
		types.KindTinyUnsigned, types.KindSmallUnsigned, types.KindUnsigned, types.KindBigUnsigned,
		types.KindDecimal:
		w.sql.WriteString(v.Text())
	case types.KindFloat, types.KindDouble:
		f, _ := v.Value()
		if x := f.(float64); math.IsNaN(x) || math.IsInf(x, 0) {
			return Malformedf("non-finite float %s cannot be written as a literal", v.Text())
		}
		w.sql.WriteString(v.Text())
	case types.KindBytes:
		w.sql.WriteString(w.d.BytesLiteral(v.Raw().([]byte)))
	default:
		w.sql.WriteString(w.d.QuoteString(v.Text()))
	}
	return nil
}
