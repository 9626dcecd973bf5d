package types

// QueryResult contains the rendered SQL and its bindings in placeholder order.
type QueryResult struct {
	SQL  string
	Args []Value
}

// Values returns the bindings as driver arguments for database/sql.
func (r *QueryResult) Values() []any {
	out := make([]any, len(r.Args))
	for i, v := range r.Args {
		out[i] = v
	}
	return out
}
