package render

import (
	"github.com/zoobzio/sqltree/internal/types"
)

func (w *Writer) selectStatement(s *types.SelectStatement) error {
	if err := w.selectCore(s); err != nil {
		return err
	}
	for _, u := range s.Unions {
		if err := w.union(u); err != nil {
			return err
		}
	}
	if err := w.orderBy(s.OrderBy); err != nil {
		return err
	}
	page, err := w.d.LimitOffset(s.Limit, s.Offset, len(s.OrderBy) > 0)
	if err != nil {
		return err
	}
	if page != "" {
		w.sql.WriteByte(' ')
		w.sql.WriteString(page)
	}
	if s.Lock != nil {
		return w.lock(s.Lock)
	}
	return nil
}

// selectCore writes everything up to and including HAVING.
func (w *Writer) selectCore(s *types.SelectStatement) error {
	if len(s.Columns) == 0 {
		return Malformedf("SELECT without columns")
	}
	w.sql.WriteString("SELECT ")
	if s.Distinct {
		w.sql.WriteString("DISTINCT ")
	}
	if err := w.selectList(s.Columns); err != nil {
		return err
	}
	if s.From != nil {
		w.sql.WriteString(" FROM ")
		if err := w.Table(*s.From); err != nil {
			return err
		}
	} else if len(s.Joins) > 0 {
		return Malformedf("JOIN without FROM")
	}
	for _, j := range s.Joins {
		if err := w.join(j); err != nil {
			return err
		}
	}
	if err := w.where("WHERE", s.Where); err != nil {
		return err
	}
	if len(s.GroupBy) > 0 {
		w.sql.WriteString(" GROUP BY ")
		if err := w.exprList(s.GroupBy); err != nil {
			return err
		}
	}
	return w.where("HAVING", s.Having)
}

func (w *Writer) selectList(cols []types.SelectExpr) error {
	for i, c := range cols {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.Expr(c.Expr); err != nil {
			return err
		}
		if c.Alias != nil {
			w.sql.WriteString(" AS ")
			if err := w.Ident(c.Alias); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer) join(j types.Join) error {
	switch j.Kind {
	case types.RightJoin:
		if !w.caps.RightJoin {
			return w.unsupported("RIGHT JOIN")
		}
	case types.FullJoin:
		if !w.caps.FullJoin {
			return w.unsupported("FULL OUTER JOIN")
		}
	}
	w.sql.WriteByte(' ')
	w.sql.WriteString(j.Kind.String())
	w.sql.WriteByte(' ')
	if err := w.Table(j.Table); err != nil {
		return err
	}
	if j.Kind == types.CrossJoin {
		if !j.On.IsEmpty() {
			return Malformedf("CROSS JOIN cannot have an ON condition")
		}
		return nil
	}
	if j.On.IsEmpty() {
		return Malformedf("%s without ON condition", j.Kind)
	}
	w.sql.WriteString(" ON ")
	return w.condition(j.On)
}

// where writes " KEYWORD cond" unless the group is empty.
func (w *Writer) where(keyword string, g types.ConditionGroup) error {
	if g.IsEmpty() {
		return nil
	}
	w.sql.WriteByte(' ')
	w.sql.WriteString(keyword)
	w.sql.WriteByte(' ')
	return w.condition(g)
}

// union writes a compound member. Members are not parenthesized, which SQLite
// requires, so they cannot carry their own ordering, paging or locks.
func (w *Writer) union(u types.Union) error {
	q := u.Query
	if q == nil {
		return Malformedf("missing UNION query")
	}
	if len(q.OrderBy) > 0 || q.Limit != nil || q.Offset != nil || q.Lock != nil || len(q.Unions) > 0 {
		return Malformedf("UNION member cannot have ORDER BY, LIMIT, OFFSET, locking or nested UNION")
	}
	if u.All {
		w.sql.WriteString(" UNION ALL ")
	} else {
		w.sql.WriteString(" UNION ")
	}
	if err := w.enter(); err != nil {
		return err
	}
	defer w.leave()
	return w.selectCore(q)
}

func (w *Writer) orderBy(order []types.OrderExpr) error {
	if len(order) == 0 {
		return nil
	}
	w.sql.WriteString(" ORDER BY ")
	for i, o := range order {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.orderExpr(o); err != nil {
			return err
		}
	}
	return nil
}

// orderExpr writes one sort key. Without native NULLS ordering the placement
// is forced by a leading CASE key.
func (w *Writer) orderExpr(o types.OrderExpr) error {
	if o.Nulls != types.NullsDefault && !w.caps.NullsOrdering {
		first, rest := "1", "0"
		if o.Nulls == types.NullsFirst {
			first, rest = "0", "1"
		}
		w.sql.WriteString("CASE WHEN ")
		if err := w.operand(o.Expr, types.OpIs, false); err != nil {
			return err
		}
		w.sql.WriteString(" IS NULL THEN " + first + " ELSE " + rest + " END, ")
	}
	if err := w.Expr(o.Expr); err != nil {
		return err
	}
	w.sql.WriteByte(' ')
	w.sql.WriteString(o.Order.String())
	if o.Nulls != types.NullsDefault && w.caps.NullsOrdering {
		if o.Nulls == types.NullsFirst {
			w.sql.WriteString(" NULLS FIRST")
		} else {
			w.sql.WriteString(" NULLS LAST")
		}
	}
	return nil
}

func (w *Writer) lock(l *types.Lock) error {
	switch w.caps.RowLocking {
	case RowLockingNone:
		return w.unsupported("FOR " + l.Type.String())
	case RowLockingBasic:
		if l.Type == types.LockNoKeyUpdate || l.Type == types.LockKeyShare {
			return w.unsupported("FOR "+l.Type.String(), "use FOR UPDATE or FOR SHARE")
		}
	}
	w.sql.WriteString(" FOR ")
	w.sql.WriteString(l.Type.String())
	if len(l.Of) > 0 {
		w.sql.WriteString(" OF ")
		if err := w.Idents(l.Of); err != nil {
			return err
		}
	}
	switch l.Behavior {
	case types.LockNoWait:
		w.sql.WriteString(" NOWAIT")
	case types.LockSkipLocked:
		w.sql.WriteString(" SKIP LOCKED")
	}
	return nil
}

func (w *Writer) returning(cols []types.SelectExpr) error {
	if len(cols) == 0 {
		return nil
	}
	if !w.caps.Returning {
		return w.unsupported("RETURNING", "use a separate SELECT query")
	}
	w.sql.WriteString(" RETURNING ")
	return w.selectList(cols)
}

func (w *Writer) insertStatement(s *types.InsertStatement) error {
	if s.Table.IsZero() {
		return Malformedf("INSERT without table")
	}
	switch {
	case s.Select != nil && len(s.Rows) > 0:
		return Malformedf("INSERT cannot have both VALUES and SELECT")
	case s.Select == nil && len(s.Rows) == 0:
		return Malformedf("INSERT without values")
	case len(s.Columns) == 0:
		return Malformedf("INSERT without columns")
	}
	for _, row := range s.Rows {
		if len(row) != len(s.Columns) {
			return Malformedf("columns and values length mismatch: %d != %d", len(s.Columns), len(row))
		}
	}

	w.sql.WriteString("INSERT INTO ")
	if err := w.Table(s.Table); err != nil {
		return err
	}
	w.sql.WriteString(" (")
	if err := w.Idents(s.Columns); err != nil {
		return err
	}
	w.sql.WriteByte(')')

	if s.Select != nil {
		if n := len(s.Select.Columns); len(s.Select.Unions) == 0 && !hasStar(s.Select.Columns) && n != len(s.Columns) {
			return Malformedf("columns and values length mismatch: %d != %d", len(s.Columns), n)
		}
		w.sql.WriteByte(' ')
		if err := w.selectStatement(s.Select); err != nil {
			return err
		}
	} else {
		w.sql.WriteString(" VALUES ")
		for i, row := range s.Rows {
			if i > 0 {
				w.sql.WriteString(", ")
			}
			if err := w.tuple(row); err != nil {
				return err
			}
		}
	}

	if s.OnConflict != nil {
		if !w.caps.Upsert {
			return w.unsupported("upsert", "use a separate UPDATE after a failed INSERT")
		}
		w.upsert = true
		err := w.d.WriteUpsert(w, s)
		w.upsert = false
		if err != nil {
			return err
		}
	}
	return w.returning(s.Returning)
}

func hasStar(cols []types.SelectExpr) bool {
	for _, c := range cols {
		if col, ok := c.Expr.(types.ColumnExpr); ok && col.Name == nil {
			return true
		}
	}
	return false
}

func (w *Writer) updateStatement(s *types.UpdateStatement) error {
	if s.Table.IsZero() {
		return Malformedf("UPDATE without table")
	}
	if len(s.Values) == 0 {
		return Malformedf("UPDATE without assignments")
	}
	w.sql.WriteString("UPDATE ")
	if err := w.Table(s.Table); err != nil {
		return err
	}
	w.sql.WriteString(" SET ")
	if err := w.Assignments(s.Values); err != nil {
		return err
	}
	if err := w.where("WHERE", s.Where); err != nil {
		return err
	}
	if err := w.mutationLimit("UPDATE", s.OrderBy, s.Limit); err != nil {
		return err
	}
	return w.returning(s.Returning)
}

func (w *Writer) deleteStatement(s *types.DeleteStatement) error {
	if s.Table.IsZero() {
		return Malformedf("DELETE without table")
	}
	w.sql.WriteString("DELETE FROM ")
	if err := w.Table(s.Table); err != nil {
		return err
	}
	if err := w.where("WHERE", s.Where); err != nil {
		return err
	}
	if err := w.mutationLimit("DELETE", s.OrderBy, s.Limit); err != nil {
		return err
	}
	return w.returning(s.Returning)
}

func (w *Writer) mutationLimit(verb string, order []types.OrderExpr, limit *uint64) error {
	if len(order) == 0 && limit == nil {
		return nil
	}
	if !w.caps.MutationLimit {
		return w.unsupported(verb+" with ORDER BY or LIMIT", "restrict rows with a sub-query in WHERE")
	}
	if err := w.orderBy(order); err != nil {
		return err
	}
	if limit != nil {
		w.writef(" LIMIT %d", *limit)
	}
	return nil
}

// WriteOnConflict writes the ON CONFLICT clause shared by PostgreSQL and SQLite.
func WriteOnConflict(w *Writer, s *types.InsertStatement) error {
	oc := s.OnConflict
	if len(oc.Targets) == 0 {
		return w.unsupported("ON CONFLICT without a conflict target", "name the unique columns")
	}
	w.sql.WriteString(" ON CONFLICT (")
	if err := w.Idents(oc.Targets); err != nil {
		return err
	}
	w.sql.WriteByte(')')
	if oc.Action == types.DoNothing {
		w.sql.WriteString(" DO NOTHING")
		return nil
	}
	if len(oc.Updates) == 0 {
		return Malformedf("DO UPDATE without assignments")
	}
	w.sql.WriteString(" DO UPDATE SET ")
	return w.Assignments(oc.Updates)
}

// WriteOnDuplicateKey writes MySQL's ON DUPLICATE KEY UPDATE. The conflict
// target is implied by the table's unique keys. DO NOTHING becomes a no-op
// assignment of the first inserted column.
func WriteOnDuplicateKey(w *Writer, s *types.InsertStatement) error {
	oc := s.OnConflict
	w.sql.WriteString(" ON DUPLICATE KEY UPDATE ")
	if oc.Action == types.DoNothing {
		q, err := w.quote(s.Columns[0])
		if err != nil {
			return err
		}
		w.sql.WriteString(q + " = " + q)
		return nil
	}
	if len(oc.Updates) == 0 {
		return Malformedf("DO UPDATE without assignments")
	}
	return w.Assignments(oc.Updates)
}
