package render

import (
	"slices"

	"github.com/zoobzio/sqltree/internal/types"
)

func (w *Writer) createTable(s *types.CreateTableStatement) error {
	if s.Table.IsZero() || s.Table.SubQuery != nil {
		return Malformedf("CREATE TABLE without table name")
	}
	if len(s.Columns) == 0 {
		return Malformedf("CREATE TABLE without columns")
	}
	w.sql.WriteString("CREATE TABLE ")
	if s.IfNotExists {
		if !w.caps.CreateTableIfNotExists {
			return w.unsupported("CREATE TABLE IF NOT EXISTS")
		}
		w.sql.WriteString("IF NOT EXISTS ")
	}
	if err := w.Table(s.Table); err != nil {
		return err
	}
	w.sql.WriteString(" (")
	for i, col := range s.Columns {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.ColumnDef(col); err != nil {
			return err
		}
	}
	if len(s.PrimaryKey) > 0 {
		w.sql.WriteString(", PRIMARY KEY (")
		if err := w.Idents(s.PrimaryKey); err != nil {
			return err
		}
		w.sql.WriteByte(')')
	}
	for _, fk := range s.ForeignKeys {
		w.sql.WriteString(", ")
		if err := w.foreignKey(fk); err != nil {
			return err
		}
	}
	w.sql.WriteByte(')')
	return nil
}

// ColumnDef writes a column definition:
// name type [NULL|NOT NULL] [DEFAULT x] [PRIMARY KEY] [auto-increment] [UNIQUE] [extra].
func (w *Writer) ColumnDef(col types.ColumnDef) error {
	if err := w.Ident(col.Name); err != nil {
		return err
	}
	typ, err := w.d.ColumnType(col.Type)
	if err != nil {
		return err
	}
	var autoKeyword string
	if col.AutoIncrement {
		override, keyword, err := w.d.AutoIncrement(col)
		if err != nil {
			return err
		}
		if override != "" {
			typ = override
		}
		autoKeyword = keyword
	}
	w.sql.WriteByte(' ')
	w.sql.WriteString(typ)

	switch col.Null {
	case types.Nullable:
		w.sql.WriteString(" NULL")
	case types.NotNullable:
		w.sql.WriteString(" NOT NULL")
	}
	if col.Default != nil {
		w.sql.WriteString(" DEFAULT ")
		if err := w.DefaultExpr(col.Default); err != nil {
			return err
		}
	}
	if col.PrimaryKey {
		w.sql.WriteString(" PRIMARY KEY")
	}
	if autoKeyword != "" {
		w.sql.WriteByte(' ')
		w.sql.WriteString(autoKeyword)
	}
	if col.Unique {
		w.sql.WriteString(" UNIQUE")
	}
	if col.Extra != "" {
		w.sql.WriteByte(' ')
		w.sql.WriteString(col.Extra)
	}
	return nil
}

// DefaultExpr writes a column default with every value inlined; DDL cannot
// carry bindings. Anything other than a literal or keyword is parenthesized.
func (w *Writer) DefaultExpr(e types.Expr) error {
	inline := w.inline
	w.inline = true
	defer func() { w.inline = inline }()
	switch e.(type) {
	case types.ValueExpr, types.KeywordExpr:
		return w.Expr(e)
	}
	return w.paren(e)
}

func (w *Writer) foreignKey(fk types.ForeignKey) error {
	if len(fk.Columns) == 0 {
		return Malformedf("foreign key without columns")
	}
	if len(fk.Columns) != len(fk.RefColumns) {
		return Malformedf("foreign key columns and referenced columns length mismatch: %d != %d", len(fk.Columns), len(fk.RefColumns))
	}
	if fk.Name != nil {
		w.sql.WriteString("CONSTRAINT ")
		if err := w.Ident(fk.Name); err != nil {
			return err
		}
		w.sql.WriteByte(' ')
	}
	w.sql.WriteString("FOREIGN KEY (")
	if err := w.Idents(fk.Columns); err != nil {
		return err
	}
	w.sql.WriteString(") REFERENCES ")
	if err := w.Table(fk.RefTable); err != nil {
		return err
	}
	w.sql.WriteString(" (")
	if err := w.Idents(fk.RefColumns); err != nil {
		return err
	}
	w.sql.WriteByte(')')
	if fk.OnDelete != types.ActionNone {
		w.sql.WriteString(" ON DELETE " + fk.OnDelete.String())
	}
	if fk.OnUpdate != types.ActionNone {
		w.sql.WriteString(" ON UPDATE " + fk.OnUpdate.String())
	}
	return nil
}

func (w *Writer) alterTable(s *types.AlterTableStatement) error {
	if s.Table.IsZero() || s.Table.SubQuery != nil {
		return Malformedf("ALTER TABLE without table name")
	}
	if len(s.Options) == 0 {
		return Malformedf("ALTER TABLE without changes")
	}
	if len(s.Options) > 1 {
		if !w.caps.MultipleAlterOptions {
			return w.unsupported("multiple ALTER TABLE options", "issue one ALTER TABLE per change")
		}
		if w.caps.ExclusiveRename && slices.ContainsFunc(s.Options, isRename) {
			return w.unsupported("RENAME combined with other ALTER TABLE options", "issue the rename separately")
		}
	}
	w.sql.WriteString("ALTER TABLE ")
	if err := w.Table(s.Table); err != nil {
		return err
	}
	w.sql.WriteByte(' ')
	for i, opt := range s.Options {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.alterOption(opt); err != nil {
			return err
		}
	}
	return nil
}

func isRename(opt types.AlterOption) bool {
	switch opt.(type) {
	case types.RenameColumn, types.RenameTable:
		return true
	}
	return false
}

func (w *Writer) alterOption(opt types.AlterOption) error {
	switch o := opt.(type) {
	case types.AddColumn:
		w.sql.WriteString(w.caps.AddColumnKeyword)
		w.sql.WriteByte(' ')
		return w.ColumnDef(o.Column)
	case types.ModifyColumn:
		return w.d.WriteModifyColumn(w, o.Column)
	case types.RenameColumn:
		if !w.caps.RenameColumn {
			return w.unsupported("RENAME COLUMN")
		}
		w.sql.WriteString("RENAME COLUMN ")
		if err := w.Ident(o.From); err != nil {
			return err
		}
		w.sql.WriteString(" TO ")
		return w.Ident(o.To)
	case types.DropColumn:
		w.sql.WriteString("DROP COLUMN ")
		return w.Ident(o.Name)
	case types.RenameTable:
		if !w.caps.RenameTable {
			return w.unsupported("RENAME TO")
		}
		w.sql.WriteString("RENAME TO ")
		return w.Ident(o.To)
	}
	return Malformedf("unknown ALTER TABLE option %T", opt)
}

func (w *Writer) dropTable(s *types.DropTableStatement) error {
	if len(s.Tables) == 0 {
		return Malformedf("DROP TABLE without tables")
	}
	if len(s.Tables) > 1 && !w.caps.DropMultipleTables {
		return w.unsupported("DROP TABLE with several tables", "issue one DROP TABLE per table")
	}
	w.sql.WriteString("DROP TABLE ")
	if s.IfExists {
		w.sql.WriteString("IF EXISTS ")
	}
	for i, t := range s.Tables {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if t.SubQuery != nil || t.Alias != nil {
			return Malformedf("DROP TABLE takes plain table names")
		}
		if err := w.Table(t); err != nil {
			return err
		}
	}
	switch s.Behavior {
	case types.DropCascade, types.DropRestrict:
		if !w.caps.DropBehavior {
			return w.unsupported("DROP TABLE CASCADE/RESTRICT")
		}
		if s.Behavior == types.DropCascade {
			w.sql.WriteString(" CASCADE")
		} else {
			w.sql.WriteString(" RESTRICT")
		}
	}
	return nil
}

func (w *Writer) createIndex(s *types.CreateIndexStatement) error {
	if s.Name == nil {
		return Malformedf("CREATE INDEX without name")
	}
	if s.Table.IsZero() || s.Table.SubQuery != nil {
		return Malformedf("CREATE INDEX without table")
	}
	if len(s.Columns) == 0 {
		return Malformedf("CREATE INDEX without columns")
	}
	if s.Method != types.IndexDefault && !slices.Contains(w.caps.IndexMethods, s.Method) {
		return w.unsupported("index method " + string(s.Method))
	}
	w.sql.WriteString("CREATE ")
	if s.Unique {
		w.sql.WriteString("UNIQUE ")
	}
	w.sql.WriteString("INDEX ")
	if s.IfNotExists {
		if !w.caps.CreateIndexIfNotExists {
			return w.unsupported("CREATE INDEX IF NOT EXISTS")
		}
		w.sql.WriteString("IF NOT EXISTS ")
	}
	if err := w.Ident(s.Name); err != nil {
		return err
	}
	w.sql.WriteString(" ON ")
	if err := w.Table(s.Table); err != nil {
		return err
	}
	if s.Method != types.IndexDefault && !w.caps.IndexMethodAfterColumns {
		w.sql.WriteString(" USING " + string(s.Method))
	}
	w.sql.WriteString(" (")
	for i, c := range s.Columns {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		if err := w.Ident(c.Name); err != nil {
			return err
		}
		if c.Order != nil {
			w.sql.WriteByte(' ')
			w.sql.WriteString(c.Order.String())
		}
	}
	w.sql.WriteByte(')')
	if s.Method != types.IndexDefault && w.caps.IndexMethodAfterColumns {
		w.sql.WriteString(" USING " + string(s.Method))
	}
	return nil
}

func (w *Writer) dropIndex(s *types.DropIndexStatement) error {
	if s.Name == nil {
		return Malformedf("DROP INDEX without name")
	}
	w.sql.WriteString("DROP INDEX ")
	if s.IfExists {
		if !w.caps.DropIndexIfExists {
			return w.unsupported("DROP INDEX IF EXISTS")
		}
		w.sql.WriteString("IF EXISTS ")
	}
	if err := w.Ident(s.Name); err != nil {
		return err
	}
	if w.caps.DropIndexOnTable {
		if s.Table.IsZero() {
			return Malformedf("DROP INDEX requires the table in %s", w.d.Name())
		}
		w.sql.WriteString(" ON ")
		return w.Table(s.Table)
	}
	return nil
}
