package sqltree

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Schema hands out table and column references checked against a DBML
// project. References to unknown tables or columns fail with an
// InvalidIdentifierError.
type Schema struct {
	project *dbml.Project
	// table -> column set
	tables map[string]map[string]struct{}
}

// NewSchema indexes the tables and columns of project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]map[string]struct{}),
	}
	for _, table := range project.Tables {
		cols := make(map[string]struct{}, len(table.Columns))
		for _, col := range table.Columns {
			cols[col.Name] = struct{}{}
		}
		s.tables[table.Name] = cols
	}
	return s, nil
}

// Project returns the DBML project the schema was built from.
func (s *Schema) Project() *dbml.Project { return s.project }

// HasTable reports whether the schema defines table.
func (s *Schema) HasTable(table string) bool {
	_, ok := s.tables[table]
	return ok
}

// HasColumn reports whether table defines column.
func (s *Schema) HasColumn(table, column string) bool {
	_, ok := s.tables[table][column]
	return ok
}

// TryT returns a reference to table, aliased if alias is given.
func (s *Schema) TryT(table string, alias ...string) (TableRef, error) {
	if !s.HasTable(table) {
		return TableRef{}, InvalidIdentifierError{Name: table, Reason: "table not found in schema"}
	}
	switch len(alias) {
	case 0:
		return TableRef{Name: Name(table)}, nil
	case 1:
		if alias[0] == "" {
			return TableRef{}, InvalidIdentifierError{Name: alias[0], Reason: "empty alias"}
		}
		return TableAs(table, alias[0]), nil
	}
	return TableRef{}, fmt.Errorf("only one alias allowed, got %d", len(alias))
}

// T is TryT that panics on error.
func (s *Schema) T(table string, alias ...string) TableRef {
	t, err := s.TryT(table, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF returns a column name defined by at least one table.
func (s *Schema) TryF(column string) (Name, error) {
	for _, cols := range s.tables {
		if _, ok := cols[column]; ok {
			return Name(column), nil
		}
	}
	return "", InvalidIdentifierError{Name: column, Reason: "column not found in schema"}
}

// F is TryF that panics on error.
func (s *Schema) F(column string) Name {
	f, err := s.TryF(column)
	if err != nil {
		panic(err)
	}
	return f
}

// TryC returns a column of table, qualified with qualifier if given (an
// alias), else with the table name.
func (s *Schema) TryC(table, column string, qualifier ...string) (Expr, error) {
	if !s.HasTable(table) {
		return Expr{}, InvalidIdentifierError{Name: table, Reason: "table not found in schema"}
	}
	if !s.HasColumn(table, column) {
		return Expr{}, InvalidIdentifierError{Name: table + "." + column, Reason: "column not found in schema"}
	}
	q := table
	if len(qualifier) > 0 {
		q = qualifier[0]
	}
	return TCol(q, column), nil
}

// C is TryC that panics on error.
func (s *Schema) C(table, column string, qualifier ...string) Expr {
	c, err := s.TryC(table, column, qualifier...)
	if err != nil {
		panic(err)
	}
	return c
}
