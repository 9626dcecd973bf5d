package render

import "github.com/zoobzio/sqltree/internal/types"

// RowLockingLevel indicates the level of row-level locking support.
type RowLockingLevel int

const (
	RowLockingNone  RowLockingLevel = iota // No row locking
	RowLockingBasic                        // FOR UPDATE, FOR SHARE
	RowLockingFull                         // + FOR NO KEY UPDATE, FOR KEY SHARE
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	AddColumnKeyword string              // "ADD COLUMN" or "ADD"
	IndexMethods     []types.IndexMethod // accepted USING methods
	RowLocking       RowLockingLevel     // FOR UPDATE/SHARE support

	Returning     bool // RETURNING clause
	Upsert        bool // ON CONFLICT / ON DUPLICATE KEY
	NullsOrdering bool // NULLS FIRST / NULLS LAST; emulated when false
	RightJoin     bool
	FullJoin      bool
	MutationLimit bool // ORDER BY / LIMIT on UPDATE and DELETE

	CreateTableIfNotExists  bool
	CreateIndexIfNotExists  bool
	IndexMethodAfterColumns bool // MySQL puts USING after the column list
	DropIndexIfExists       bool
	DropIndexOnTable        bool // DROP INDEX name ON table
	DropMultipleTables      bool
	DropBehavior            bool // CASCADE / RESTRICT
	RenameColumn            bool
	RenameTable             bool
	MultipleAlterOptions    bool
	ExclusiveRename         bool // a rename cannot share an ALTER TABLE with other options
}
