package schemadoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/sqltree"
	"github.com/zoobzio/sqltree/dbexec"
	"github.com/zoobzio/sqltree/mssql"
	"github.com/zoobzio/sqltree/postgres"
)

const blog = `
tables:
  - name: users
    columns:
      - {name: id, type: bigint, primary_key: true, auto_increment: true}
      - {name: email, type: varchar(255), nullable: false, unique: true}
      - {name: created_at, type: timestamptz, default: CURRENT_TIMESTAMP}
  - name: posts
    if_not_exists: true
    columns:
      - {name: id, type: bigint, primary_key: true, auto_increment: true}
      - {name: user_id, type: bigint, nullable: false}
      - {name: title, type: text, default: untitled}
      - {name: published, type: bool, default: false}
      - {name: score, type: "decimal(5, 2)", default: 0}
      - {name: slug, type: text, default_sql: "lower('x')"}
    foreign_keys:
      - columns: user_id
        references: {table: users, columns: id}
        on_delete: cascade
    indexes:
      - {name: idx_posts_user, columns: [user_id, published desc]}
      - {name: idx_posts_title, columns: title, unique: true, using: btree}
`

func render(t *testing.T, r sqltree.Renderer, stmts []dbexec.Statement) []string {
	t.Helper()
	out := make([]string, len(stmts))
	for i, s := range stmts {
		res, err := s.Render(r)
		require.NoError(t, err)
		assert.Empty(t, res.Args)
		out[i] = res.SQL
	}
	return out
}

func TestStatements(t *testing.T) {
	doc, err := Parse(strings.NewReader(blog))
	require.NoError(t, err)

	stmts, err := doc.Statements()
	require.NoError(t, err)

	assert.Equal(t, []string{
		`CREATE TABLE "users" ("id" bigserial PRIMARY KEY, "email" varchar(255) NOT NULL UNIQUE, "created_at" timestamp with time zone DEFAULT CURRENT_TIMESTAMP)`,
		`CREATE TABLE IF NOT EXISTS "posts" ("id" bigserial PRIMARY KEY, "user_id" bigint NOT NULL, "title" text DEFAULT 'untitled', "published" boolean DEFAULT FALSE, "score" decimal(5, 2) DEFAULT 0, "slug" text DEFAULT (lower('x')), FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE CASCADE)`,
		`CREATE INDEX "idx_posts_user" ON "posts" ("user_id", "published" DESC)`,
		`CREATE UNIQUE INDEX "idx_posts_title" ON "posts" USING BTREE ("title")`,
	}, render(t, postgres.New(), stmts))
}

func TestDropStatements(t *testing.T) {
	doc, err := Parse(strings.NewReader(blog))
	require.NoError(t, err)

	assert.Equal(t, []string{
		`DROP TABLE IF EXISTS "posts"`,
		`DROP TABLE IF EXISTS "users"`,
	}, render(t, postgres.New(), doc.DropStatements()))
}

func TestStatementsDialectErrors(t *testing.T) {
	doc, err := Parse(strings.NewReader(blog))
	require.NoError(t, err)
	stmts, err := doc.Statements()
	require.NoError(t, err)

	// posts uses IF NOT EXISTS, which SQL Server lacks.
	_, err = stmts[1].Render(mssql.New())
	assert.ErrorIs(t, err, sqltree.ErrUnsupportedFeature)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"empty":        ``,
		"no tables":    `tables: []`,
		"unknown key":  "tables:\n  - name: t\n    colums: []\n",
		"bad list":     "tables:\n  - name: t\n    primary_key: {a: b}\n",
		"wrong syntax": "tables: [",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			assert.Error(t, err)
		})
	}

	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoTables)
}

func TestStatementsErrors(t *testing.T) {
	tests := map[string]struct {
		src  string
		want string
	}{
		"missing type": {
			src:  "tables:\n  - name: t\n    columns:\n      - {name: a}\n",
			want: `table "t": column "a": missing type`,
		},
		"both defaults": {
			src:  "tables:\n  - name: t\n    columns:\n      - {name: a, type: int, default: 1, default_sql: '1'}\n",
			want: "mutually exclusive",
		},
		"bad action": {
			src:  "tables:\n  - name: t\n    columns:\n      - {name: a, type: int}\n    foreign_keys:\n      - {columns: a, references: {table: u, columns: id}, on_delete: explode}\n",
			want: `unknown referential action "explode"`,
		},
		"bad index column": {
			src:  "tables:\n  - name: t\n    columns:\n      - {name: a, type: int}\n    indexes:\n      - {name: i, columns: a sideways}\n",
			want: `invalid index column "a sideways"`,
		},
		"nameless table": {
			src:  "tables:\n  - columns:\n      - {name: a, type: int}\n",
			want: "missing name",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.src))
			require.NoError(t, err)
			_, err = doc.Statements()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]sqltree.ColumnType{
		"int":                      sqltree.TypeInt(),
		"BIGINT":                   sqltree.TypeBigInt(),
		"varchar":                  sqltree.TypeString(),
		"varchar(64)":              sqltree.TypeVarchar(64),
		"character varying (10)":   sqltree.TypeVarchar(10),
		"char":                     sqltree.TypeChar(1),
		"char(36)":                 sqltree.TypeChar(36),
		"numeric(12,4)":            sqltree.TypeDecimal(12, 4),
		"varbinary(16)":            sqltree.TypeVarbinary(16),
		"timestamp with time zone": sqltree.TypeTimestampTZ(),
		"jsonb":                    sqltree.TypeJSONB(),
		"uuid":                     sqltree.TypeUUID(),
		"tsvector":                 sqltree.TypeCustom("tsvector"),
		"int(11)":                  sqltree.TypeCustom("int(11)"),
		"geometry(Point, 4326)":    sqltree.TypeCustom("geometry(Point, 4326)"),
	}
	for in, want := range tests {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "decimal", "varbinary"} {
		_, err := ParseType(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAction(t *testing.T) {
	tests := map[string]sqltree.ForeignKeyAction{
		"":            0,
		"cascade":     sqltree.Cascade,
		"SET  NULL":   sqltree.SetNull,
		"set default": sqltree.SetDefault,
		"No Action":   sqltree.NoAction,
		"restrict":    sqltree.Restrict,
	}
	for in, want := range tests {
		got, err := ParseAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(blog), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Tables, 2)
	assert.Equal(t, "posts", doc.Tables[1].Name)
	assert.Len(t, doc.Tables[1].Indexes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
