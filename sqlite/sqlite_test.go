package sqlite

import (
	"errors"
	"testing"

	"github.com/zoobzio/sqltree"
)

type renderable interface {
	Render(sqltree.Renderer) (*sqltree.QueryResult, error)
}

func expectSQL(t *testing.T, b renderable, expected string) {
	t.Helper()
	result, err := b.Render(New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func expectError(t *testing.T, b renderable, target error) {
	t.Helper()
	_, err := b.Render(New())
	if !errors.Is(err, target) {
		t.Errorf("Render() error = %v, want %v", err, target)
	}
}

func TestRender_SimpleSelect(t *testing.T) {
	expectSQL(t,
		sqltree.Select("id").From("users").Where(sqltree.Col("age").Gte(18)),
		`SELECT "id" FROM "users" WHERE "age" >= ?`)
}

func TestRender_OffsetWithoutLimit(t *testing.T) {
	expectSQL(t, sqltree.Select().From("users").Offset(5), `SELECT * FROM "users" LIMIT -1 OFFSET 5`)
	expectSQL(t, sqltree.Select().From("users").Limit(3).Offset(5), `SELECT * FROM "users" LIMIT 3 OFFSET 5`)
}

func TestRender_Upsert(t *testing.T) {
	q := sqltree.Insert().Into("kv").
		Columns("k", "v").
		Values("a", "1").
		OnConflict("k").DoUpdate().SetExcluded("v").Build().
		Returning("k")
	expectSQL(t, q, `INSERT INTO "kv" ("k", "v") VALUES (?, ?) ON CONFLICT ("k") DO UPDATE SET "v" = excluded."v" RETURNING "k"`)
}

func TestRender_NullsOrdering(t *testing.T) {
	expectSQL(t,
		sqltree.Select().From("users").OrderByNulls("age", sqltree.Asc, sqltree.NullsFirst),
		`SELECT * FROM "users" ORDER BY "age" ASC NULLS FIRST`)
}

func TestRender_LockingUnsupported(t *testing.T) {
	expectError(t, sqltree.Select().From("users").ForUpdate(), sqltree.ErrUnsupportedFeature)
}

func TestRender_MutationLimitUnsupported(t *testing.T) {
	expectError(t, sqltree.Delete("logs").Limit(10), sqltree.ErrUnsupportedFeature)
}

func TestRender_Functions(t *testing.T) {
	expectSQL(t, sqltree.Select(sqltree.CharLength("name")).From("users"), `SELECT LENGTH("name") FROM "users"`)
	expectSQL(t, sqltree.Select(sqltree.Cast(sqltree.Col("age"), sqltree.TypeText())).From("users"), `SELECT CAST("age" AS TEXT) FROM "users"`)
	expectSQL(t, sqltree.Select(sqltree.Cast(sqltree.Col("age"), sqltree.TypeBigInt())).From("users"), `SELECT CAST("age" AS INTEGER) FROM "users"`)
}

func TestRenderInline(t *testing.T) {
	sql, err := sqltree.Select().From("users").
		Where(sqltree.Col("name").Eq("it's")).
		AndWhere(sqltree.Col("active").Eq(true)).
		AndWhere(sqltree.Col("avatar").Eq([]byte{0x01, 0xff})).
		RenderInline(New())
	if err != nil {
		t.Fatalf("RenderInline() error = %v", err)
	}
	expected := `SELECT * FROM "users" WHERE "name" = 'it''s' AND "active" = 1 AND "avatar" = X'01ff'`
	if sql != expected {
		t.Errorf("SQL = %q, want %q", sql, expected)
	}
}

func TestRender_CreateTable(t *testing.T) {
	q := sqltree.CreateTable("users").IfNotExists().
		Column(sqltree.NewColumn("id", sqltree.TypeBigInt()).PrimaryKey().AutoIncrement()).
		Column(sqltree.NewColumn("token", sqltree.TypeUUID()).NotNull()).
		Column(sqltree.NewColumn("active", sqltree.TypeBool()).Default(true))
	expectSQL(t, q,
		`CREATE TABLE IF NOT EXISTS "users" ("id" integer PRIMARY KEY AUTOINCREMENT, "token" text NOT NULL, "active" boolean DEFAULT 1)`)
}

func TestRender_AutoIncrementRequiresPrimaryKey(t *testing.T) {
	expectError(t,
		sqltree.CreateTable("t").Column(sqltree.NewColumn("id", sqltree.TypeInt()).AutoIncrement()),
		sqltree.ErrUnsupportedFeature)
}

func TestRender_AlterTable(t *testing.T) {
	expectSQL(t, sqltree.AlterTable("users").AddColumn(sqltree.NewColumn("bio", sqltree.TypeText())),
		`ALTER TABLE "users" ADD COLUMN "bio" text`)
	expectSQL(t, sqltree.AlterTable("users").RenameColumn("bio", "about"),
		`ALTER TABLE "users" RENAME COLUMN "bio" TO "about"`)

	expectError(t, sqltree.AlterTable("users").ModifyColumn(sqltree.NewColumn("bio", sqltree.TypeText())), sqltree.ErrUnsupportedFeature)
	expectError(t,
		sqltree.AlterTable("users").AddColumn(sqltree.NewColumn("a", sqltree.TypeInt())).DropColumn("b"),
		sqltree.ErrUnsupportedFeature)
}

func TestRender_DropTable(t *testing.T) {
	expectSQL(t, sqltree.DropTable("users").IfExists(), `DROP TABLE IF EXISTS "users"`)
	expectError(t, sqltree.DropTable("a", "b"), sqltree.ErrUnsupportedFeature)
	expectError(t, sqltree.DropTable("a").Cascade(), sqltree.ErrUnsupportedFeature)
}

func TestRender_Indexes(t *testing.T) {
	expectSQL(t, sqltree.CreateIndex("idx").On("users").Columns("email").Unique().IfNotExists(),
		`CREATE UNIQUE INDEX IF NOT EXISTS "idx" ON "users" ("email")`)
	expectSQL(t, sqltree.DropIndex("idx").IfExists(), `DROP INDEX IF EXISTS "idx"`)
	expectError(t, sqltree.CreateIndex("idx").On("users").Columns("email").Using(sqltree.IndexBTree), sqltree.ErrUnsupportedFeature)
}
