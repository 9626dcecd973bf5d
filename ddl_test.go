package sqltree_test

import (
	"testing"

	"github.com/zoobzio/sqltree"
	"github.com/zoobzio/sqltree/postgres"
	sqltesting "github.com/zoobzio/sqltree/testing"
)

func TestCreateTable(t *testing.T) {
	r := postgres.New()

	t.Run("columns", func(t *testing.T) {
		q := sqltree.CreateTable("users").IfNotExists().
			Column(sqltree.NewColumn("id", sqltree.TypeBigInt()).PrimaryKey().AutoIncrement()).
			Column(sqltree.NewColumn("email", sqltree.TypeVarchar(255)).NotNull().Unique()).
			Column(sqltree.NewColumn("active", sqltree.TypeBool()).NotNull().Default(true)).
			Column(sqltree.NewColumn("nickname", sqltree.TypeText()).Null().Default("it's")).
			Column(sqltree.NewColumn("balance", sqltree.TypeDecimal(10, 2)).Default(0)).
			Column(sqltree.NewColumn("created_at", sqltree.TypeTimestampTZ()).Default(sqltree.CurrentTimestamp()))
		sqltesting.AssertRender(t, r, q,
			`CREATE TABLE IF NOT EXISTS "users" (`+
				`"id" bigserial PRIMARY KEY, `+
				`"email" varchar(255) NOT NULL UNIQUE, `+
				`"active" boolean NOT NULL DEFAULT TRUE, `+
				`"nickname" text NULL DEFAULT 'it''s', `+
				`"balance" decimal(10, 2) DEFAULT 0, `+
				`"created_at" timestamp with time zone DEFAULT CURRENT_TIMESTAMP)`)
	})

	t.Run("expression default", func(t *testing.T) {
		q := sqltree.CreateTable("t").
			Column(sqltree.NewColumn("n", sqltree.TypeInt()).Default(sqltree.Val(1).Add(2)))
		sqltesting.AssertRender(t, r, q, `CREATE TABLE "t" ("n" integer DEFAULT (1 + 2))`)
	})

	t.Run("keys", func(t *testing.T) {
		q := sqltree.CreateTable("posts").
			Column(sqltree.NewColumn("id", sqltree.TypeInt())).
			Column(sqltree.NewColumn("user_id", sqltree.TypeInt())).
			PrimaryKey("id").
			ForeignKey(sqltree.NewForeignKey().
				Name("fk_posts_user").
				Columns("user_id").
				References("users", "id").
				OnDelete(sqltree.Cascade).
				OnUpdate(sqltree.NoAction))
		sqltesting.AssertRender(t, r, q,
			`CREATE TABLE "posts" ("id" integer, "user_id" integer, PRIMARY KEY ("id"), `+
				`CONSTRAINT "fk_posts_user" FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE CASCADE ON UPDATE NO ACTION)`)
	})

	t.Run("custom type", func(t *testing.T) {
		q := sqltree.CreateTable("docs").Column(sqltree.NewColumn("body", sqltree.TypeCustom("tsvector")))
		sqltesting.AssertRender(t, r, q, `CREATE TABLE "docs" ("body" tsvector)`)
	})
}

func TestCreateTableErrors(t *testing.T) {
	r := postgres.New()

	t.Run("foreign key arity", func(t *testing.T) {
		q := sqltree.CreateTable("posts").
			Column(sqltree.NewColumn("a", sqltree.TypeInt())).
			ForeignKey(sqltree.NewForeignKey().Columns("a", "b").References("users", "id"))
		sqltesting.AssertErrorIs(t, q.Err(), sqltree.ErrMalformed)
	})

	t.Run("no columns", func(t *testing.T) {
		_, err := sqltree.CreateTable("t").Render(r)
		sqltesting.AssertErrorIs(t, err, sqltree.ErrMalformed)
	})

	t.Run("auto increment on text", func(t *testing.T) {
		_, err := sqltree.CreateTable("t").Column(sqltree.NewColumn("id", sqltree.TypeText()).AutoIncrement()).Render(r)
		sqltesting.AssertErrorIs(t, err, sqltree.ErrMalformed)
	})

	t.Run("unset type", func(t *testing.T) {
		_, err := sqltree.CreateTable("t").Column(sqltree.NewColumn("id", sqltree.ColumnType{})).Render(r)
		sqltesting.AssertErrorIs(t, err, sqltree.ErrMalformed)
	})
}

func TestAlterTable(t *testing.T) {
	r := postgres.New()

	tests := []struct {
		name  string
		query *sqltree.AlterTableBuilder
		sql   string
	}{
		{
			"add column",
			sqltree.AlterTable("users").AddColumn(sqltree.NewColumn("bio", sqltree.TypeText())),
			`ALTER TABLE "users" ADD COLUMN "bio" text`,
		},
		{
			"several changes",
			sqltree.AlterTable("users").
				AddColumn(sqltree.NewColumn("bio", sqltree.TypeText())).
				DropColumn("legacy"),
			`ALTER TABLE "users" ADD COLUMN "bio" text, DROP COLUMN "legacy"`,
		},
		{
			"modify column",
			sqltree.AlterTable("users").ModifyColumn(sqltree.NewColumn("age", sqltree.TypeBigInt()).NotNull()),
			`ALTER TABLE "users" ALTER COLUMN "age" TYPE bigint, ALTER COLUMN "age" SET NOT NULL`,
		},
		{
			"rename column",
			sqltree.AlterTable("users").RenameColumn("name", "full_name"),
			`ALTER TABLE "users" RENAME COLUMN "name" TO "full_name"`,
		},
		{
			"rename table",
			sqltree.AlterTable("users").RenameTo("accounts"),
			`ALTER TABLE "users" RENAME TO "accounts"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqltesting.AssertRender(t, r, tt.query, tt.sql)
		})
	}

	t.Run("rename with other changes", func(t *testing.T) {
		_, err := sqltree.AlterTable("users").DropColumn("a").RenameTo("b").Render(r)
		sqltesting.AssertErrorIs(t, err, sqltree.ErrUnsupportedFeature)
	})

	t.Run("no changes", func(t *testing.T) {
		_, err := sqltree.AlterTable("users").Render(r)
		sqltesting.AssertErrorIs(t, err, sqltree.ErrMalformed)
	})
}

func TestDropTable(t *testing.T) {
	r := postgres.New()

	sqltesting.AssertRender(t, r, sqltree.DropTable("a", "b").IfExists().Cascade(), `DROP TABLE IF EXISTS "a", "b" CASCADE`)
	sqltesting.AssertRender(t, r, sqltree.DropTable("a").Restrict(), `DROP TABLE "a" RESTRICT`)

	_, err := sqltree.DropTable().Render(r)
	sqltesting.AssertErrorIs(t, err, sqltree.ErrMalformed)
}

func TestIndexes(t *testing.T) {
	r := postgres.New()

	tests := []struct {
		name  string
		query interface {
			Render(sqltree.Renderer) (*sqltree.QueryResult, error)
		}
		sql string
	}{
		{
			"unique if not exists",
			sqltree.CreateIndex("idx_users_email").On("users").Columns("email").Unique().IfNotExists(),
			`CREATE UNIQUE INDEX IF NOT EXISTS "idx_users_email" ON "users" ("email")`,
		},
		{
			"method and order",
			sqltree.CreateIndex("idx_docs").On("docs").Using(sqltree.IndexGIN).Column("body", sqltree.Asc).Column("created_at", sqltree.Desc),
			`CREATE INDEX "idx_docs" ON "docs" USING GIN ("body" ASC, "created_at" DESC)`,
		},
		{
			"drop",
			sqltree.DropIndex("idx_users_email").IfExists(),
			`DROP INDEX IF EXISTS "idx_users_email"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqltesting.AssertRender(t, r, tt.query, tt.sql)
		})
	}

	t.Run("no columns", func(t *testing.T) {
		_, err := sqltree.CreateIndex("idx").On("t").Render(r)
		sqltesting.AssertErrorIs(t, err, sqltree.ErrMalformed)
	})
}
