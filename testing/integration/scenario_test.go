package integration

import (
	"context"
	"database/sql"
	"slices"
	"testing"

	"github.com/zoobzio/sqltree"
	"github.com/zoobzio/sqltree/dbexec"
)

// resetSchema drops and recreates the users and posts tables.
func resetSchema(ctx context.Context, t *testing.T, db *dbexec.DB) {
	t.Helper()

	err := db.ExecAll(ctx,
		sqltree.DropTable("posts").IfExists(),
		sqltree.DropTable("users").IfExists(),
		sqltree.CreateTable("users").
			Column(sqltree.NewColumn("id", sqltree.TypeBigInt()).PrimaryKey()).
			Column(sqltree.NewColumn("name", sqltree.TypeVarchar(100)).NotNull()).
			Column(sqltree.NewColumn("age", sqltree.TypeInt()).Null()).
			Column(sqltree.NewColumn("active", sqltree.TypeBool()).NotNull().Default(true)),
		sqltree.CreateTable("posts").
			Column(sqltree.NewColumn("id", sqltree.TypeBigInt()).PrimaryKey()).
			Column(sqltree.NewColumn("user_id", sqltree.TypeBigInt()).NotNull()).
			Column(sqltree.NewColumn("title", sqltree.TypeVarchar(200)).NotNull()).
			Column(sqltree.NewColumn("views", sqltree.TypeInt()).NotNull().Default(0)).
			ForeignKey(sqltree.NewForeignKey().
				Columns("user_id").
				References("users", "id").
				OnDelete(sqltree.Cascade)),
		sqltree.CreateIndex("idx_posts_user").On("posts").Columns("user_id"),
	)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
}

// seed inserts three users and three posts.
func seed(ctx context.Context, t *testing.T, db *dbexec.DB) {
	t.Helper()

	err := db.ExecAll(ctx,
		sqltree.Insert().Into("users").Columns("id", "name", "age", "active").
			Values(1, "alice", 30, true).
			Values(2, "bob", nil, false).
			Values(3, "carol", 25, true),
		sqltree.Insert().Into("posts").Columns("id", "user_id", "title", "views").
			Values(1, 1, "Hello", 100).
			Values(2, 1, "Alice's second post", 50).
			Values(3, 3, "Carol writes", 75),
	)
	if err != nil {
		t.Fatalf("Failed to seed data: %v", err)
	}
}

func queryStrings(ctx context.Context, t *testing.T, db *dbexec.DB, q *sqltree.SelectBuilder) []string {
	t.Helper()
	rows, err := db.Query(ctx, q)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	return out
}

func queryInt(ctx context.Context, t *testing.T, db *dbexec.DB, q *sqltree.SelectBuilder) int64 {
	t.Helper()
	row, err := db.QueryRow(ctx, q)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var n sql.NullInt64
	if err := row.Scan(&n); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return n.Int64
}

func affected(t *testing.T, res sql.Result, err error) int64 {
	t.Helper()
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		t.Fatalf("RowsAffected failed: %v", err)
	}
	return n
}

func expectStrings(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

// runScenario exercises the portable subset of the builder against db.
func runScenario(t *testing.T, db *dbexec.DB) {
	ctx := context.Background()
	resetSchema(ctx, t, db)
	seed(ctx, t, db)

	t.Run("where", func(t *testing.T) {
		got := queryStrings(ctx, t, db, sqltree.Select("name").From("users").
			Where(sqltree.Col("active").Eq(true).And(sqltree.Col("age").Gte(18))).
			OrderBy("name", sqltree.Asc))
		expectStrings(t, got, []string{"alice", "carol"})
	})

	t.Run("null and in", func(t *testing.T) {
		got := queryStrings(ctx, t, db, sqltree.Select("name").From("users").
			Where(sqltree.Col("age").IsNull().Or(sqltree.Col("id").In(3, 4, 5))).
			OrderBy("id", sqltree.Asc))
		expectStrings(t, got, []string{"bob", "carol"})
	})

	t.Run("between and like", func(t *testing.T) {
		got := queryStrings(ctx, t, db, sqltree.Select("title").From("posts").
			Where(sqltree.Col("views").Between(60, 120).And(sqltree.Col("title").Like("%e%"))).
			OrderBy("views", sqltree.Desc))
		expectStrings(t, got, []string{"Hello", "Carol writes"})
	})

	t.Run("pagination", func(t *testing.T) {
		got := queryStrings(ctx, t, db, sqltree.Select("name").From("users").
			OrderBy("id", sqltree.Asc).Limit(2).Offset(1))
		expectStrings(t, got, []string{"bob", "carol"})
	})

	t.Run("join and aggregate", func(t *testing.T) {
		got := queryStrings(ctx, t, db, sqltree.Select(sqltree.TCol("u", "name")).
			From(sqltree.TableAs("users", "u")).
			InnerJoin(sqltree.TableAs("posts", "p"), sqltree.TCol("p", "user_id").Eq(sqltree.TCol("u", "id"))).
			GroupBy(sqltree.TCol("u", "name")).
			Having(sqltree.Sum(sqltree.TCol("p", "views")).Gt(100)).
			OrderBy(sqltree.TCol("u", "name"), sqltree.Asc))
		expectStrings(t, got, []string{"alice"})
	})

	t.Run("sub-query", func(t *testing.T) {
		got := queryStrings(ctx, t, db, sqltree.Select("name").From("users").
			Where(sqltree.Col("id").In(sqltree.SubQuery(
				sqltree.Select("user_id").From("posts").Where(sqltree.Col("views").Lt(60))))))
		expectStrings(t, got, []string{"alice"})
	})

	t.Run("update with expression", func(t *testing.T) {
		n := affected(t, db.Exec(ctx, sqltree.Update("users").
			Set("age", sqltree.Col("age").Add(1)).
			Where(sqltree.Col("name").Eq("alice"))))
		if n != 1 {
			t.Errorf("RowsAffected = %d, want 1", n)
		}
		age := queryInt(ctx, t, db, sqltree.Select("age").From("users").Where(sqltree.Col("id").Eq(1)))
		if age != 31 {
			t.Errorf("age = %d, want 31", age)
		}
	})

	t.Run("quoting survives awkward values", func(t *testing.T) {
		title := `it's a "quoted" \ title`
		affected(t, db.Exec(ctx, sqltree.Insert().Into("posts").
			Columns("id", "user_id", "title").Values(4, 2, title)))
		got := queryStrings(ctx, t, db, sqltree.Select("title").From("posts").Where(sqltree.Col("id").Eq(4)))
		expectStrings(t, got, []string{title})
	})

	t.Run("delete cascades", func(t *testing.T) {
		n := affected(t, db.Exec(ctx, sqltree.Delete("users").Where(sqltree.Col("active").Eq(false))))
		if n != 1 {
			t.Errorf("RowsAffected = %d, want 1", n)
		}
		count := queryInt(ctx, t, db, sqltree.Select(sqltree.Count()).From("users"))
		if count != 2 {
			t.Errorf("COUNT(*) = %d, want 2", count)
		}
	})

	t.Run("alter table", func(t *testing.T) {
		affected(t, db.Exec(ctx, sqltree.AlterTable("users").
			AddColumn(sqltree.NewColumn("nickname", sqltree.TypeVarchar(50)).Null())))
		affected(t, db.Exec(ctx, sqltree.Update("users").Set("nickname", "cc").Where(sqltree.Col("id").Eq(3))))
		got := queryStrings(ctx, t, db, sqltree.Select("nickname").From("users").Where(sqltree.Col("nickname").IsNotNull()))
		expectStrings(t, got, []string{"cc"})
	})

	if db.Stats().Errors.Load() != 0 {
		t.Errorf("statement errors = %d, want 0", db.Stats().Errors.Load())
	}
}
