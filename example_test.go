package sqltree_test

import (
	"fmt"

	"github.com/zoobzio/sqltree"
	"github.com/zoobzio/sqltree/mysql"
	"github.com/zoobzio/sqltree/postgres"
)

func ExampleUpdate() {
	stmt := sqltree.Update("users").
		Set("name", "bob").
		Where(sqltree.Col("id").In(1, 2, 3))

	result := stmt.MustRender(postgres.New())
	fmt.Println(result.SQL)
	fmt.Println(len(result.Args))

	// Output:
	// UPDATE "users" SET "name" = $1 WHERE "id" IN ($2, $3, $4)
	// 4
}

func ExampleSelectBuilder_Render() {
	q := sqltree.Select().From("a").
		FullJoin("b", sqltree.TCol("a", "id").Eq(sqltree.TCol("b", "id")))

	result, err := q.Render(postgres.New())
	fmt.Println(result.SQL, err)

	_, err = q.Render(mysql.New())
	fmt.Println(err != nil)

	// Output:
	// SELECT * FROM "a" FULL OUTER JOIN "b" ON "a"."id" = "b"."id" <nil>
	// true
}
