package dbexec

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/zoobzio/sqltree"
	"github.com/zoobzio/sqltree/mariadb"
	"github.com/zoobzio/sqltree/mssql"
	"github.com/zoobzio/sqltree/mysql"
	"github.com/zoobzio/sqltree/postgres"
	"github.com/zoobzio/sqltree/sqlite"
)

var renderers = map[string]func() sqltree.Renderer{
	"postgres":    func() sqltree.Renderer { return postgres.New() },
	"cockroachdb": func() sqltree.Renderer { return postgres.NewCockroach() },
	"mysql":       func() sqltree.Renderer { return mysql.New() },
	"mariadb":     func() sqltree.Renderer { return mariadb.New() },
	"sqlite":      func() sqltree.Renderer { return sqlite.New() },
	"sqlserver":   func() sqltree.Renderer { return mssql.New() },
}

var aliases = map[string]string{
	"postgresql": "postgres",
	"pgx":        "postgres",
	"cockroach":  "cockroachdb",
	"sqlite3":    "sqlite",
	"mssql":      "sqlserver",
}

// Dialect returns the renderer registered under name. Matching is
// case-insensitive and accepts common driver aliases.
func Dialect(name string) (sqltree.Renderer, error) {
	key, err := canonical(name)
	if err != nil {
		return nil, err
	}
	return renderers[key](), nil
}

// Dialects lists the canonical dialect names in sorted order.
func Dialects() []string {
	return slices.Sorted(maps.Keys(renderers))
}

func canonical(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if _, ok := renderers[key]; !ok {
		return "", fmt.Errorf("unknown dialect %q (known: %s)", name, strings.Join(Dialects(), ", "))
	}
	return key, nil
}
