package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/sqltree/dbexec"
	"github.com/zoobzio/sqltree/internal/schemadoc"
)

func newDDLCmd(a *app) *cobra.Command {
	var apply, drop bool
	cmd := &cobra.Command{
		Use:   "ddl <schema.yaml>",
		Short: "Print or apply the DDL for a schema document",
		Example: `  # Print PostgreSQL DDL
  sqltree ddl schema.yaml

  # Print SQLite DDL that drops every table
  sqltree ddl --dialect sqlite --drop schema.yaml

  # Create the tables in a MySQL database
  sqltree ddl --dialect mysql --dsn 'app:secret@tcp(localhost:3306)/app' --apply schema.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schemadoc.Load(args[0])
			if err != nil {
				return fail(exitSchemaDoc, "reading schema document", err)
			}
			stmts := doc.DropStatements()
			if !drop {
				stmts, err = doc.Statements()
				if err != nil {
					return fail(exitSchemaDoc, "invalid schema document", err)
				}
			}
			if apply {
				return applyDDL(cmd, a.cfg, stmts)
			}
			return printDDL(cmd, a.cfg, stmts)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&apply, "apply", false, "execute the statements instead of printing them")
	f.BoolVar(&drop, "drop", false, "drop the tables instead of creating them")
	return cmd
}

func printDDL(cmd *cobra.Command, cfg *dbexec.Config, stmts []dbexec.Statement) error {
	r, err := dbexec.Dialect(cfg.Dialect)
	if err != nil {
		return fail(exitConfig, "selecting dialect", err)
	}
	out := cmd.OutOrStdout()
	for i, stmt := range stmts {
		res, err := stmt.Render(r)
		if err != nil {
			return fail(exitFailed, fmt.Sprintf("rendering statement %d", i+1), err)
		}
		fmt.Fprintf(out, "%s;\n", res.SQL)
	}
	return nil
}

func applyDDL(cmd *cobra.Command, cfg *dbexec.Config, stmts []dbexec.Statement) error {
	ctx := cmd.Context()
	db, err := dbexec.Open(ctx, *cfg)
	if err != nil {
		if errors.Is(err, dbexec.ErrNoDSN) {
			return fail(exitConfig, "--apply needs a database", err)
		}
		return fail(exitConnect, "connecting to database", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.ExecAll(ctx, stmts...); err != nil {
		return fail(exitFailed, "applying schema", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d statements to %s.\n", len(stmts), db.Dialect())
	return nil
}
