package main

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/sqltree/dbexec"
)

// app holds state shared by subcommands, set during PersistentPreRunE.
type app struct {
	cfg     *dbexec.Config
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sqltree",
		Short: "Render schema documents as SQL for any supported dialect",
		Long: `sqltree - dialect-aware DDL from YAML schema documents

Reads a YAML description of tables and indexes and prints the DDL for
PostgreSQL, CockroachDB, MySQL, MariaDB, SQLite or SQL Server, or applies it
to a database in one transaction.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "dialects" {
				return nil
			}
			v, err := dbexec.NewViper(a.cfgFile)
			if err != nil {
				return fail(exitConfig, "loading configuration", err)
			}
			for _, key := range []string{"dialect", "dsn"} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
					return fail(exitConfig, "binding flags", err)
				}
			}
			a.cfg, err = dbexec.Decode(v)
			if err != nil {
				return fail(exitConfig, "loading configuration", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("dialect", "", "target dialect (default postgres)")
	pf.String("dsn", "", "database connection string")

	root.AddCommand(newDDLCmd(a))
	root.AddCommand(newDialectsCmd())
	return root
}
