// Command sqltree renders a YAML schema document as DDL for a chosen dialect
// and optionally applies it to a database.
//
// Usage:
//
//	sqltree [--config file] [--dialect name] [--dsn dsn] <command>
//
// Settings come from flags, then SQLTREE_* environment variables, then the
// config file.
package main

import "os"

func main() {
	os.Exit(exitStatus(os.Stderr, newRootCmd().Execute()))
}
