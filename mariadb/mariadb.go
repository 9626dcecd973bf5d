// Package mariadb provides the MariaDB dialect renderer for sqltree. MariaDB
// follows the MySQL dialect; see package mysql.
package mariadb

import "github.com/zoobzio/sqltree/mysql"

// New creates a new MariaDB renderer.
func New() *mysql.Renderer {
	return mysql.NewMariaDB()
}
