package mariadb

import (
	"testing"

	"github.com/zoobzio/sqltree"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Name() != "mariadb" {
		t.Errorf("Name() = %q, want mariadb", r.Name())
	}
}

func TestRender_SharesMySQLSyntax(t *testing.T) {
	result, err := sqltree.Insert().Into("users").
		Columns("id", "email").
		Values(1, "a@example.com").
		OnConflict().DoUpdate().SetExcluded("email").Build().
		Render(New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected := "INSERT INTO `users` (`id`, `email`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `email` = VALUES(`email`)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_IndexIfNotExists(t *testing.T) {
	result, err := sqltree.CreateIndex("idx").On("users").Columns("email").IfNotExists().Render(New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected := "CREATE INDEX IF NOT EXISTS `idx` ON `users` (`email`)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}
