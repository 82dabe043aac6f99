package postgres

import (
	"strings"
	"testing"
)

func TestSchemaIsIdempotent(t *testing.T) {
	s := Schema()
	if s == "" {
		t.Fatal("embedded schema is empty")
	}
	for _, stmt := range strings.Split(s, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement is not idempotent: %s", stmt)
		}
	}
}

func TestSchemaProductColumns(t *testing.T) {
	for _, col := range []string{"id", "name", "description", "price", "quantity", "category", "is_active", "created_at", "updated_at"} {
		if !strings.Contains(Schema(), "\n    "+col+" ") {
			t.Errorf("schema missing column %q", col)
		}
	}
}
