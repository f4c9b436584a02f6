package database

import "testing"

func TestSetClauseOrdersPlaceholders(t *testing.T) {
	set, args := SetClause([]Field{
		{Column: "titulo", Value: "Mate imperial"},
		{Column: "precio", Value: 4500.0},
		{Column: "estado", Value: "usado"},
	})
	if set != "titulo = $1, precio = $2, estado = $3" {
		t.Fatalf("unexpected SET clause: %q", set)
	}
	if len(args) != 3 || args[0] != "Mate imperial" || args[2] != "usado" {
		t.Fatalf("args out of order: %v", args)
	}
}

func TestSetClauseEmpty(t *testing.T) {
	set, args := SetClause(nil)
	if set != "" || args != nil {
		t.Fatalf("empty input should produce nothing, got %q / %v", set, args)
	}
}
