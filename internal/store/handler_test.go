package store

import (
	"errors"
	"testing"
)

func TestUniqueConflictMessagePicksConstraint(t *testing.T) {
	owner := errors.New(`duplicate key value violates unique constraint "tiendas_oficiales_id_usuario_key"`)
	if got := uniqueConflictMessage(owner, false); got != "Este usuario ya tiene una tienda oficial registrada." {
		t.Fatalf("owner constraint: %q", got)
	}

	name := errors.New(`duplicate key value violates unique constraint "tiendas_oficiales_nombre_tienda_key"`)
	if got := uniqueConflictMessage(name, false); got != "El nombre de la tienda ya está en uso." {
		t.Fatalf("name constraint on create: %q", got)
	}
	if got := uniqueConflictMessage(name, true); got != "El nombre de la tienda ya está en uso por otra tienda." {
		t.Fatalf("name constraint on update: %q", got)
	}
}
