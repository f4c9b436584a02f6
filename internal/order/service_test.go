package order

import (
	"errors"
	"testing"
)

// Invalid input must be rejected before the repository is touched, so a nil
// repository doubles as the proof that nothing was persisted.
func TestServiceCreateValidatesBeforeStore(t *testing.T) {
	s := NewService(nil)

	if _, err := s.Create(-1, 100, "", nil); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("negative user: got %v", err)
	}
	if _, err := s.Create(1, -5, "", nil); !errors.Is(err, ErrInvalidTotal) {
		t.Fatalf("negative total: got %v", err)
	}
}

func TestServiceCreateRejectsFirstBadItem(t *testing.T) {
	s := NewService(nil)

	pid, qty := 1, 2
	price := 100.0
	badQty := 0
	items := []NewItem{
		{ProductoID: &pid, Cantidad: &qty, PrecioUnitario: &price},
		{ProductoID: &pid, Cantidad: &badQty, PrecioUnitario: &price},
	}

	_, err := s.Create(1, 200, "", items)
	var itemErr *ItemError
	if !errors.As(err, &itemErr) {
		t.Fatalf("expected ItemError, got %v", err)
	}
	if itemErr.Index != 1 {
		t.Fatalf("expected failure at index 1, got %d", itemErr.Index)
	}
}

func TestServiceCreateRejectsIncompleteItem(t *testing.T) {
	s := NewService(nil)

	qty := 1
	price := 100.0
	items := []NewItem{{Cantidad: &qty, PrecioUnitario: &price}}

	_, err := s.Create(1, 100, "", items)
	var itemErr *ItemError
	if !errors.As(err, &itemErr) {
		t.Fatalf("expected ItemError for missing id_producto, got %v", err)
	}
}

func TestServiceUpdateRejectsNegativeTotal(t *testing.T) {
	s := NewService(nil)

	bad := -1.0
	if _, err := s.Update(5, Update{Total: &bad}); !errors.Is(err, ErrInvalidTotal) {
		t.Fatalf("negative total on update: got %v", err)
	}
}
