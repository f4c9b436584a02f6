package promotion

import (
	"errors"
	"testing"
)

func strp(s string) *string { return &s }

func TestCreatePromotionValidation(t *testing.T) {
	s := NewService(nil)

	if _, err := s.Create(NewPromotion{}); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("missing title: got %v", err)
	}

	over := 120
	if _, err := s.Create(NewPromotion{Titulo: "Semana gaucha", DescuentoPorcentaje: &over}); !errors.Is(err, ErrInvalidDiscount) {
		t.Fatalf("discount over 100: got %v", err)
	}

	if _, err := s.Create(NewPromotion{Titulo: "Semana gaucha", FechaInicio: strp("01-06-2025")}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("malformed date: got %v", err)
	}

	if _, err := s.Create(NewPromotion{
		Titulo:      "Semana gaucha",
		FechaInicio: strp("2025-06-10"),
		FechaFin:    strp("2025-06-01"),
	}); !errors.Is(err, ErrDateRange) {
		t.Fatalf("inverted window: got %v", err)
	}
}

func TestCreateLinkRequiresPair(t *testing.T) {
	s := NewService(nil)

	producto := 5
	if _, err := s.CreateLink(LinkKey{ProductoID: &producto}); !errors.Is(err, ErrMissingLinkKey) {
		t.Fatalf("missing id_promocion: got %v", err)
	}
}

func TestUpsertFeaturedValidation(t *testing.T) {
	s := NewService(nil)

	if _, err := s.UpsertFeatured(NewFeatured{}); !errors.Is(err, ErrMissingProduct) {
		t.Fatalf("missing id_producto: got %v", err)
	}

	producto := 5
	if _, err := s.UpsertFeatured(NewFeatured{
		ProductoID:  &producto,
		FechaInicio: strp("2025-06-10"),
		FechaFin:    strp("2025-06-01"),
	}); !errors.Is(err, ErrDateRange) {
		t.Fatalf("inverted window: got %v", err)
	}
}
