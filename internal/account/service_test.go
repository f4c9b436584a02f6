package account

import (
	"errors"
	"testing"
)

func TestCreatePersonalValidation(t *testing.T) {
	s := NewService(nil)

	if _, err := s.CreatePersonal(NewPersonal{}); !errors.Is(err, ErrMissingUser) {
		t.Fatalf("missing id_usuario: got %v", err)
	}

	userID := 3
	bad := "15/03/1990"
	if _, err := s.CreatePersonal(NewPersonal{UserID: &userID, FechaNacimiento: &bad}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("malformed birth date: got %v", err)
	}
}

func TestCreateBusinessRequiresRUCAndRazonSocial(t *testing.T) {
	s := NewService(nil)

	userID := 3
	if _, err := s.CreateBusiness(NewBusiness{UserID: &userID, RUC: "20123456789"}); !errors.Is(err, ErrMissingBusinessFields) {
		t.Fatalf("missing razon_social: got %v", err)
	}
	if _, err := s.CreateBusiness(NewBusiness{RUC: "20123456789", RazonSocial: "Gaucho SRL"}); !errors.Is(err, ErrMissingBusinessFields) {
		t.Fatalf("missing id_usuario: got %v", err)
	}
}

func TestUpdateRejectsEmptyPayload(t *testing.T) {
	s := NewService(nil)

	if _, err := s.UpdatePersonal(3, PersonalUpdate{}); !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("empty personal update: got %v", err)
	}
	if _, err := s.UpdateBusiness(3, BusinessUpdate{}); !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("empty business update: got %v", err)
	}
}
