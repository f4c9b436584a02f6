package address

import (
	"errors"
	"testing"
)

func TestCreateAddressRequiresCoreFields(t *testing.T) {
	s := NewService(nil)

	userID := 3
	if _, err := s.CreateAddress(NewAddress{UserID: &userID, Direccion: "Av. Corrientes 1234"}); !errors.Is(err, ErrMissingAddressFields) {
		t.Fatalf("missing ciudad/pais: got %v", err)
	}
}

func TestCreateLocationAcceptsCityOrCoordinates(t *testing.T) {
	s := NewService(nil)

	userID := 3
	if _, err := s.CreateLocation(NewLocation{}); !errors.Is(err, ErrMissingLocationUser) {
		t.Fatalf("missing user: got %v", err)
	}
	if _, err := s.CreateLocation(NewLocation{UserID: &userID}); !errors.Is(err, ErrMissingLocationTarget) {
		t.Fatalf("no city nor coordinates: got %v", err)
	}

	lat := -34.6037
	if _, err := s.CreateLocation(NewLocation{UserID: &userID, Latitud: &lat}); !errors.Is(err, ErrMissingLocationTarget) {
		t.Fatalf("half a coordinate pair: got %v", err)
	}
}
