package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// captureRepo records the value handed to Create so the minted JWT can be
// verified without a store.
type captureRepo struct {
	Repository
	value  string
	userID int
}

func (c *captureRepo) Create(userID int, value string, expiracion time.Time, ipOrigen *string) (Token, error) {
	c.userID = userID
	c.value = value
	return Token{ID: 1, UserID: userID, Token: value, Expiracion: expiracion, IPOrigen: ipOrigen}, nil
}

func TestCreateMintsJWTWhenValueOmitted(t *testing.T) {
	repo := &captureRepo{}
	s := NewService(repo, "clave-de-prueba")

	userID := 42
	exp := time.Now().Add(24 * time.Hour)
	created, err := s.Create(NewToken{UserID: &userID, Expiracion: &exp})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Token == "" {
		t.Fatal("no token value minted")
	}

	parsed, err := jwt.Parse(repo.value, func(tk *jwt.Token) (any, error) {
		return []byte("clave-de-prueba"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("minted value is not a valid signed JWT: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if int(claims["id_usuario"].(float64)) != 42 {
		t.Fatalf("wrong id_usuario claim: %v", claims["id_usuario"])
	}
	if claims["jti"] == "" || claims["jti"] == nil {
		t.Fatal("missing jti claim")
	}
}

func TestCreateKeepsCallerSuppliedValue(t *testing.T) {
	repo := &captureRepo{}
	s := NewService(repo, "clave-de-prueba")

	userID := 7
	exp := time.Now().Add(time.Hour)
	_, err := s.Create(NewToken{UserID: &userID, Token: "valor-externo", Expiracion: &exp})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.value != "valor-externo" {
		t.Fatalf("caller value replaced: %q", repo.value)
	}
}

func TestCreateRejectsMissingAndPastInput(t *testing.T) {
	s := NewService(&captureRepo{}, "clave")

	userID := 1
	if _, err := s.Create(NewToken{UserID: &userID}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("missing expiracion: got %v", err)
	}
	past := time.Now().Add(-time.Minute)
	if _, err := s.Create(NewToken{UserID: &userID, Expiracion: &past}); !errors.Is(err, ErrPastExpiration) {
		t.Fatalf("past expiracion: got %v", err)
	}
}

func TestDeleteByValueRejectsEmpty(t *testing.T) {
	s := NewService(&captureRepo{}, "clave")
	if err := s.DeleteByValue(""); !errors.Is(err, ErrEmptyTokenValue) {
		t.Fatalf("empty value: got %v", err)
	}
}
