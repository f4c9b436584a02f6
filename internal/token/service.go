package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrMissingFields   = errors.New("id_usuario y expiracion son requeridos")
	ErrPastExpiration  = errors.New("expiracion debe ser una fecha futura")
	ErrEmptyTokenValue = errors.New("token no puede ser vacío")
)

type Service struct {
	repo   Repository
	secret []byte
}

func NewService(repo Repository, secret string) *Service {
	return &Service{repo: repo, secret: []byte(secret)}
}

func (s *Service) List(f Filter) ([]Token, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Token, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Validate(value string) (Token, error) {
	return s.repo.Validate(value)
}

// Create stores the caller's token value, or mints a signed JWT carrying the
// user id and a unique jti when none was supplied.
func (s *Service) Create(n NewToken) (Token, error) {
	if n.UserID == nil || n.Expiracion == nil {
		return Token{}, ErrMissingFields
	}
	if !n.Expiracion.After(time.Now()) {
		return Token{}, ErrPastExpiration
	}

	value := n.Token
	if value == "" {
		minted, err := s.mint(*n.UserID, *n.Expiracion)
		if err != nil {
			return Token{}, err
		}
		value = minted
	}
	return s.repo.Create(*n.UserID, value, *n.Expiracion, n.IPOrigen)
}

func (s *Service) mint(userID int, expiracion time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id_usuario": userID,
		"jti":        uuid.NewString(),
		"iat":        time.Now().Unix(),
		"exp":        expiracion.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Update(id int, u Update) (Token, error) {
	if u.Expiracion != nil && !u.Expiracion.After(time.Now()) {
		return Token{}, ErrPastExpiration
	}
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) DeleteByValue(value string) error {
	if value == "" {
		return ErrEmptyTokenValue
	}
	return s.repo.DeleteByValue(value)
}

func (s *Service) DeleteAllForUser(userID int) (int, error) {
	return s.repo.DeleteAllForUser(userID)
}
