package user

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Service owns the credential-hashing boundary: no caller below it ever sees
// a raw password.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]User, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(n NewUser) (User, error) {
	if n.TipoUsuario == "" {
		n.TipoUsuario = "comprador"
	}
	if n.TipoCuenta == "" {
		n.TipoCuenta = "personal"
	}

	// Rows migrated from the old backend may already carry a bcrypt hash.
	if !looksLikeBcrypt(n.Contraseña) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(n.Contraseña), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		n.Contraseña = string(hashed)
	}

	return s.repo.Create(n)
}

func (s *Service) Update(id int, u UserUpdate) (User, error) {
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func looksLikeBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
