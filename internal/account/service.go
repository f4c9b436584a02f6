package account

import (
	"errors"
	"time"
)

var (
	ErrMissingUser           = errors.New("id_usuario es requerido")
	ErrMissingBusinessFields = errors.New("id_usuario, ruc y razon_social son requeridos")
	ErrInvalidDate           = errors.New("fecha inválida, usar YYYY-MM-DD")
	ErrEmptyUpdate           = errors.New("no se proporcionaron campos para actualizar")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func checkBirthDate(d *string) error {
	if d == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *d); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (s *Service) ListPersonal() ([]Personal, error) {
	return s.repo.ListPersonal()
}

func (s *Service) GetPersonal(userID int) (Personal, error) {
	return s.repo.GetPersonal(userID)
}

func (s *Service) CreatePersonal(n NewPersonal) (Personal, error) {
	if n.UserID == nil {
		return Personal{}, ErrMissingUser
	}
	if err := checkBirthDate(n.FechaNacimiento); err != nil {
		return Personal{}, err
	}
	return s.repo.CreatePersonal(n)
}

func (s *Service) UpdatePersonal(userID int, u PersonalUpdate) (Personal, error) {
	if u.Empty() {
		return Personal{}, ErrEmptyUpdate
	}
	if err := checkBirthDate(u.FechaNacimiento); err != nil {
		return Personal{}, err
	}
	return s.repo.UpdatePersonal(userID, u)
}

func (s *Service) DeletePersonal(userID int) error {
	return s.repo.DeletePersonal(userID)
}

func (s *Service) ListBusiness() ([]Business, error) {
	return s.repo.ListBusiness()
}

func (s *Service) GetBusiness(userID int) (Business, error) {
	return s.repo.GetBusiness(userID)
}

func (s *Service) CreateBusiness(n NewBusiness) (Business, error) {
	if n.UserID == nil || n.RUC == "" || n.RazonSocial == "" {
		return Business{}, ErrMissingBusinessFields
	}
	return s.repo.CreateBusiness(n)
}

func (s *Service) UpdateBusiness(userID int, u BusinessUpdate) (Business, error) {
	if u.Empty() {
		return Business{}, ErrEmptyUpdate
	}
	return s.repo.UpdateBusiness(userID, u)
}

func (s *Service) DeleteBusiness(userID int) error {
	return s.repo.DeleteBusiness(userID)
}
