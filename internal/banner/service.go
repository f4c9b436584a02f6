package banner

import (
	"errors"
	"time"
)

var (
	ErrMissingFields = errors.New("titulo e imagen_url son requeridos")
	ErrInvalidDate   = errors.New("fecha inválida, usar YYYY-MM-DD")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func checkDates(dates ...*string) error {
	for _, d := range dates {
		if d == nil {
			continue
		}
		if _, err := time.Parse("2006-01-02", *d); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}

func (s *Service) List(f Filter) ([]Banner, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Banner, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(n NewBanner) (Banner, error) {
	if n.Titulo == "" || n.ImagenURL == "" {
		return Banner{}, ErrMissingFields
	}
	if err := checkDates(n.FechaInicio, n.FechaFin); err != nil {
		return Banner{}, err
	}
	return s.repo.Create(n)
}

func (s *Service) Update(id int, u Update) (Banner, error) {
	if err := checkDates(u.FechaInicio, u.FechaFin); err != nil {
		return Banner{}, err
	}
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
