package store

import "errors"

var ErrMissingFields = errors.New("id_usuario y nombre_tienda son requeridos")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filter) ([]Store, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Store, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByUser(userID int) (Store, error) {
	return s.repo.GetByUser(userID)
}

func (s *Service) Create(n NewStore) (Store, error) {
	if n.UserID == nil || n.NombreTienda == "" {
		return Store{}, ErrMissingFields
	}
	if n.Estado == "" {
		n.Estado = "en_revision"
	}
	return s.repo.Create(n)
}

func (s *Service) Update(id int, u Update) (Store, error) {
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
