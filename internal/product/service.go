package product

import "errors"

var ErrInvalidEstado = errors.New(`estado must be "nuevo" or "usado"`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(n NewProduct) (Product, error) {
	if !ValidEstado(n.Estado) {
		return Product{}, ErrInvalidEstado
	}
	return s.repo.Create(n)
}

func (s *Service) Update(id int, u Update) (Product, error) {
	if u.Estado != nil && !ValidEstado(*u.Estado) {
		return Product{}, ErrInvalidEstado
	}
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) ListImages(productID *int) ([]Image, error) {
	return s.repo.ListImages(productID)
}

func (s *Service) GetImage(id int) (Image, error) {
	return s.repo.GetImage(id)
}

func (s *Service) CreateImage(productID int, url string, orden *int) (Image, error) {
	return s.repo.CreateImage(productID, url, orden)
}

func (s *Service) UpdateImage(id int, u ImageUpdate) (Image, error) {
	return s.repo.UpdateImage(id, u)
}

func (s *Service) DeleteImage(id int) error {
	return s.repo.DeleteImage(id)
}
