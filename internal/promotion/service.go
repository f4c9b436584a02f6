package promotion

import (
	"errors"
	"time"
)

var (
	ErrMissingTitle    = errors.New("titulo es requerido")
	ErrInvalidDiscount = errors.New("descuento_porcentaje debe estar entre 0 y 100")
	ErrInvalidDate     = errors.New("fecha inválida, usar YYYY-MM-DD")
	ErrDateRange       = errors.New("fecha_fin no puede ser anterior a fecha_inicio")
	ErrMissingLinkKey  = errors.New("id_producto e id_promocion son requeridos")
	ErrMissingProduct  = errors.New("id_producto es requerido")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validDate(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", *s)
	return t, err == nil
}

func checkWindow(inicio, fin *string) error {
	start, ok := validDate(inicio)
	if !ok {
		return ErrInvalidDate
	}
	end, ok := validDate(fin)
	if !ok {
		return ErrInvalidDate
	}
	if inicio != nil && fin != nil && end.Before(start) {
		return ErrDateRange
	}
	return nil
}

func (s *Service) List(f PromotionFilter) ([]Promotion, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Promotion, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByCode(codigo string) (Promotion, error) {
	return s.repo.GetByCode(codigo)
}

func (s *Service) Create(n NewPromotion) (Promotion, error) {
	if n.Titulo == "" {
		return Promotion{}, ErrMissingTitle
	}
	if n.DescuentoPorcentaje != nil && (*n.DescuentoPorcentaje < 0 || *n.DescuentoPorcentaje > 100) {
		return Promotion{}, ErrInvalidDiscount
	}
	if err := checkWindow(n.FechaInicio, n.FechaFin); err != nil {
		return Promotion{}, err
	}
	return s.repo.Create(n)
}

func (s *Service) Update(id int, u PromotionUpdate) (Promotion, error) {
	if u.DescuentoPorcentaje != nil && (*u.DescuentoPorcentaje < 0 || *u.DescuentoPorcentaje > 100) {
		return Promotion{}, ErrInvalidDiscount
	}
	if err := checkWindow(u.FechaInicio, u.FechaFin); err != nil {
		return Promotion{}, err
	}
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) ListLinks(f LinkFilter) ([]Link, error) {
	return s.repo.ListLinks(f)
}

func (s *Service) LinksForProduct(productID int) ([]Link, error) {
	return s.repo.LinksForProduct(productID)
}

func (s *Service) LinksForPromotion(promotionID int) ([]Link, error) {
	return s.repo.LinksForPromotion(promotionID)
}

func (s *Service) CreateLink(k LinkKey) (Link, error) {
	if k.ProductoID == nil || k.PromocionID == nil {
		return Link{}, ErrMissingLinkKey
	}
	return s.repo.CreateLink(*k.ProductoID, *k.PromocionID)
}

func (s *Service) DeleteLink(k LinkKey) error {
	if k.ProductoID == nil || k.PromocionID == nil {
		return ErrMissingLinkKey
	}
	return s.repo.DeleteLink(*k.ProductoID, *k.PromocionID)
}

func (s *Service) ListFeatured(f FeaturedFilter) ([]Featured, error) {
	return s.repo.ListFeatured(f)
}

func (s *Service) GetFeatured(id int) (Featured, error) {
	return s.repo.GetFeatured(id)
}

func (s *Service) GetFeaturedByProduct(productID int) (Featured, error) {
	return s.repo.GetFeaturedByProduct(productID)
}

func (s *Service) UpsertFeatured(n NewFeatured) (Featured, error) {
	if n.ProductoID == nil {
		return Featured{}, ErrMissingProduct
	}
	if err := checkWindow(n.FechaInicio, n.FechaFin); err != nil {
		return Featured{}, err
	}
	return s.repo.UpsertFeatured(n)
}

func (s *Service) UpdateFeatured(id int, u FeaturedUpdate) (Featured, error) {
	if err := checkWindow(u.FechaInicio, u.FechaFin); err != nil {
		return Featured{}, err
	}
	return s.repo.UpdateFeatured(id, u)
}

func (s *Service) DeleteFeatured(id int) error {
	return s.repo.DeleteFeatured(id)
}

func (s *Service) DeleteFeaturedByProduct(productID int) error {
	return s.repo.DeleteFeaturedByProduct(productID)
}
