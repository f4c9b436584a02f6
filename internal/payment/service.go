package payment

import "errors"

var (
	ErrMissingFields = errors.New("id_orden, metodo_pago y monto_pagado son requeridos")
	ErrInvalidAmount = errors.New("monto_pagado no puede ser negativo")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filter) ([]Payment, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Payment, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(n NewPayment) (Payment, error) {
	if n.OrderID == nil || n.MetodoPago == "" || n.MontoPagado == nil {
		return Payment{}, ErrMissingFields
	}
	if *n.MontoPagado < 0 {
		return Payment{}, ErrInvalidAmount
	}
	if n.EstadoPago == "" {
		n.EstadoPago = "pendiente"
	}
	return s.repo.Create(n)
}

func (s *Service) Update(id int, u Update) (Payment, error) {
	if u.MontoPagado != nil && *u.MontoPagado < 0 {
		return Payment{}, ErrInvalidAmount
	}
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
