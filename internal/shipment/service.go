package shipment

import "errors"

var ErrMissingFields = errors.New("id_orden, direccion_entrega y metodo_envio son requeridos")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Shipment, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Shipment, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByOrder(orderID int) (Shipment, error) {
	return s.repo.GetByOrder(orderID)
}

func (s *Service) Create(n NewShipment) (Shipment, error) {
	if n.OrderID == nil || n.DireccionEntrega == "" || n.MetodoEnvio == "" {
		return Shipment{}, ErrMissingFields
	}
	if n.EstadoEnvio == "" {
		n.EstadoEnvio = "preparando"
	}
	return s.repo.Create(n)
}

func (s *Service) Update(id int, u Update) (Shipment, error) {
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
