package address

import "errors"

var (
	ErrMissingAddressFields  = errors.New("id_usuario, direccion, ciudad y pais son requeridos")
	ErrMissingLocationUser   = errors.New("id_usuario es requerido")
	ErrMissingLocationTarget = errors.New("se requiere ciudad o latitud y longitud")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAddresses(userID *int) ([]Address, error) {
	return s.repo.ListAddresses(userID)
}

func (s *Service) GetAddress(id int) (Address, error) {
	return s.repo.GetAddress(id)
}

func (s *Service) CreateAddress(n NewAddress) (Address, error) {
	if n.UserID == nil || n.Direccion == "" || n.Ciudad == "" || n.Pais == "" {
		return Address{}, ErrMissingAddressFields
	}
	return s.repo.CreateAddress(n)
}

func (s *Service) UpdateAddress(id int, u AddressUpdate) (Address, error) {
	return s.repo.UpdateAddress(id, u)
}

func (s *Service) DeleteAddress(id int) error {
	return s.repo.DeleteAddress(id)
}

func (s *Service) ListLocations(userID *int) ([]Location, error) {
	return s.repo.ListLocations(userID)
}

func (s *Service) GetLocation(id int) (Location, error) {
	return s.repo.GetLocation(id)
}

func (s *Service) CreateLocation(n NewLocation) (Location, error) {
	if n.UserID == nil {
		return Location{}, ErrMissingLocationUser
	}
	// A pin needs either a named city or a full coordinate pair.
	if (n.Ciudad == nil || *n.Ciudad == "") && (n.Latitud == nil || n.Longitud == nil) {
		return Location{}, ErrMissingLocationTarget
	}
	return s.repo.CreateLocation(n)
}

func (s *Service) UpdateLocation(id int, u LocationUpdate) (Location, error) {
	return s.repo.UpdateLocation(id, u)
}

func (s *Service) DeleteLocation(id int) error {
	return s.repo.DeleteLocation(id)
}
