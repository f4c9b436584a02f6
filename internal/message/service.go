package message

import "errors"

var (
	ErrMissingFields = errors.New("id_emisor, id_receptor y mensaje son requeridos")
	ErrSelfMessage   = errors.New("emisor y receptor no pueden ser el mismo usuario")
	ErrEmptyReply    = errors.New("respuesta es requerida")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filter) ([]Message, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Message, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(n NewMessage) (Message, error) {
	if n.EmisorID == nil || n.ReceptorID == nil || n.Mensaje == "" {
		return Message{}, ErrMissingFields
	}
	if *n.EmisorID == *n.ReceptorID {
		return Message{}, ErrSelfMessage
	}
	return s.repo.Create(n)
}

func (s *Service) Answer(id int, respuesta string) (Message, error) {
	if respuesta == "" {
		return Message{}, ErrEmptyReply
	}
	return s.repo.Answer(id, respuesta)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
