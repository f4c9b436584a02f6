package audit

import "errors"

var (
	ErrMissingAction = errors.New("accion es requerida")
	ErrMissingExito  = errors.New("exito es requerido")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListLogs(f LogFilter) ([]Log, error) {
	return s.repo.ListLogs(f)
}

func (s *Service) GetLog(id int) (Log, error) {
	return s.repo.GetLog(id)
}

func (s *Service) CreateLog(n NewLog) (Log, error) {
	if n.Accion == "" {
		return Log{}, ErrMissingAction
	}
	return s.repo.CreateLog(n)
}

func (s *Service) ListLogins(f LoginFilter) ([]Login, error) {
	return s.repo.ListLogins(f)
}

func (s *Service) GetLogin(id int) (Login, error) {
	return s.repo.GetLogin(id)
}

func (s *Service) CreateLogin(n NewLogin) (Login, error) {
	if n.Exito == nil {
		return Login{}, ErrMissingExito
	}
	return s.repo.CreateLogin(n)
}
