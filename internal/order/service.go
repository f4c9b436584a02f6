package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUser  = errors.New("id_usuario must be a non-negative integer")
	ErrInvalidTotal = errors.New("total must be a non-negative number")
)

// ItemError reports the first structurally invalid line item; nothing is
// persisted when it is returned.
type ItemError struct {
	Index  int
	Reason string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("detalle %d: %s", e.Index, e.Reason)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filter) ([]Order, error) {
	return s.repo.List(f)
}

func (s *Service) Get(id int) (Order, error) {
	return s.repo.Get(id)
}

// Create validates everything it can before a transaction is opened, then
// hands the whole batch to the repository, which inserts order and items
// atomically. Line items keep their input order.
func (s *Service) Create(userID int, total float64, estado string, items []NewItem) (Order, error) {
	if userID < 0 {
		return Order{}, ErrInvalidUser
	}
	if total < 0 {
		return Order{}, ErrInvalidTotal
	}
	if estado == "" {
		estado = "pendiente"
	}

	for i, item := range items {
		switch {
		case item.ProductoID == nil || item.Cantidad == nil || item.PrecioUnitario == nil:
			return Order{}, &ItemError{Index: i, Reason: "id_producto, cantidad y precio_unitario son requeridos"}
		case *item.Cantidad <= 0:
			return Order{}, &ItemError{Index: i, Reason: "la cantidad debe ser mayor que cero"}
		case *item.PrecioUnitario < 0:
			return Order{}, &ItemError{Index: i, Reason: "el precio_unitario no puede ser negativo"}
		}
	}

	return s.repo.Create(userID, total, estado, items)
}

func (s *Service) Update(id int, u Update) (Order, error) {
	if u.Total != nil && *u.Total < 0 {
		return Order{}, ErrInvalidTotal
	}
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) ListItems(orderID *int) ([]Item, error) {
	return s.repo.ListItems(orderID)
}

func (s *Service) GetItem(id int) (Item, error) {
	return s.repo.GetItem(id)
}

func (s *Service) CreateItem(orderID, productID, qty int, unitPrice float64) (Item, error) {
	if qty <= 0 {
		return Item{}, &ItemError{Index: 0, Reason: "la cantidad debe ser mayor que cero"}
	}
	if unitPrice < 0 {
		return Item{}, &ItemError{Index: 0, Reason: "el precio_unitario no puede ser negativo"}
	}
	return s.repo.CreateItem(orderID, productID, qty, unitPrice)
}

func (s *Service) UpdateItem(id int, u ItemUpdate) (Item, error) {
	if u.Cantidad != nil && *u.Cantidad <= 0 {
		return Item{}, &ItemError{Index: 0, Reason: "la cantidad debe ser mayor que cero"}
	}
	if u.PrecioUnitario != nil && *u.PrecioUnitario < 0 {
		return Item{}, &ItemError{Index: 0, Reason: "el precio_unitario no puede ser negativo"}
	}
	return s.repo.UpdateItem(id, u)
}

func (s *Service) DeleteItem(id int) error {
	return s.repo.DeleteItem(id)
}
