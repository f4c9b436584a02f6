package cart

import "errors"

var (
	ErrInvalidID       = errors.New("id must be a positive integer")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCarts() ([]Cart, error) {
	return s.repo.ListCarts()
}

func (s *Service) GetCart(id int) (Cart, error) {
	return s.repo.GetCart(id)
}

func (s *Service) GetCartByUser(userID int) (Cart, error) {
	return s.repo.GetCartByUser(userID)
}

func (s *Service) EnsureCart(userID int) (Cart, bool, error) {
	if userID <= 0 {
		return Cart{}, false, ErrInvalidID
	}
	return s.repo.EnsureCart(userID)
}

func (s *Service) DeleteCart(id int) error {
	return s.repo.DeleteCart(id)
}

func (s *Service) DeleteCartByUser(userID int) error {
	return s.repo.DeleteCartByUser(userID)
}

func (s *Service) ListItems(cartID *int) ([]Item, error) {
	return s.repo.ListItems(cartID)
}

func (s *Service) GetItem(id int) (Item, error) {
	return s.repo.GetItem(id)
}

func (s *Service) AddItem(cartID, productID, qty int) (Item, error) {
	if cartID <= 0 || productID <= 0 {
		return Item{}, ErrInvalidID
	}
	if qty <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	return s.repo.UpsertItem(cartID, productID, qty)
}

func (s *Service) UpdateItemQuantity(id, qty int) (Item, error) {
	if qty <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	return s.repo.UpdateItemQuantity(id, qty)
}

func (s *Service) DeleteItem(id int) error {
	return s.repo.DeleteItem(id)
}
