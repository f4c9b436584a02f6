package cart

// Repository covers the carritos table and its carrito_detalle rows.
type Repository interface {
	ListCarts() ([]Cart, error)
	GetCart(id int) (Cart, error)
	GetCartByUser(userID int) (Cart, error)
	// EnsureCart returns the user's cart, creating it inside a transaction
	// when absent. The second result reports whether the cart pre-existed.
	EnsureCart(userID int) (Cart, bool, error)
	DeleteCart(id int) error
	DeleteCartByUser(userID int) error

	// ListItems returns every line item, or only those of one cart when
	// cartID is non-nil.
	ListItems(cartID *int) ([]Item, error)
	GetItem(id int) (Item, error)
	// UpsertItem inserts the (cart, product) row or adds qty to the
	// existing one, in a single atomic statement.
	UpsertItem(cartID, productID, qty int) (Item, error)
	UpdateItemQuantity(id, qty int) (Item, error)
	DeleteItem(id int) error
}
