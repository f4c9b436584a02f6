package order

// Repository covers ordenes and detalle_orden.
type Repository interface {
	List(f Filter) ([]Order, error)
	// Get returns one order with its line items, shipment and payments.
	Get(id int) (Order, error)
	// Create inserts the order and every line item inside one transaction;
	// any failure leaves no partial order behind. items are inserted in
	// input order and must be pre-validated by the caller.
	Create(userID int, total float64, estado string, items []NewItem) (Order, error)
	Update(id int, u Update) (Order, error)
	Delete(id int) error

	ListItems(orderID *int) ([]Item, error)
	GetItem(id int) (Item, error)
	CreateItem(orderID, productID, qty int, unitPrice float64) (Item, error)
	UpdateItem(id int, u ItemUpdate) (Item, error)
	DeleteItem(id int) error
}
