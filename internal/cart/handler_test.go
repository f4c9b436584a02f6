package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

// fakeRepository keeps carts in memory so handler tests stay off the store.
type fakeRepository struct {
	carts  map[int]Cart
	items  map[int]Item
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{carts: map[int]Cart{}, items: map[int]Item{}, nextID: 1}
}

func (f *fakeRepository) ListCarts() ([]Cart, error) {
	out := []Cart{}
	for _, c := range f.carts {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepository) GetCart(id int) (Cart, error) {
	c, ok := f.carts[id]
	if !ok {
		return Cart{}, ErrCartNotFound
	}
	return c, nil
}

func (f *fakeRepository) GetCartByUser(userID int) (Cart, error) {
	for _, c := range f.carts {
		if c.UsuarioID == userID {
			return c, nil
		}
	}
	return Cart{}, ErrCartNotFound
}

func (f *fakeRepository) EnsureCart(userID int) (Cart, bool, error) {
	if c, err := f.GetCartByUser(userID); err == nil {
		return c, true, nil
	}
	c := Cart{ID: f.nextID, UsuarioID: userID, FechaCreacion: time.Now()}
	f.carts[c.ID] = c
	f.nextID++
	return c, false, nil
}

func (f *fakeRepository) DeleteCart(id int) error {
	if _, ok := f.carts[id]; !ok {
		return ErrCartNotFound
	}
	delete(f.carts, id)
	return nil
}

func (f *fakeRepository) DeleteCartByUser(userID int) error {
	for id, c := range f.carts {
		if c.UsuarioID == userID {
			delete(f.carts, id)
			return nil
		}
	}
	return ErrCartNotFound
}

func (f *fakeRepository) ListItems(cartID *int) ([]Item, error) {
	out := []Item{}
	for _, it := range f.items {
		if cartID == nil || it.CartID == *cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetItem(id int) (Item, error) {
	it, ok := f.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return it, nil
}

func (f *fakeRepository) UpsertItem(cartID, productID, qty int) (Item, error) {
	for id, it := range f.items {
		if it.CartID == cartID && it.ProductoID == productID {
			it.Cantidad += qty
			f.items[id] = it
			return it, nil
		}
	}
	it := Item{ID: f.nextID, CartID: cartID, ProductoID: productID, Cantidad: qty}
	f.items[it.ID] = it
	f.nextID++
	return it, nil
}

func (f *fakeRepository) UpdateItemQuantity(id, qty int) (Item, error) {
	it, ok := f.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	it.Cantidad = qty
	f.items[id] = it
	return it, nil
}

func (f *fakeRepository) DeleteItem(id int) error {
	if _, ok := f.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func newCartApp() (*fiber.App, *fakeRepository) {
	repo := newFakeRepository()
	handler := NewHandler(NewService(repo))
	app := fiber.New()
	handler.RegisterCartRoutes(app.Group("/api/carritos"))
	handler.RegisterItemRoutes(app.Group("/api/carrito_detalle"))
	return app, repo
}

func TestEnsureCartEndpointCreatesThenRecovers(t *testing.T) {
	app, _ := newCartApp()

	body := strings.NewReader(`{"id_usuario": 42}`)
	req := httptest.NewRequest("POST", "/api/carritos", body)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("first POST failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("first POST: expected 201, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/carritos", strings.NewReader(`{"id_usuario": 42}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("second POST failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("second POST: expected 200, got %d", res2.StatusCode)
	}
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), "Carrito existente recuperado.") {
		t.Fatalf("missing recovery message: %s", b)
	}
}

func TestEnsureCartEndpointRequiresUser(t *testing.T) {
	app, _ := newCartApp()

	req := httptest.NewRequest("POST", "/api/carritos", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestCartPutIsNotImplemented(t *testing.T) {
	app, _ := newCartApp()

	req := httptest.NewRequest("PUT", "/api/carritos/5", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("PUT failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", res.StatusCode)
	}
}

func TestAddItemMergesOnRepeat(t *testing.T) {
	app, repo := newCartApp()
	repo.carts[1] = Cart{ID: 1, UsuarioID: 42}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/carrito_detalle", strings.NewReader(`{"id_carrito":1,"id_producto":11,"cantidad":2}`))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("POST %d failed: %v", i, err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("POST %d: expected 200, got %d", i, res.StatusCode)
		}
	}

	items, _ := repo.ListItems(nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(items))
	}
	if items[0].Cantidad != 4 {
		t.Fatalf("expected cantidad 4 after merge, got %d", items[0].Cantidad)
	}
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	app, _ := newCartApp()

	req := httptest.NewRequest("POST", "/api/carrito_detalle", strings.NewReader(`{"id_carrito":1,"id_producto":11,"cantidad":0}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "La cantidad debe ser mayor que cero.") {
		t.Fatalf("unexpected body: %s", b)
	}
}
