package user

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// fakeRepository records what the service hands down, letting the tests
// inspect the stored hash without a database.
type fakeRepository struct {
	users    map[int]User
	lastPass string
	nextID   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[int]User{}, nextID: 1}
}

func (f *fakeRepository) List() ([]User, error) {
	out := []User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeRepository) GetByID(id int) (User, error) {
	u, ok := f.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepository) Create(n NewUser) (User, error) {
	for _, u := range f.users {
		if u.Email == n.Email {
			return User{}, errConflict
		}
	}
	f.lastPass = n.Contraseña
	u := User{
		ID: f.nextID, Nombre: n.Nombre, Apellido: n.Apellido, Email: n.Email,
		Telefono: n.Telefono, TipoUsuario: n.TipoUsuario, TipoCuenta: n.TipoCuenta,
		FechaCreacion: time.Now(),
	}
	f.users[u.ID] = u
	f.nextID++
	return u, nil
}

func (f *fakeRepository) Update(id int, u UserUpdate) (User, error) {
	existing, ok := f.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if u.Nombre != nil {
		existing.Nombre = *u.Nombre
	}
	if u.Apellido != nil {
		existing.Apellido = *u.Apellido
	}
	f.users[id] = existing
	return existing, nil
}

func (f *fakeRepository) Delete(id int) error {
	if _, ok := f.users[id]; !ok {
		return ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// errConflict mimics the store's unique violation phrasing so that the
// handler's classification path is exercised.
var errConflict = errorString(`duplicate key value violates unique constraint "usuarios_email_key"`)

type errorString string

func (e errorString) Error() string { return string(e) }

func newUserApp() (*fiber.App, *fakeRepository) {
	repo := newFakeRepository()
	handler := NewHandler(NewService(repo))
	app := fiber.New()
	handler.RegisterRoutes(app.Group("/api/usuarios"))
	return app, repo
}

func TestCreateUserHashesPassword(t *testing.T) {
	app, repo := newUserApp()

	body := `{"nombre":"Ana","apellido":"Gómez","email":"ana@example.com","contraseña":"secreta123"}`
	req := httptest.NewRequest("POST", "/api/usuarios", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201, got %d: %s", res.StatusCode, b)
	}

	if repo.lastPass == "secreta123" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastPass), []byte("secreta123")); err != nil {
		t.Fatalf("stored value is not a valid bcrypt hash of the password: %v", err)
	}

	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), "contraseña") || strings.Contains(string(b), "secreta123") {
		t.Fatalf("response leaks credentials: %s", b)
	}
	if !strings.Contains(string(b), `"tipo_usuario":"comprador"`) {
		t.Fatalf("default tipo_usuario missing: %s", b)
	}
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	app, _ := newUserApp()

	body := `{"nombre":"Ana","apellido":"Gómez","email":"ana@example.com","contraseña":"secreta123"}`
	for i, want := range []int{fiber.StatusCreated, fiber.StatusConflict} {
		req := httptest.NewRequest("POST", "/api/usuarios", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("POST %d failed: %v", i, err)
		}
		if res.StatusCode != want {
			t.Fatalf("POST %d: expected %d, got %d", i, want, res.StatusCode)
		}
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	app, _ := newUserApp()

	req := httptest.NewRequest("POST", "/api/usuarios", strings.NewReader(`{"nombre":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Faltan campos requeridos") {
		t.Fatalf("unexpected body: %s", b)
	}
}

func TestGetUserNotFound(t *testing.T) {
	app, _ := newUserApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/usuarios/99", nil))
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
