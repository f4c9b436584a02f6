package cart

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var cartCols = []string{"id_carrito", "id_usuario", "fecha_creacion", "nombre_usuario", "apellido_usuario", "email_usuario"}

func TestEnsureCartCreatesWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	creado := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id_carrito FROM carritos`).WithArgs(42).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO carritos`).WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id_carrito"}).AddRow(7))
	mock.ExpectQuery(`FROM carritos c`).WithArgs(7).
		WillReturnRows(sqlmock.NewRows(cartCols).AddRow(7, 42, creado, "Ana", "Gómez", "ana@example.com"))
	mock.ExpectCommit()

	c, existed, err := repo.EnsureCart(42)
	if err != nil {
		t.Fatalf("EnsureCart: %v", err)
	}
	if existed {
		t.Fatal("cart reported as pre-existing after insert")
	}
	if c.ID != 7 || c.UsuarioID != 42 {
		t.Fatalf("unexpected cart %+v", c)
	}
	if c.NombreUsuario == nil || *c.NombreUsuario != "Ana" {
		t.Fatalf("user fields not joined: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEnsureCartReturnsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	creado := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id_carrito FROM carritos`).WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id_carrito"}).AddRow(3))
	mock.ExpectQuery(`FROM carritos c`).WithArgs(3).
		WillReturnRows(sqlmock.NewRows(cartCols).AddRow(3, 42, creado, "Ana", "Gómez", "ana@example.com"))
	mock.ExpectCommit()

	c, existed, err := repo.EnsureCart(42)
	if err != nil {
		t.Fatalf("EnsureCart: %v", err)
	}
	if !existed {
		t.Fatal("existing cart reported as created")
	}
	if c.ID != 3 {
		t.Fatalf("unexpected cart id %d", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEnsureCartRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id_carrito FROM carritos`).WithArgs(999).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO carritos`).WithArgs(999).
		WillReturnError(errors.New(`insert violates foreign key constraint "carritos_id_usuario_fkey"`))
	mock.ExpectRollback()

	_, _, err = repo.EnsureCart(999)
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertItemMergesQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`INSERT INTO carrito_detalle`).WithArgs(3, 11, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id_detalle"}).AddRow(20))
	mock.ExpectQuery(`FROM carrito_detalle cd`).WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id_detalle", "id_carrito", "id_producto", "cantidad", "nombre_producto", "precio_unitario_actual_producto"}).
			AddRow(20, 3, 11, 5, "Bombilla de alpaca", 3200.0))

	it, err := repo.UpsertItem(3, 11, 2)
	if err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}
	if it.Cantidad != 5 {
		t.Fatalf("expected merged cantidad 5, got %d", it.Cantidad)
	}
	if it.NombreProducto == nil || *it.NombreProducto != "Bombilla de alpaca" {
		t.Fatalf("product join missing: %+v", it)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
