package order

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newItems(t *testing.T, specs ...[3]float64) []NewItem {
	t.Helper()
	items := make([]NewItem, 0, len(specs))
	for _, s := range specs {
		pid, qty := int(s[0]), int(s[1])
		price := s[2]
		items = append(items, NewItem{ProductoID: &pid, Cantidad: &qty, PrecioUnitario: &price})
	}
	return items
}

func TestCreateCommitsOrderAndItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	fecha := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO ordenes`).WithArgs(42, 7700.0, "pendiente").
		WillReturnRows(sqlmock.NewRows([]string{"id_orden"}).AddRow(10))
	mock.ExpectExec(`INSERT INTO detalle_orden`).WithArgs(10, 1, 2, 1500.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO detalle_orden`).WithArgs(10, 2, 1, 4700.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`FROM ordenes o`).WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id_orden", "id_usuario", "fecha_orden", "total", "estado", "nombre_usuario", "apellido_usuario", "email_usuario"}).
			AddRow(10, 42, fecha, 7700.0, "pendiente", "Ana", "Gómez", "ana@example.com"))
	mock.ExpectQuery(`FROM detalle_orden WHERE id_orden`).WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id_detalle", "id_orden", "id_producto", "cantidad", "precio_unitario"}).
			AddRow(100, 10, 1, 2, 1500.0).
			AddRow(101, 10, 2, 1, 4700.0))
	mock.ExpectQuery(`SELECT id_producto, titulo FROM productos`).
		WillReturnRows(sqlmock.NewRows([]string{"id_producto", "titulo"}).
			AddRow(1, "Mate imperial").
			AddRow(2, "Bombilla de alpaca"))

	o, err := repo.Create(42, 7700.0, "pendiente", newItems(t, [3]float64{1, 2, 1500}, [3]float64{2, 1, 4700}))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if o.ID != 10 || len(o.Detalles) != 2 {
		t.Fatalf("unexpected order %+v", o)
	}
	if o.Detalles[0].NombreProducto == nil || *o.Detalles[0].NombreProducto != "Mate imperial" {
		t.Fatalf("product titles missing: %+v", o.Detalles)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateRollsBackWhenItemInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO ordenes`).WithArgs(42, 1500.0, "pendiente").
		WillReturnRows(sqlmock.NewRows([]string{"id_orden"}).AddRow(11))
	mock.ExpectExec(`INSERT INTO detalle_orden`).WithArgs(11, 9999, 1, 1500.0).
		WillReturnError(errors.New(`insert violates foreign key constraint "detalle_orden_id_producto_fkey"`))
	mock.ExpectRollback()

	_, err = repo.Create(42, 1500.0, "pendiente", newItems(t, [3]float64{9999, 1, 1500}))
	if err == nil {
		t.Fatal("expected failure for unknown product")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
