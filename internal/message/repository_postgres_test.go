package message

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var messageCols = []string{
	"id_mensaje", "id_emisor", "id_receptor", "id_producto",
	"mensaje", "respuesta", "fecha_envio", "fecha_respuesta",
	"nombre_emisor", "apellido_emisor", "email_emisor",
	"nombre_receptor", "apellido_receptor", "email_receptor",
	"nombre_producto",
}

func TestAnswerUpdatesUnansweredMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	enviado := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	respondido := enviado.Add(time.Hour)
	mock.ExpectQuery(`UPDATE mensajes`).WithArgs("Sí, hay stock.", 8).
		WillReturnRows(sqlmock.NewRows([]string{"id_mensaje"}).AddRow(8))
	mock.ExpectQuery(`FROM mensajes m`).WithArgs(8).
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow(8, 1, 2, 5, "¿Tenés stock?", "Sí, hay stock.", enviado, respondido,
				"Ana", "Gómez", "ana@example.com", "Pedro", "Sosa", "pedro@example.com", "Mate imperial"))

	m, err := repo.Answer(8, "Sí, hay stock.")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if m.Respuesta == nil || *m.Respuesta != "Sí, hay stock." {
		t.Fatalf("respuesta not set: %+v", m)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAnswerDistinguishesAnsweredFromMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// already answered: guard misses, row exists
	mock.ExpectQuery(`UPDATE mensajes`).WithArgs("de nuevo", 8).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	if _, err := repo.Answer(8, "de nuevo"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("answered message: got %v, want ErrAlreadyAnswered", err)
	}

	// truly missing: guard misses, row absent
	mock.ExpectQuery(`UPDATE mensajes`).WithArgs("hola", 99).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	if _, err := repo.Answer(99, "hola"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing message: got %v, want ErrNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
