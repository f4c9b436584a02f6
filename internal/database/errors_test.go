package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyPgErrCodes(t *testing.T) {
	cases := []struct {
		code string
		msg  string
		want error
	}{
		{"23503", "insert violates foreign key", ErrForeignKey},
		{"23505", "duplicate key value", ErrUnique},
		{"22P02", `invalid input value for enum orden_estado_enum: "volando"`, ErrEnum},
	}
	for _, tc := range cases {
		got := Classify(&pgconn.PgError{Code: tc.code, Message: tc.msg})
		if got != tc.want {
			t.Errorf("Classify(code=%s) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestClassifyWrappedPgErr(t *testing.T) {
	inner := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	wrapped := fmt.Errorf("creating user: %w", inner)
	if got := Classify(wrapped); got != ErrUnique {
		t.Fatalf("Classify(wrapped) = %v, want ErrUnique", got)
	}
}

func TestClassifyMessageFallback(t *testing.T) {
	err := errors.New(`pq: inserción o actualización viola llave foránea "fk_usuario" - violates foreign key constraint`)
	if got := Classify(err); got != ErrForeignKey {
		t.Fatalf("Classify(message) = %v, want ErrForeignKey", got)
	}
}

func TestClassifyPassesUnknownThrough(t *testing.T) {
	plain := errors.New("connection reset")
	if got := Classify(plain); got != plain {
		t.Fatalf("unknown error changed: %v", got)
	}
	if got := Classify(sql.ErrNoRows); got != sql.ErrNoRows {
		t.Fatalf("sql.ErrNoRows should pass through, got %v", got)
	}
	if Classify(nil) != nil {
		t.Fatal("Classify(nil) should be nil")
	}
}
