package token

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	List(f Filter) ([]Token, error)
	GetByID(id int) (Token, error)
	Validate(value string) (Token, error)
	Create(userID int, value string, expiracion time.Time, ipOrigen *string) (Token, error)
	Update(id int, u Update) (Token, error)
	Delete(id int) error
	DeleteByValue(value string) error
	DeleteAllForUser(userID int) (int, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const tokenSelect = `
	SELECT ta.id_token, ta.id_usuario, ta.token, ta.creado_en, ta.expiracion, ta.ip_origen,
	       u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM tokens_autenticacion ta
	LEFT JOIN usuarios u ON ta.id_usuario = u.id_usuario`

func scanToken(row interface{ Scan(...any) error }) (Token, error) {
	var t Token
	var creado sql.NullTime
	var ip, nombre, apellido, email sql.NullString
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &creado, &t.Expiracion, &ip,
		&nombre, &apellido, &email)
	if err != nil {
		return Token{}, err
	}
	t.CreadoEn = database.TimeP(creado)
	t.IPOrigen = database.Str(ip)
	t.NombreUsuario = database.Str(nombre)
	t.ApellidoUsuario = database.Str(apellido)
	t.EmailUsuario = database.Str(email)
	return t, nil
}

func (r *PostgresRepository) List(f Filter) ([]Token, error) {
	query := tokenSelect
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 1)

	if f.UserID != nil {
		args = append(args, *f.UserID)
		conditions = append(conditions, fmt.Sprintf("ta.id_usuario = $%d", len(args)))
	}
	if f.Expirado != nil {
		if *f.Expirado {
			conditions = append(conditions, "ta.expiracion <= NOW()")
		} else {
			conditions = append(conditions, "ta.expiracion > NOW()")
		}
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY ta.expiracion DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]Token, 0)
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Token, error) {
	t, err := scanToken(r.db.QueryRow(tokenSelect+` WHERE ta.id_token = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Token{}, ErrNotFound
	}
	return t, err
}

// Validate resolves an unexpired token value to its owner. The value itself is
// stripped from the result.
func (r *PostgresRepository) Validate(value string) (Token, error) {
	t, err := scanToken(r.db.QueryRow(tokenSelect+` WHERE ta.token = $1 AND ta.expiracion > NOW()`, value))
	if errors.Is(err, sql.ErrNoRows) {
		return Token{}, ErrNotFound
	}
	if err != nil {
		return Token{}, err
	}
	t.Token = ""
	return t, nil
}

func (r *PostgresRepository) Create(userID int, value string, expiracion time.Time, ipOrigen *string) (Token, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO tokens_autenticacion (id_usuario, token, expiracion, ip_origen)
		VALUES ($1, $2, $3, $4)
		RETURNING id_token`,
		userID, value, expiracion, ipOrigen).Scan(&id)
	if err != nil {
		return Token{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, u Update) (Token, error) {
	fields := make([]database.Field, 0, 2)
	if u.Expiracion != nil {
		fields = append(fields, database.Field{Column: "expiracion", Value: *u.Expiracion})
	}
	if u.IPOrigen != nil {
		fields = append(fields, database.Field{Column: "ip_origen", Value: *u.IPOrigen})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE tokens_autenticacion SET %s WHERE id_token = $%d RETURNING id_token`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Token{}, ErrNotFound
	}
	if err != nil {
		return Token{}, err
	}
	return r.GetByID(updatedID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM tokens_autenticacion WHERE id_token = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByValue(value string) error {
	res, err := r.db.Exec(`DELETE FROM tokens_autenticacion WHERE token = $1`, value)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteAllForUser(userID int) (int, error) {
	res, err := r.db.Exec(`DELETE FROM tokens_autenticacion WHERE id_usuario = $1`, userID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
