package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mercadogaucho/api/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id_usuario, nombre, apellido, email, telefono, tipo_usuario, tipo_cuenta, fecha_creacion`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var u User
	var telefono sql.NullString
	err := row.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &telefono, &u.TipoUsuario, &u.TipoCuenta, &u.FechaCreacion)
	if err != nil {
		return User{}, err
	}
	u.Telefono = database.Str(telefono)
	return u, nil
}

func (r *PostgresRepository) List() ([]User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM usuarios ORDER BY id_usuario`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	u, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM usuarios WHERE id_usuario = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

// Create persists a new account. n.Contraseña must already be a bcrypt hash
// when it arrives here; the service owns that boundary.
func (r *PostgresRepository) Create(n NewUser) (User, error) {
	row := r.db.QueryRow(`
		INSERT INTO usuarios (nombre, apellido, email, telefono, contraseña_hash, tipo_usuario, tipo_cuenta)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		n.Nombre, n.Apellido, n.Email, n.Telefono, n.Contraseña, n.TipoUsuario, n.TipoCuenta)
	return scanUser(row)
}

func (r *PostgresRepository) Update(id int, u UserUpdate) (User, error) {
	fields := make([]database.Field, 0, 5)
	if u.Nombre != nil {
		fields = append(fields, database.Field{Column: "nombre", Value: *u.Nombre})
	}
	if u.Apellido != nil {
		fields = append(fields, database.Field{Column: "apellido", Value: *u.Apellido})
	}
	if u.Telefono != nil {
		fields = append(fields, database.Field{Column: "telefono", Value: *u.Telefono})
	}
	if u.TipoUsuario != nil {
		fields = append(fields, database.Field{Column: "tipo_usuario", Value: *u.TipoUsuario})
	}
	if u.TipoCuenta != nil {
		fields = append(fields, database.Field{Column: "tipo_cuenta", Value: *u.TipoCuenta})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE usuarios SET %s WHERE id_usuario = $%d RETURNING %s`, set, len(args)+1, userColumns)
	args = append(args, id)

	updated, err := scanUser(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return updated, err
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM usuarios WHERE id_usuario = $1`, id)
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
