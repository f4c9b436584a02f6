package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	List(f Filter) ([]Store, error)
	GetByID(id int) (Store, error)
	GetByUser(userID int) (Store, error)
	Create(n NewStore) (Store, error)
	Update(id int, u Update) (Store, error)
	Delete(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const storeSelect = `
	SELECT t.id_tienda, t.id_usuario, t.nombre_tienda, t.logo_url,
	       t.descripcion, t.estado, t.fecha_creacion,
	       u.nombre AS nombre_propietario, u.apellido AS apellido_propietario, u.email AS email_propietario
	FROM tiendas_oficiales t
	JOIN usuarios u ON t.id_usuario = u.id_usuario`

func scanStore(row interface{ Scan(...any) error }) (Store, error) {
	var s Store
	var logo, descripcion, nombre, apellido, email sql.NullString
	var fecha sql.NullTime
	err := row.Scan(&s.ID, &s.UserID, &s.NombreTienda, &logo, &descripcion, &s.Estado, &fecha,
		&nombre, &apellido, &email)
	if err != nil {
		return Store{}, err
	}
	s.LogoURL = database.Str(logo)
	s.Descripcion = database.Str(descripcion)
	s.FechaCreacion = database.TimeP(fecha)
	s.NombrePropietario = database.Str(nombre)
	s.ApellidoPropietario = database.Str(apellido)
	s.EmailPropietario = database.Str(email)
	return s, nil
}

func (r *PostgresRepository) List(f Filter) ([]Store, error) {
	query := storeSelect
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.Estado != nil {
		args = append(args, *f.Estado)
		conditions = append(conditions, fmt.Sprintf("t.estado = $%d", len(args)))
	}
	if f.NombreTienda != nil {
		args = append(args, "%"+*f.NombreTienda+"%")
		conditions = append(conditions, fmt.Sprintf("t.nombre_tienda ILIKE $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.nombre_tienda ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Store, error) {
	s, err := scanStore(r.db.QueryRow(storeSelect+` WHERE t.id_tienda = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Store{}, ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) GetByUser(userID int) (Store, error) {
	s, err := scanStore(r.db.QueryRow(storeSelect+` WHERE t.id_usuario = $1`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Store{}, ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) Create(n NewStore) (Store, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO tiendas_oficiales (id_usuario, nombre_tienda, logo_url, descripcion, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_tienda`,
		*n.UserID, n.NombreTienda, n.LogoURL, n.Descripcion, n.Estado).Scan(&id)
	if err != nil {
		return Store{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, u Update) (Store, error) {
	fields := make([]database.Field, 0, 4)
	if u.NombreTienda != nil {
		fields = append(fields, database.Field{Column: "nombre_tienda", Value: *u.NombreTienda})
	}
	if u.LogoURL != nil {
		fields = append(fields, database.Field{Column: "logo_url", Value: *u.LogoURL})
	}
	if u.Descripcion != nil {
		fields = append(fields, database.Field{Column: "descripcion", Value: *u.Descripcion})
	}
	if u.Estado != nil {
		fields = append(fields, database.Field{Column: "estado", Value: *u.Estado})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE tiendas_oficiales SET %s WHERE id_tienda = $%d RETURNING id_tienda`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Store{}, ErrNotFound
	}
	if err != nil {
		return Store{}, err
	}
	return r.GetByID(updatedID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM tiendas_oficiales WHERE id_tienda = $1`, id)
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
