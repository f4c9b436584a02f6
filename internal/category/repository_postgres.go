package category

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mercadogaucho/api/internal/database"
)

// Repository provides access to the categorias table.
type Repository interface {
	List() ([]Category, error)
	GetByID(id int) (Category, error)
	Create(nombre string, descripcion *string) (Category, error)
	Update(id int, u Update) (Category, error)
	Delete(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCategory(row interface{ Scan(...any) error }) (Category, error) {
	var cat Category
	var desc sql.NullString
	if err := row.Scan(&cat.ID, &cat.Nombre, &desc); err != nil {
		return Category{}, err
	}
	cat.Descripcion = database.Str(desc)
	return cat, nil
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(`SELECT id_categoria, nombre_categoria, descripcion FROM categorias ORDER BY nombre_categoria`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]Category, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	cat, err := scanCategory(r.db.QueryRow(`SELECT id_categoria, nombre_categoria, descripcion FROM categorias WHERE id_categoria = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	return cat, err
}

func (r *PostgresRepository) Create(nombre string, descripcion *string) (Category, error) {
	return scanCategory(r.db.QueryRow(`
		INSERT INTO categorias (nombre_categoria, descripcion)
		VALUES ($1, $2)
		RETURNING id_categoria, nombre_categoria, descripcion`,
		nombre, descripcion))
}

func (r *PostgresRepository) Update(id int, u Update) (Category, error) {
	fields := make([]database.Field, 0, 2)
	if u.Nombre != nil {
		fields = append(fields, database.Field{Column: "nombre_categoria", Value: *u.Nombre})
	}
	if u.Descripcion != nil {
		fields = append(fields, database.Field{Column: "descripcion", Value: *u.Descripcion})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE categorias SET %s WHERE id_categoria = $%d RETURNING id_categoria, nombre_categoria, descripcion`, set, len(args)+1)
	args = append(args, id)

	cat, err := scanCategory(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	return cat, err
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM categorias WHERE id_categoria = $1`, id)
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
