package banner

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	List(f Filter) ([]Banner, error)
	GetByID(id int) (Banner, error)
	Create(n NewBanner) (Banner, error)
	Update(id int, u Update) (Banner, error)
	Delete(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const bannerColumns = `id_banner, titulo, descripcion, imagen_url, enlace_url, fecha_inicio, fecha_fin, prioridad, ubicacion`

func scanBanner(row interface{ Scan(...any) error }) (Banner, error) {
	var b Banner
	var descripcion, enlace, ubicacion sql.NullString
	var inicio, fin sql.NullTime
	var prioridad sql.NullInt64
	err := row.Scan(&b.ID, &b.Titulo, &descripcion, &b.ImagenURL, &enlace, &inicio, &fin, &prioridad, &ubicacion)
	if err != nil {
		return Banner{}, err
	}
	b.Descripcion = database.Str(descripcion)
	b.EnlaceURL = database.Str(enlace)
	b.FechaInicio = database.TimeP(inicio)
	b.FechaFin = database.TimeP(fin)
	b.Prioridad = database.IntP(prioridad)
	b.Ubicacion = database.Str(ubicacion)
	return b, nil
}

func (r *PostgresRepository) List(f Filter) ([]Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if f.Ubicacion != nil {
		args = append(args, *f.Ubicacion)
		conditions = append(conditions, fmt.Sprintf("ubicacion = $%d", len(args)))
	}
	if f.ActivosAhora {
		hoy := time.Now().Format("2006-01-02")
		args = append(args, hoy)
		conditions = append(conditions, fmt.Sprintf("(fecha_inicio <= $%d OR fecha_inicio IS NULL)", len(args)))
		args = append(args, hoy)
		conditions = append(conditions, fmt.Sprintf("(fecha_fin >= $%d OR fecha_fin IS NULL)", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY prioridad DESC, fecha_inicio DESC, id_banner"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := make([]Banner, 0)
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Banner, error) {
	b, err := scanBanner(r.db.QueryRow(`SELECT `+bannerColumns+` FROM banners WHERE id_banner = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Banner{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresRepository) Create(n NewBanner) (Banner, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO banners (titulo, descripcion, imagen_url, enlace_url, fecha_inicio, fecha_fin, prioridad, ubicacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_banner`,
		n.Titulo, n.Descripcion, n.ImagenURL, n.EnlaceURL, n.FechaInicio, n.FechaFin, n.Prioridad, n.Ubicacion).Scan(&id)
	if err != nil {
		return Banner{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, u Update) (Banner, error) {
	fields := make([]database.Field, 0, 8)
	if u.Titulo != nil {
		fields = append(fields, database.Field{Column: "titulo", Value: *u.Titulo})
	}
	if u.Descripcion != nil {
		fields = append(fields, database.Field{Column: "descripcion", Value: *u.Descripcion})
	}
	if u.ImagenURL != nil {
		fields = append(fields, database.Field{Column: "imagen_url", Value: *u.ImagenURL})
	}
	if u.EnlaceURL != nil {
		fields = append(fields, database.Field{Column: "enlace_url", Value: *u.EnlaceURL})
	}
	if u.FechaInicio != nil {
		fields = append(fields, database.Field{Column: "fecha_inicio", Value: *u.FechaInicio})
	}
	if u.FechaFin != nil {
		fields = append(fields, database.Field{Column: "fecha_fin", Value: *u.FechaFin})
	}
	if u.Prioridad != nil {
		fields = append(fields, database.Field{Column: "prioridad", Value: *u.Prioridad})
	}
	if u.Ubicacion != nil {
		fields = append(fields, database.Field{Column: "ubicacion", Value: *u.Ubicacion})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE banners SET %s WHERE id_banner = $%d RETURNING id_banner`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Banner{}, ErrNotFound
	}
	if err != nil {
		return Banner{}, err
	}
	return r.GetByID(updatedID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM banners WHERE id_banner = $1`, id)
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
