package promotion

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	List(f PromotionFilter) ([]Promotion, error)
	GetByID(id int) (Promotion, error)
	GetByCode(codigo string) (Promotion, error)
	Create(n NewPromotion) (Promotion, error)
	Update(id int, u PromotionUpdate) (Promotion, error)
	Delete(id int) error

	ListLinks(f LinkFilter) ([]Link, error)
	LinksForProduct(productID int) ([]Link, error)
	LinksForPromotion(promotionID int) ([]Link, error)
	CreateLink(productID, promotionID int) (Link, error)
	DeleteLink(productID, promotionID int) error

	ListFeatured(f FeaturedFilter) ([]Featured, error)
	GetFeatured(id int) (Featured, error)
	GetFeaturedByProduct(productID int) (Featured, error)
	UpsertFeatured(n NewFeatured) (Featured, error)
	UpdateFeatured(id int, u FeaturedUpdate) (Featured, error)
	DeleteFeatured(id int) error
	DeleteFeaturedByProduct(productID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const promotionColumns = `id_promocion, titulo, descripcion, descuento_porcentaje, fecha_inicio, fecha_fin, condiciones, codigo_promocion, activo`

func scanPromotion(row interface{ Scan(...any) error }) (Promotion, error) {
	var p Promotion
	var descripcion, condiciones, codigo sql.NullString
	var descuento sql.NullInt64
	var inicio, fin sql.NullTime
	err := row.Scan(&p.ID, &p.Titulo, &descripcion, &descuento, &inicio, &fin, &condiciones, &codigo, &p.Activo)
	if err != nil {
		return Promotion{}, err
	}
	p.Descripcion = database.Str(descripcion)
	p.DescuentoPorcentaje = database.IntP(descuento)
	p.FechaInicio = database.TimeP(inicio)
	p.FechaFin = database.TimeP(fin)
	p.Condiciones = database.Str(condiciones)
	p.CodigoPromocion = database.Str(codigo)
	return p, nil
}

func (r *PostgresRepository) List(f PromotionFilter) ([]Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promociones`
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if f.Activo != nil {
		args = append(args, *f.Activo)
		conditions = append(conditions, fmt.Sprintf("activo = $%d", len(args)))
	}
	if f.Codigo != nil {
		args = append(args, *f.Codigo)
		conditions = append(conditions, fmt.Sprintf("codigo_promocion ILIKE $%d", len(args)))
	}
	if f.VigentesAhora {
		hoy := time.Now().Format("2006-01-02")
		args = append(args, hoy)
		conditions = append(conditions, fmt.Sprintf("(fecha_inicio <= $%d OR fecha_inicio IS NULL)", len(args)))
		args = append(args, hoy)
		conditions = append(conditions, fmt.Sprintf("(fecha_fin >= $%d OR fecha_fin IS NULL)", len(args)))
		conditions = append(conditions, "activo = true")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY fecha_inicio DESC, titulo ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promotions := make([]Promotion, 0)
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Promotion, error) {
	p, err := scanPromotion(r.db.QueryRow(`SELECT `+promotionColumns+` FROM promociones WHERE id_promocion = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Promotion{}, ErrNotFound
	}
	return p, err
}

// GetByCode only surfaces active campaigns; an expired code looks the same as
// a missing one.
func (r *PostgresRepository) GetByCode(codigo string) (Promotion, error) {
	p, err := scanPromotion(r.db.QueryRow(`SELECT `+promotionColumns+` FROM promociones WHERE codigo_promocion ILIKE $1 AND activo = true`, codigo))
	if errors.Is(err, sql.ErrNoRows) {
		return Promotion{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(n NewPromotion) (Promotion, error) {
	activo := true
	if n.Activo != nil {
		activo = *n.Activo
	}

	var id int
	err := r.db.QueryRow(`
		INSERT INTO promociones (titulo, descripcion, descuento_porcentaje, fecha_inicio, fecha_fin, condiciones, codigo_promocion, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_promocion`,
		n.Titulo, n.Descripcion, n.DescuentoPorcentaje, n.FechaInicio, n.FechaFin, n.Condiciones, n.CodigoPromocion, activo).Scan(&id)
	if err != nil {
		return Promotion{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, u PromotionUpdate) (Promotion, error) {
	fields := make([]database.Field, 0, 8)
	if u.Titulo != nil {
		fields = append(fields, database.Field{Column: "titulo", Value: *u.Titulo})
	}
	if u.Descripcion != nil {
		fields = append(fields, database.Field{Column: "descripcion", Value: *u.Descripcion})
	}
	if u.DescuentoPorcentaje != nil {
		fields = append(fields, database.Field{Column: "descuento_porcentaje", Value: *u.DescuentoPorcentaje})
	}
	if u.FechaInicio != nil {
		fields = append(fields, database.Field{Column: "fecha_inicio", Value: *u.FechaInicio})
	}
	if u.FechaFin != nil {
		fields = append(fields, database.Field{Column: "fecha_fin", Value: *u.FechaFin})
	}
	if u.Condiciones != nil {
		fields = append(fields, database.Field{Column: "condiciones", Value: *u.Condiciones})
	}
	if u.CodigoPromocion != nil {
		fields = append(fields, database.Field{Column: "codigo_promocion", Value: *u.CodigoPromocion})
	}
	if u.Activo != nil {
		fields = append(fields, database.Field{Column: "activo", Value: *u.Activo})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE promociones SET %s WHERE id_promocion = $%d RETURNING id_promocion`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Promotion{}, ErrNotFound
	}
	if err != nil {
		return Promotion{}, err
	}
	return r.GetByID(updatedID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM promociones WHERE id_promocion = $1`, id)
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

const linkSelect = `
	SELECT pp.id_producto, pp.id_promocion,
	       p.titulo AS nombre_producto, p.precio AS precio_original_producto,
	       pr.titulo AS nombre_promocion, pr.descripcion AS descripcion_promocion,
	       pr.descuento_porcentaje, pr.fecha_inicio AS promocion_fecha_inicio,
	       pr.fecha_fin AS promocion_fecha_fin, pr.activo AS promocion_activa, pr.codigo_promocion
	FROM productos_promocionados pp
	JOIN productos p ON pp.id_producto = p.id_producto
	JOIN promociones pr ON pp.id_promocion = pr.id_promocion`

func scanLink(row interface{ Scan(...any) error }) (Link, error) {
	var l Link
	var nomP, descPr, codigo sql.NullString
	var precio sql.NullFloat64
	var nomPr sql.NullString
	var descuento sql.NullInt64
	var inicio, fin sql.NullTime
	var activa sql.NullBool
	err := row.Scan(&l.ProductoID, &l.PromocionID, &nomP, &precio, &nomPr, &descPr,
		&descuento, &inicio, &fin, &activa, &codigo)
	if err != nil {
		return Link{}, err
	}
	l.NombreProducto = database.Str(nomP)
	l.PrecioOriginalProducto = database.FloatP(precio)
	l.NombrePromocion = database.Str(nomPr)
	l.DescripcionPromocion = database.Str(descPr)
	l.DescuentoPorcentaje = database.IntP(descuento)
	l.PromocionFechaInicio = database.TimeP(inicio)
	l.PromocionFechaFin = database.TimeP(fin)
	l.PromocionActiva = database.BoolP(activa)
	l.CodigoPromocion = database.Str(codigo)
	return l, nil
}

func (r *PostgresRepository) ListLinks(f LinkFilter) ([]Link, error) {
	query := linkSelect
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.ProductoID != nil {
		args = append(args, *f.ProductoID)
		conditions = append(conditions, fmt.Sprintf("pp.id_producto = $%d", len(args)))
	}
	if f.PromocionID != nil {
		args = append(args, *f.PromocionID)
		conditions = append(conditions, fmt.Sprintf("pp.id_promocion = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pp.id_producto ASC, pp.id_promocion ASC"

	return r.queryLinks(query, args...)
}

func (r *PostgresRepository) LinksForProduct(productID int) ([]Link, error) {
	return r.queryLinks(linkSelect+` WHERE pp.id_producto = $1 ORDER BY pr.titulo ASC`, productID)
}

func (r *PostgresRepository) LinksForPromotion(promotionID int) ([]Link, error) {
	return r.queryLinks(linkSelect+` WHERE pp.id_promocion = $1 ORDER BY p.titulo ASC`, promotionID)
}

func (r *PostgresRepository) queryLinks(query string, args ...any) ([]Link, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]Link, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *PostgresRepository) CreateLink(productID, promotionID int) (Link, error) {
	var l Link
	err := r.db.QueryRow(`
		INSERT INTO productos_promocionados (id_producto, id_promocion)
		VALUES ($1, $2)
		RETURNING id_producto, id_promocion`,
		productID, promotionID).Scan(&l.ProductoID, &l.PromocionID)
	if err != nil {
		return Link{}, err
	}
	return l, nil
}

func (r *PostgresRepository) DeleteLink(productID, promotionID int) error {
	res, err := r.db.Exec(`DELETE FROM productos_promocionados WHERE id_producto = $1 AND id_promocion = $2`, productID, promotionID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLinkNotFound
	}
	return nil
}

const featuredSelect = `
	SELECT pd.id_destacado, pd.id_producto, pd.tipo_destacado, pd.fecha_inicio, pd.fecha_fin,
	       p.titulo AS nombre_producto, p.descripcion AS descripcion_producto, p.precio AS precio_producto
	FROM productos_destacados pd
	JOIN productos p ON pd.id_producto = p.id_producto`

func scanFeatured(row interface{ Scan(...any) error }) (Featured, error) {
	var f Featured
	var tipo, nombre, descripcion sql.NullString
	var inicio, fin sql.NullTime
	var precio sql.NullFloat64
	err := row.Scan(&f.ID, &f.ProductoID, &tipo, &inicio, &fin, &nombre, &descripcion, &precio)
	if err != nil {
		return Featured{}, err
	}
	f.TipoDestacado = database.Str(tipo)
	f.FechaInicio = database.TimeP(inicio)
	f.FechaFin = database.TimeP(fin)
	f.NombreProducto = database.Str(nombre)
	f.DescripcionProducto = database.Str(descripcion)
	f.PrecioProducto = database.FloatP(precio)
	return f, nil
}

func (r *PostgresRepository) ListFeatured(f FeaturedFilter) ([]Featured, error) {
	query := featuredSelect
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if f.TipoDestacado != nil {
		args = append(args, *f.TipoDestacado)
		conditions = append(conditions, fmt.Sprintf("pd.tipo_destacado = $%d", len(args)))
	}
	if f.ActivosAhora {
		hoy := time.Now().Format("2006-01-02")
		args = append(args, hoy)
		conditions = append(conditions, fmt.Sprintf("(pd.fecha_inicio <= $%d OR pd.fecha_inicio IS NULL)", len(args)))
		args = append(args, hoy)
		conditions = append(conditions, fmt.Sprintf("(pd.fecha_fin >= $%d OR pd.fecha_fin IS NULL)", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pd.fecha_inicio DESC, p.titulo ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	featured := make([]Featured, 0)
	for rows.Next() {
		f, err := scanFeatured(rows)
		if err != nil {
			return nil, err
		}
		featured = append(featured, f)
	}
	return featured, rows.Err()
}

func (r *PostgresRepository) GetFeatured(id int) (Featured, error) {
	f, err := scanFeatured(r.db.QueryRow(featuredSelect+` WHERE pd.id_destacado = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Featured{}, ErrFeaturedNotFound
	}
	return f, err
}

func (r *PostgresRepository) GetFeaturedByProduct(productID int) (Featured, error) {
	f, err := scanFeatured(r.db.QueryRow(featuredSelect+` WHERE pd.id_producto = $1`, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return Featured{}, ErrFeaturedNotFound
	}
	return f, err
}

// UpsertFeatured keeps at most one row per product; repeated posts replace the
// previous window and type.
func (r *PostgresRepository) UpsertFeatured(n NewFeatured) (Featured, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO productos_destacados (id_producto, tipo_destacado, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id_producto)
		DO UPDATE SET
			tipo_destacado = EXCLUDED.tipo_destacado,
			fecha_inicio = EXCLUDED.fecha_inicio,
			fecha_fin = EXCLUDED.fecha_fin
		RETURNING id_destacado`,
		*n.ProductoID, n.TipoDestacado, n.FechaInicio, n.FechaFin).Scan(&id)
	if err != nil {
		return Featured{}, err
	}
	return r.GetFeatured(id)
}

func (r *PostgresRepository) UpdateFeatured(id int, u FeaturedUpdate) (Featured, error) {
	fields := make([]database.Field, 0, 3)
	if u.TipoDestacado != nil {
		fields = append(fields, database.Field{Column: "tipo_destacado", Value: *u.TipoDestacado})
	}
	if u.FechaInicio != nil {
		fields = append(fields, database.Field{Column: "fecha_inicio", Value: *u.FechaInicio})
	}
	if u.FechaFin != nil {
		fields = append(fields, database.Field{Column: "fecha_fin", Value: *u.FechaFin})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE productos_destacados SET %s WHERE id_destacado = $%d RETURNING id_destacado`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Featured{}, ErrFeaturedNotFound
	}
	if err != nil {
		return Featured{}, err
	}
	return r.GetFeatured(updatedID)
}

func (r *PostgresRepository) DeleteFeatured(id int) error {
	res, err := r.db.Exec(`DELETE FROM productos_destacados WHERE id_destacado = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFeaturedNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteFeaturedByProduct(productID int) error {
	res, err := r.db.Exec(`DELETE FROM productos_destacados WHERE id_producto = $1`, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFeaturedNotFound
	}
	return nil
}
