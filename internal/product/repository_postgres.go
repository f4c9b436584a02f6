package product

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mercadogaucho/api/internal/database"
)

// Repository covers productos and imagenes_producto.
type Repository interface {
	List() ([]Product, error)
	GetByID(id int) (Product, error)
	Create(n NewProduct) (Product, error)
	Update(id int, u Update) (Product, error)
	Delete(id int) error

	ListImages(productID *int) ([]Image, error)
	GetImage(id int) (Image, error)
	CreateImage(productID int, url string, orden *int) (Image, error)
	UpdateImage(id int, u ImageUpdate) (Image, error)
	DeleteImage(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productSelect = `
	SELECT p.id_producto, p.id_usuario, p.id_categoria, p.titulo, p.descripcion,
	       p.precio, p.stock, p.estado, p.fecha_publicacion,
	       u.nombre AS vendedor_nombre, u.apellido AS vendedor_apellido, u.email AS vendedor_email,
	       c.nombre_categoria
	FROM productos p
	LEFT JOIN usuarios u ON p.id_usuario = u.id_usuario
	LEFT JOIN categorias c ON p.id_categoria = c.id_categoria`

const imageSelect = `
	SELECT i.id_imagen, i.id_producto, i.url_imagen, i.orden, p.titulo AS titulo_producto
	FROM imagenes_producto i
	LEFT JOIN productos p ON i.id_producto = p.id_producto`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	var descripcion, nombre, apellido, email, categoria sql.NullString
	err := row.Scan(&p.ID, &p.UsuarioID, &p.CategoriaID, &p.Titulo, &descripcion,
		&p.Precio, &p.Stock, &p.Estado, &p.FechaPublicacion,
		&nombre, &apellido, &email, &categoria)
	if err != nil {
		return Product{}, err
	}
	p.Descripcion = database.Str(descripcion)
	p.VendedorNombre = database.Str(nombre)
	p.VendedorApellido = database.Str(apellido)
	p.VendedorEmail = database.Str(email)
	p.NombreCategoria = database.Str(categoria)
	return p, nil
}

func scanImage(row interface{ Scan(...any) error }) (Image, error) {
	var img Image
	var orden sql.NullInt64
	var titulo sql.NullString
	if err := row.Scan(&img.ID, &img.ProductoID, &img.URL, &orden, &titulo); err != nil {
		return Image{}, err
	}
	img.Orden = database.IntP(orden)
	img.Titulo = database.Str(titulo)
	return img, nil
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(productSelect + ` ORDER BY p.fecha_publicacion DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(productSelect+` WHERE p.id_producto = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(n NewProduct) (Product, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO productos (id_usuario, id_categoria, titulo, descripcion, precio, stock, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_producto`,
		*n.UsuarioID, *n.CategoriaID, n.Titulo, n.Descripcion, *n.Precio, *n.Stock, n.Estado).Scan(&id)
	if err != nil {
		return Product{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, u Update) (Product, error) {
	fields := make([]database.Field, 0, 6)
	if u.CategoriaID != nil {
		fields = append(fields, database.Field{Column: "id_categoria", Value: *u.CategoriaID})
	}
	if u.Titulo != nil {
		fields = append(fields, database.Field{Column: "titulo", Value: *u.Titulo})
	}
	if u.Descripcion != nil {
		fields = append(fields, database.Field{Column: "descripcion", Value: *u.Descripcion})
	}
	if u.Precio != nil {
		fields = append(fields, database.Field{Column: "precio", Value: *u.Precio})
	}
	if u.Stock != nil {
		fields = append(fields, database.Field{Column: "stock", Value: *u.Stock})
	}
	if u.Estado != nil {
		fields = append(fields, database.Field{Column: "estado", Value: *u.Estado})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE productos SET %s WHERE id_producto = $%d RETURNING id_producto`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return r.GetByID(updatedID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM productos WHERE id_producto = $1`, id)
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

func (r *PostgresRepository) ListImages(productID *int) ([]Image, error) {
	query := imageSelect
	args := []any{}
	if productID != nil {
		query += ` WHERE i.id_producto = $1`
		args = append(args, *productID)
	}
	query += ` ORDER BY i.id_producto ASC, COALESCE(i.orden, 0) ASC, i.id_imagen ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]Image, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *PostgresRepository) GetImage(id int) (Image, error) {
	img, err := scanImage(r.db.QueryRow(imageSelect+` WHERE i.id_imagen = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Image{}, ErrImageNotFound
	}
	return img, err
}

func (r *PostgresRepository) CreateImage(productID int, url string, orden *int) (Image, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO imagenes_producto (id_producto, url_imagen, orden)
		VALUES ($1, $2, $3)
		RETURNING id_imagen`,
		productID, url, orden).Scan(&id)
	if err != nil {
		return Image{}, err
	}
	return r.GetImage(id)
}

func (r *PostgresRepository) UpdateImage(id int, u ImageUpdate) (Image, error) {
	fields := make([]database.Field, 0, 2)
	if u.URL != nil {
		fields = append(fields, database.Field{Column: "url_imagen", Value: *u.URL})
	}
	if u.Orden != nil {
		fields = append(fields, database.Field{Column: "orden", Value: *u.Orden})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE imagenes_producto SET %s WHERE id_imagen = $%d RETURNING id_imagen`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Image{}, ErrImageNotFound
	}
	if err != nil {
		return Image{}, err
	}
	return r.GetImage(updatedID)
}

func (r *PostgresRepository) DeleteImage(id int) error {
	res, err := r.db.Exec(`DELETE FROM imagenes_producto WHERE id_imagen = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrImageNotFound
	}
	return nil
}
