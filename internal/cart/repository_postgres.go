package cart

import (
	"database/sql"
	"errors"

	"github.com/mercadogaucho/api/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const cartSelect = `
	SELECT c.id_carrito, c.id_usuario, c.fecha_creacion,
	       u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM carritos c
	LEFT JOIN usuarios u ON c.id_usuario = u.id_usuario`

const itemSelect = `
	SELECT cd.id_detalle, cd.id_carrito, cd.id_producto, cd.cantidad,
	       p.titulo AS nombre_producto, p.precio AS precio_unitario_actual_producto
	FROM carrito_detalle cd
	LEFT JOIN productos p ON cd.id_producto = p.id_producto`

func scanCart(row interface{ Scan(...any) error }) (Cart, error) {
	var c Cart
	var nombre, apellido, email sql.NullString
	if err := row.Scan(&c.ID, &c.UsuarioID, &c.FechaCreacion, &nombre, &apellido, &email); err != nil {
		return Cart{}, err
	}
	c.NombreUsuario = database.Str(nombre)
	c.ApellidoUsuario = database.Str(apellido)
	c.EmailUsuario = database.Str(email)
	return c, nil
}

func scanItem(row interface{ Scan(...any) error }) (Item, error) {
	var it Item
	var nombre sql.NullString
	var precio sql.NullFloat64
	if err := row.Scan(&it.ID, &it.CartID, &it.ProductoID, &it.Cantidad, &nombre, &precio); err != nil {
		return Item{}, err
	}
	it.NombreProducto = database.Str(nombre)
	it.PrecioActual = database.FloatP(precio)
	return it, nil
}

func (r *PostgresRepository) ListCarts() ([]Cart, error) {
	rows, err := r.db.Query(cartSelect + ` ORDER BY c.fecha_creacion DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carts := make([]Cart, 0)
	for rows.Next() {
		c, err := scanCart(rows)
		if err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}
	return carts, rows.Err()
}

func (r *PostgresRepository) GetCart(id int) (Cart, error) {
	c, err := scanCart(r.db.QueryRow(cartSelect+` WHERE c.id_carrito = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Cart{}, ErrCartNotFound
	}
	return c, err
}

func (r *PostgresRepository) GetCartByUser(userID int) (Cart, error) {
	c, err := scanCart(r.db.QueryRow(cartSelect+` WHERE c.id_usuario = $1`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Cart{}, ErrCartNotFound
	}
	return c, err
}

// EnsureCart implements the get-or-create flow as one transaction: look the
// cart up, insert it when missing, re-read it joined with the user's display
// fields, commit. The deferred rollback is a no-op after commit and releases
// the connection on every failure path.
func (r *PostgresRepository) EnsureCart(userID int) (Cart, bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Cart{}, false, err
	}
	defer tx.Rollback()

	var cartID int
	existed := true
	err = tx.QueryRow(`SELECT id_carrito FROM carritos WHERE id_usuario = $1`, userID).Scan(&cartID)
	if errors.Is(err, sql.ErrNoRows) {
		existed = false
		err = tx.QueryRow(`INSERT INTO carritos (id_usuario) VALUES ($1) RETURNING id_carrito`, userID).Scan(&cartID)
	}
	if err != nil {
		return Cart{}, false, err
	}

	c, err := scanCart(tx.QueryRow(cartSelect+` WHERE c.id_carrito = $1`, cartID))
	if err != nil {
		return Cart{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return Cart{}, false, err
	}
	return c, existed, nil
}

func (r *PostgresRepository) DeleteCart(id int) error {
	return r.deleteCartWhere(`id_carrito`, id)
}

func (r *PostgresRepository) DeleteCartByUser(userID int) error {
	return r.deleteCartWhere(`id_usuario`, userID)
}

func (r *PostgresRepository) deleteCartWhere(column string, value int) error {
	res, err := r.db.Exec(`DELETE FROM carritos WHERE `+column+` = $1`, value)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (r *PostgresRepository) ListItems(cartID *int) ([]Item, error) {
	query := itemSelect
	args := []any{}
	if cartID != nil {
		query += ` WHERE cd.id_carrito = $1 ORDER BY cd.id_detalle ASC`
		args = append(args, *cartID)
	} else {
		query += ` ORDER BY cd.id_carrito ASC, cd.id_detalle ASC`
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(id int) (Item, error) {
	it, err := scanItem(r.db.QueryRow(itemSelect+` WHERE cd.id_detalle = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	return it, err
}

// UpsertItem relies on the store's unique (id_carrito, id_producto) pair:
// the merge happens inside one statement so concurrent adds to the same
// pair cannot lose updates.
func (r *PostgresRepository) UpsertItem(cartID, productID, qty int) (Item, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO carrito_detalle (id_carrito, id_producto, cantidad)
		VALUES ($1, $2, $3)
		ON CONFLICT (id_carrito, id_producto)
		DO UPDATE SET cantidad = carrito_detalle.cantidad + EXCLUDED.cantidad
		RETURNING id_detalle`,
		cartID, productID, qty).Scan(&id)
	if err != nil {
		return Item{}, err
	}
	return r.GetItem(id)
}

func (r *PostgresRepository) UpdateItemQuantity(id, qty int) (Item, error) {
	var updatedID int
	err := r.db.QueryRow(`UPDATE carrito_detalle SET cantidad = $1 WHERE id_detalle = $2 RETURNING id_detalle`, qty, id).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, err
	}
	return r.GetItem(updatedID)
}

func (r *PostgresRepository) DeleteItem(id int) error {
	res, err := r.db.Exec(`DELETE FROM carrito_detalle WHERE id_detalle = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}
