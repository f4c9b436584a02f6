package order

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/mercadogaucho/api/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderSelect = `
	SELECT o.id_orden, o.id_usuario, o.fecha_orden, o.total, o.estado,
	       u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM ordenes o
	LEFT JOIN usuarios u ON o.id_usuario = u.id_usuario`

const itemSelect = `
	SELECT dod.id_detalle, dod.id_orden, dod.id_producto, dod.cantidad, dod.precio_unitario,
	       p.titulo AS nombre_producto, p.descripcion AS descripcion_producto,
	       o.id_usuario
	FROM detalle_orden dod
	LEFT JOIN productos p ON dod.id_producto = p.id_producto
	LEFT JOIN ordenes o ON dod.id_orden = o.id_orden`

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var o Order
	var nombre, apellido, email sql.NullString
	if err := row.Scan(&o.ID, &o.UsuarioID, &o.FechaOrden, &o.Total, &o.Estado, &nombre, &apellido, &email); err != nil {
		return Order{}, err
	}
	o.NombreUsuario = database.Str(nombre)
	o.ApellidoUsuario = database.Str(apellido)
	o.EmailUsuario = database.Str(email)
	return o, nil
}

func scanItem(row interface{ Scan(...any) error }) (Item, error) {
	var it Item
	var nombre, descripcion sql.NullString
	var usuarioID sql.NullInt64
	if err := row.Scan(&it.ID, &it.OrderID, &it.ProductoID, &it.Cantidad, &it.PrecioUnitario, &nombre, &descripcion, &usuarioID); err != nil {
		return Item{}, err
	}
	it.NombreProducto = database.Str(nombre)
	it.DescripcionProducto = database.Str(descripcion)
	it.UsuarioID = database.IntP(usuarioID)
	return it, nil
}

func (r *PostgresRepository) List(f Filter) ([]Order, error) {
	query := orderSelect
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	appendCond := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}
	if f.UsuarioID != nil {
		appendCond("o.id_usuario = $%d", *f.UsuarioID)
	}
	if f.Estado != nil {
		appendCond("o.estado = $%d", *f.Estado)
	}
	if f.FechaDesde != nil {
		appendCond("o.fecha_orden >= $%d", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		appendCond("o.fecha_orden <= $%d", *f.FechaHasta)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY o.fecha_orden DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) Get(id int) (Order, error) {
	o, err := scanOrder(r.db.QueryRow(orderSelect+` WHERE o.id_orden = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	orderID := o.ID
	if o.Detalles, err = r.ListItems(&orderID); err != nil {
		return Order{}, err
	}
	if o.Envio, err = r.shipmentFor(orderID); err != nil {
		return Order{}, err
	}
	if o.Pagos, err = r.paymentsFor(orderID); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) shipmentFor(orderID int) (*Shipment, error) {
	var s Shipment
	var metodo, seguimiento sql.NullString
	var fecha sql.NullTime
	var costo sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT id_envio, id_orden, direccion_entrega, metodo_envio, estado_envio, fecha_envio, costo_envio, numero_seguimiento
		FROM envios WHERE id_orden = $1`, orderID).
		Scan(&s.ID, &s.OrderID, &s.DireccionEntrega, &metodo, &s.EstadoEnvio, &fecha, &costo, &seguimiento)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.MetodoEnvio = database.Str(metodo)
	s.FechaEnvio = database.TimeP(fecha)
	s.CostoEnvio = database.FloatP(costo)
	s.NumeroSeguimiento = database.Str(seguimiento)
	return &s, nil
}

func (r *PostgresRepository) paymentsFor(orderID int) ([]Payment, error) {
	rows, err := r.db.Query(`
		SELECT id_pago, id_orden, metodo_pago, monto_pagado, fecha_pago, estado_pago, id_transaccion_externa
		FROM pagos WHERE id_orden = $1 ORDER BY fecha_pago DESC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pagos := make([]Payment, 0)
	for rows.Next() {
		var p Payment
		var fecha sql.NullTime
		var externa sql.NullString
		if err := rows.Scan(&p.ID, &p.OrderID, &p.MetodoPago, &p.MontoPagado, &fecha, &p.EstadoPago, &externa); err != nil {
			return nil, err
		}
		p.FechaPago = database.TimeP(fecha)
		p.IDTransaccionExterna = database.Str(externa)
		pagos = append(pagos, p)
	}
	return pagos, rows.Err()
}

// Create runs the whole order write inside one transaction. The deferred
// rollback releases the connection on every failure path; after a successful
// commit it is a no-op.
func (r *PostgresRepository) Create(userID int, total float64, estado string, items []NewItem) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var orderID int
	err = tx.QueryRow(`
		INSERT INTO ordenes (id_usuario, total, estado)
		VALUES ($1, $2, $3)
		RETURNING id_orden`,
		userID, total, estado).Scan(&orderID)
	if err != nil {
		return Order{}, err
	}

	for _, item := range items {
		_, err = tx.Exec(`
			INSERT INTO detalle_orden (id_orden, id_producto, cantidad, precio_unitario)
			VALUES ($1, $2, $3, $4)`,
			orderID, *item.ProductoID, *item.Cantidad, *item.PrecioUnitario)
		if err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	return r.enrichCreated(orderID)
}

// enrichCreated builds the response view outside the transaction: the order
// joined with user display fields, its raw line items, and a batch product
// title lookup instead of a per-item join.
func (r *PostgresRepository) enrichCreated(orderID int) (Order, error) {
	o, err := scanOrder(r.db.QueryRow(orderSelect+` WHERE o.id_orden = $1`, orderID))
	if err != nil {
		return Order{}, err
	}

	rows, err := r.db.Query(`
		SELECT id_detalle, id_orden, id_producto, cantidad, precio_unitario
		FROM detalle_orden WHERE id_orden = $1 ORDER BY id_detalle`, orderID)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	productIDs := make([]int, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductoID, &it.Cantidad, &it.PrecioUnitario); err != nil {
			return Order{}, err
		}
		items = append(items, it)
		productIDs = append(productIDs, it.ProductoID)
	}
	if err := rows.Err(); err != nil {
		return Order{}, err
	}

	if len(productIDs) > 0 {
		titles, err := r.productTitles(productIDs)
		if err != nil {
			return Order{}, err
		}
		for i := range items {
			if t, ok := titles[items[i].ProductoID]; ok {
				title := t
				items[i].NombreProducto = &title
			}
		}
	}

	o.Detalles = items
	return o, nil
}

func (r *PostgresRepository) productTitles(ids []int) (map[int]string, error) {
	rows, err := r.db.Query(`SELECT id_producto, titulo FROM productos WHERE id_producto = ANY($1::int[])`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[int]string, len(ids))
	for rows.Next() {
		var id int
		var titulo string
		if err := rows.Scan(&id, &titulo); err != nil {
			return nil, err
		}
		titles[id] = titulo
	}
	return titles, rows.Err()
}

func (r *PostgresRepository) Update(id int, u Update) (Order, error) {
	fields := make([]database.Field, 0, 2)
	if u.Estado != nil {
		fields = append(fields, database.Field{Column: "estado", Value: *u.Estado})
	}
	if u.Total != nil {
		fields = append(fields, database.Field{Column: "total", Value: *u.Total})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE ordenes SET %s WHERE id_orden = $%d RETURNING id_orden`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	o, err := scanOrder(r.db.QueryRow(orderSelect+` WHERE o.id_orden = $1`, updatedID))
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM ordenes WHERE id_orden = $1`, id)
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

func (r *PostgresRepository) ListItems(orderID *int) ([]Item, error) {
	query := itemSelect
	args := []any{}
	if orderID != nil {
		query += ` WHERE dod.id_orden = $1 ORDER BY dod.id_detalle ASC`
		args = append(args, *orderID)
	} else {
		query += ` ORDER BY dod.id_orden ASC, dod.id_detalle ASC`
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
	it, err := scanItem(r.db.QueryRow(itemSelect+` WHERE dod.id_detalle = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresRepository) CreateItem(orderID, productID, qty int, unitPrice float64) (Item, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO detalle_orden (id_orden, id_producto, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id_detalle`,
		orderID, productID, qty, unitPrice).Scan(&id)
	if err != nil {
		return Item{}, err
	}
	return r.GetItem(id)
}

func (r *PostgresRepository) UpdateItem(id int, u ItemUpdate) (Item, error) {
	fields := make([]database.Field, 0, 2)
	if u.Cantidad != nil {
		fields = append(fields, database.Field{Column: "cantidad", Value: *u.Cantidad})
	}
	if u.PrecioUnitario != nil {
		fields = append(fields, database.Field{Column: "precio_unitario", Value: *u.PrecioUnitario})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE detalle_orden SET %s WHERE id_detalle = $%d RETURNING id_detalle`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, err
	}
	return r.GetItem(updatedID)
}

func (r *PostgresRepository) DeleteItem(id int) error {
	res, err := r.db.Exec(`DELETE FROM detalle_orden WHERE id_detalle = $1`, id)
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
