package payment

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mercadogaucho/api/internal/database"
)

// Repository provides access to the pagos table.
type Repository interface {
	List(f Filter) ([]Payment, error)
	GetByID(id int) (Payment, error)
	Create(n NewPayment) (Payment, error)
	Update(id int, u Update) (Payment, error)
	Delete(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// The order join is INNER on purpose: a payment without its order is a
// broken row and should not surface.
const paymentSelect = `
	SELECT pg.id_pago, pg.id_orden, pg.metodo_pago, pg.monto_pagado, pg.fecha_pago,
	       pg.estado_pago, pg.id_transaccion_externa,
	       o.id_usuario, u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM pagos pg
	JOIN ordenes o ON pg.id_orden = o.id_orden
	LEFT JOIN usuarios u ON o.id_usuario = u.id_usuario`

func scanPayment(row interface{ Scan(...any) error }) (Payment, error) {
	var p Payment
	var fecha sql.NullTime
	var externa, nombre, apellido, email sql.NullString
	var usuarioID sql.NullInt64
	err := row.Scan(&p.ID, &p.OrderID, &p.MetodoPago, &p.MontoPagado, &fecha,
		&p.EstadoPago, &externa, &usuarioID, &nombre, &apellido, &email)
	if err != nil {
		return Payment{}, err
	}
	p.FechaPago = database.TimeP(fecha)
	p.IDTransaccionExterna = database.Str(externa)
	p.UsuarioID = database.IntP(usuarioID)
	p.NombreUsuario = database.Str(nombre)
	p.ApellidoUsuario = database.Str(apellido)
	p.EmailUsuario = database.Str(email)
	return p, nil
}

func (r *PostgresRepository) List(f Filter) ([]Payment, error) {
	query := paymentSelect
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	appendCond := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}
	if f.OrderID != nil {
		appendCond("pg.id_orden = $%d", *f.OrderID)
	}
	if f.EstadoPago != nil {
		appendCond("pg.estado_pago = $%d", *f.EstadoPago)
	}
	if f.FechaDesde != nil {
		appendCond("pg.fecha_pago >= $%d", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		appendCond("pg.fecha_pago <= $%d", *f.FechaHasta)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pg.fecha_pago DESC, pg.id_pago DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Payment, error) {
	p, err := scanPayment(r.db.QueryRow(paymentSelect+` WHERE pg.id_pago = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Payment{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(n NewPayment) (Payment, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO pagos (id_orden, metodo_pago, monto_pagado, estado_pago, id_transaccion_externa, fecha_pago)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, CURRENT_TIMESTAMP))
		RETURNING id_pago`,
		*n.OrderID, n.MetodoPago, *n.MontoPagado, n.EstadoPago, n.IDTransaccionExterna, n.FechaPago).Scan(&id)
	if err != nil {
		return Payment{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, u Update) (Payment, error) {
	fields := make([]database.Field, 0, 4)
	if u.MetodoPago != nil {
		fields = append(fields, database.Field{Column: "metodo_pago", Value: *u.MetodoPago})
	}
	if u.MontoPagado != nil {
		fields = append(fields, database.Field{Column: "monto_pagado", Value: *u.MontoPagado})
	}
	if u.EstadoPago != nil {
		fields = append(fields, database.Field{Column: "estado_pago", Value: *u.EstadoPago})
	}
	if u.IDTransaccionExterna != nil {
		fields = append(fields, database.Field{Column: "id_transaccion_externa", Value: *u.IDTransaccionExterna})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE pagos SET %s WHERE id_pago = $%d RETURNING id_pago`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Payment{}, ErrNotFound
	}
	if err != nil {
		return Payment{}, err
	}
	return r.GetByID(updatedID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM pagos WHERE id_pago = $1`, id)
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
