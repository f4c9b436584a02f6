package shipment

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	List() ([]Shipment, error)
	GetByID(id int) (Shipment, error)
	GetByOrder(orderID int) (Shipment, error)
	Create(n NewShipment) (Shipment, error)
	Update(id int, u Update) (Shipment, error)
	Delete(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const shipmentSelect = `
	SELECT e.id_envio, e.id_orden, e.direccion_entrega, e.metodo_envio, e.estado_envio,
	       e.fecha_envio, e.fecha_entrega, e.costo_envio, e.numero_seguimiento,
	       o.id_usuario, o.fecha_orden
	FROM envios e
	JOIN ordenes o ON e.id_orden = o.id_orden`

func scanShipment(row interface{ Scan(...any) error }) (Shipment, error) {
	var s Shipment
	var fechaEnvio, fechaEntrega, fechaOrden sql.NullTime
	var seguimiento sql.NullString
	var usuarioID sql.NullInt64
	err := row.Scan(&s.ID, &s.OrderID, &s.DireccionEntrega, &s.MetodoEnvio, &s.EstadoEnvio,
		&fechaEnvio, &fechaEntrega, &s.CostoEnvio, &seguimiento, &usuarioID, &fechaOrden)
	if err != nil {
		return Shipment{}, err
	}
	s.FechaEnvio = database.TimeP(fechaEnvio)
	s.FechaEntrega = database.TimeP(fechaEntrega)
	s.NumeroSeguimiento = database.Str(seguimiento)
	s.UsuarioID = database.IntP(usuarioID)
	s.FechaOrden = database.TimeP(fechaOrden)
	return s, nil
}

func (r *PostgresRepository) List() ([]Shipment, error) {
	rows, err := r.db.Query(shipmentSelect + ` ORDER BY o.fecha_orden DESC, e.id_envio DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]Shipment, 0)
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Shipment, error) {
	s, err := scanShipment(r.db.QueryRow(shipmentSelect+` WHERE e.id_envio = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Shipment{}, ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) GetByOrder(orderID int) (Shipment, error) {
	s, err := scanShipment(r.db.QueryRow(shipmentSelect+` WHERE e.id_orden = $1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return Shipment{}, ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) Create(n NewShipment) (Shipment, error) {
	costo := 0.0
	if n.CostoEnvio != nil {
		costo = *n.CostoEnvio
	}

	var id int
	err := r.db.QueryRow(`
		INSERT INTO envios (id_orden, direccion_entrega, metodo_envio, estado_envio, fecha_envio, costo_envio, numero_seguimiento)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_envio`,
		*n.OrderID, n.DireccionEntrega, n.MetodoEnvio, n.EstadoEnvio, n.FechaEnvio, costo, n.NumeroSeguimiento).Scan(&id)
	if err != nil {
		return Shipment{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Update(id int, u Update) (Shipment, error) {
	fields := make([]database.Field, 0, 7)
	if u.DireccionEntrega != nil {
		fields = append(fields, database.Field{Column: "direccion_entrega", Value: *u.DireccionEntrega})
	}
	if u.MetodoEnvio != nil {
		fields = append(fields, database.Field{Column: "metodo_envio", Value: *u.MetodoEnvio})
	}
	if u.EstadoEnvio != nil {
		fields = append(fields, database.Field{Column: "estado_envio", Value: *u.EstadoEnvio})
	}
	if u.FechaEnvio != nil {
		fields = append(fields, database.Field{Column: "fecha_envio", Value: *u.FechaEnvio})
	}
	if u.FechaEntrega != nil {
		fields = append(fields, database.Field{Column: "fecha_entrega", Value: *u.FechaEntrega})
	}
	if u.CostoEnvio != nil {
		fields = append(fields, database.Field{Column: "costo_envio", Value: *u.CostoEnvio})
	}
	if u.NumeroSeguimiento != nil {
		fields = append(fields, database.Field{Column: "numero_seguimiento", Value: *u.NumeroSeguimiento})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE envios SET %s WHERE id_envio = $%d RETURNING id_envio`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Shipment{}, ErrNotFound
	}
	if err != nil {
		return Shipment{}, err
	}
	return r.GetByID(updatedID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM envios WHERE id_envio = $1`, id)
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
