package message

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	List(f Filter) ([]Message, error)
	GetByID(id int) (Message, error)
	Create(n NewMessage) (Message, error)
	Answer(id int, respuesta string) (Message, error)
	Delete(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const messageSelect = `
	SELECT m.id_mensaje, m.id_emisor, m.id_receptor, m.id_producto,
	       m.mensaje, m.respuesta, m.fecha_envio, m.fecha_respuesta,
	       emisor.nombre AS nombre_emisor, emisor.apellido AS apellido_emisor, emisor.email AS email_emisor,
	       receptor.nombre AS nombre_receptor, receptor.apellido AS apellido_receptor, receptor.email AS email_receptor,
	       p.titulo AS nombre_producto
	FROM mensajes m
	LEFT JOIN usuarios emisor ON m.id_emisor = emisor.id_usuario
	LEFT JOIN usuarios receptor ON m.id_receptor = receptor.id_usuario
	LEFT JOIN productos p ON m.id_producto = p.id_producto`

func scanMessage(row interface{ Scan(...any) error }) (Message, error) {
	var m Message
	var productoID sql.NullInt64
	var respuesta, nomE, apeE, emailE, nomR, apeR, emailR, nomP sql.NullString
	var fechaEnvio, fechaRespuesta sql.NullTime
	err := row.Scan(&m.ID, &m.EmisorID, &m.ReceptorID, &productoID,
		&m.Mensaje, &respuesta, &fechaEnvio, &fechaRespuesta,
		&nomE, &apeE, &emailE, &nomR, &apeR, &emailR, &nomP)
	if err != nil {
		return Message{}, err
	}
	m.ProductoID = database.IntP(productoID)
	m.Respuesta = database.Str(respuesta)
	m.FechaEnvio = database.TimeP(fechaEnvio)
	m.FechaRespuesta = database.TimeP(fechaRespuesta)
	m.NombreEmisor = database.Str(nomE)
	m.ApellidoEmisor = database.Str(apeE)
	m.EmailEmisor = database.Str(emailE)
	m.NombreReceptor = database.Str(nomR)
	m.ApellidoReceptor = database.Str(apeR)
	m.EmailReceptor = database.Str(emailR)
	m.NombreProducto = database.Str(nomP)
	return m, nil
}

func (r *PostgresRepository) List(f Filter) ([]Message, error) {
	query := messageSelect
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 3)

	appendCond := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}
	if f.EmisorID != nil {
		appendCond("m.id_emisor = $%d", *f.EmisorID)
	}
	if f.ReceptorID != nil {
		appendCond("m.id_receptor = $%d", *f.ReceptorID)
	}
	if f.ProductoID != nil {
		appendCond("m.id_producto = $%d", *f.ProductoID)
	}
	if f.Respondido != nil {
		if *f.Respondido {
			conditions = append(conditions, "m.respuesta IS NOT NULL")
		} else {
			conditions = append(conditions, "m.respuesta IS NULL")
		}
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY m.fecha_envio DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Message, error) {
	m, err := scanMessage(r.db.QueryRow(messageSelect+` WHERE m.id_mensaje = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Message{}, ErrNotFound
	}
	return m, err
}

func (r *PostgresRepository) Create(n NewMessage) (Message, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO mensajes (id_emisor, id_receptor, id_producto, mensaje)
		VALUES ($1, $2, $3, $4)
		RETURNING id_mensaje`,
		*n.EmisorID, *n.ReceptorID, n.ProductoID, n.Mensaje).Scan(&id)
	if err != nil {
		return Message{}, err
	}
	return r.GetByID(id)
}

// Answer only lands on an unanswered row; an existing reply is never
// overwritten.
func (r *PostgresRepository) Answer(id int, respuesta string) (Message, error) {
	var answeredID int
	err := r.db.QueryRow(`
		UPDATE mensajes
		SET respuesta = $1, fecha_respuesta = CURRENT_TIMESTAMP
		WHERE id_mensaje = $2 AND respuesta IS NULL
		RETURNING id_mensaje`,
		respuesta, id).Scan(&answeredID)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if checkErr := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM mensajes WHERE id_mensaje = $1)`, id).Scan(&exists); checkErr != nil {
			return Message{}, checkErr
		}
		if exists {
			return Message{}, ErrAlreadyAnswered
		}
		return Message{}, ErrNotFound
	}
	if err != nil {
		return Message{}, err
	}
	return r.GetByID(answeredID)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM mensajes WHERE id_mensaje = $1`, id)
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
