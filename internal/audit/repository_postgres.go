package audit

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	ListLogs(f LogFilter) ([]Log, error)
	GetLog(id int) (Log, error)
	CreateLog(n NewLog) (Log, error)

	ListLogins(f LoginFilter) ([]Login, error)
	GetLogin(id int) (Login, error)
	CreateLogin(n NewLogin) (Login, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const logSelect = `
	SELECT la.id_log, la.id_usuario, la.accion, la.fecha, la.descripcion,
	       u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM logs_actividad la
	LEFT JOIN usuarios u ON la.id_usuario = u.id_usuario`

func scanLog(row interface{ Scan(...any) error }) (Log, error) {
	var l Log
	var userID sql.NullInt64
	var fecha sql.NullTime
	var descripcion, nombre, apellido, email sql.NullString
	err := row.Scan(&l.ID, &userID, &l.Accion, &fecha, &descripcion, &nombre, &apellido, &email)
	if err != nil {
		return Log{}, err
	}
	l.UserID = database.IntP(userID)
	l.Fecha = database.TimeP(fecha)
	l.Descripcion = database.Str(descripcion)
	l.NombreUsuario = database.Str(nombre)
	l.ApellidoUsuario = database.Str(apellido)
	l.EmailUsuario = database.Str(email)
	return l, nil
}

func (r *PostgresRepository) ListLogs(f LogFilter) ([]Log, error) {
	query := logSelect
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	appendCond := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}
	if f.UserID != nil {
		appendCond("la.id_usuario = $%d", *f.UserID)
	}
	if f.Accion != nil {
		appendCond("la.accion ILIKE $%d", "%"+*f.Accion+"%")
	}
	if f.FechaDesde != nil {
		appendCond("la.fecha >= $%d", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		appendCond("la.fecha <= $%d", *f.FechaHasta)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY la.fecha DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]Log, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *PostgresRepository) GetLog(id int) (Log, error) {
	l, err := scanLog(r.db.QueryRow(logSelect+` WHERE la.id_log = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Log{}, ErrLogNotFound
	}
	return l, err
}

func (r *PostgresRepository) CreateLog(n NewLog) (Log, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO logs_actividad (id_usuario, accion, descripcion)
		VALUES ($1, $2, $3)
		RETURNING id_log`,
		n.UserID, n.Accion, n.Descripcion).Scan(&id)
	if err != nil {
		return Log{}, err
	}
	return r.GetLog(id)
}

const loginSelect = `
	SELECT isl.id_sesion, isl.id_usuario, isl.fecha_inicio, isl.ip_origen,
	       isl.dispositivo, isl.navegador, isl.exito,
	       u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM inicios_sesion isl
	LEFT JOIN usuarios u ON isl.id_usuario = u.id_usuario`

func scanLogin(row interface{ Scan(...any) error }) (Login, error) {
	var l Login
	var userID sql.NullInt64
	var fecha sql.NullTime
	var ip, dispositivo, navegador, nombre, apellido, email sql.NullString
	err := row.Scan(&l.ID, &userID, &fecha, &ip, &dispositivo, &navegador, &l.Exito,
		&nombre, &apellido, &email)
	if err != nil {
		return Login{}, err
	}
	l.UserID = database.IntP(userID)
	l.FechaInicio = database.TimeP(fecha)
	l.IPOrigen = database.Str(ip)
	l.Dispositivo = database.Str(dispositivo)
	l.Navegador = database.Str(navegador)
	l.NombreUsuario = database.Str(nombre)
	l.ApellidoUsuario = database.Str(apellido)
	l.EmailUsuario = database.Str(email)
	return l, nil
}

func (r *PostgresRepository) ListLogins(f LoginFilter) ([]Login, error) {
	query := loginSelect
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	appendCond := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}
	if f.UserID != nil {
		appendCond("isl.id_usuario = $%d", *f.UserID)
	}
	if f.Exito != nil {
		appendCond("isl.exito = $%d", *f.Exito)
	}
	if f.FechaDesde != nil {
		appendCond("isl.fecha_inicio >= $%d", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		appendCond("isl.fecha_inicio <= $%d", *f.FechaHasta)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY isl.fecha_inicio DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logins := make([]Login, 0)
	for rows.Next() {
		l, err := scanLogin(rows)
		if err != nil {
			return nil, err
		}
		logins = append(logins, l)
	}
	return logins, rows.Err()
}

func (r *PostgresRepository) GetLogin(id int) (Login, error) {
	l, err := scanLogin(r.db.QueryRow(loginSelect+` WHERE isl.id_sesion = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Login{}, ErrLoginNotFound
	}
	return l, err
}

func (r *PostgresRepository) CreateLogin(n NewLogin) (Login, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO inicios_sesion (id_usuario, ip_origen, dispositivo, navegador, exito)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_sesion`,
		n.UserID, n.IPOrigen, n.Dispositivo, n.Navegador, *n.Exito).Scan(&id)
	if err != nil {
		return Login{}, err
	}
	return r.GetLogin(id)
}
