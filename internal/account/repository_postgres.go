package account

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	ListPersonal() ([]Personal, error)
	GetPersonal(userID int) (Personal, error)
	CreatePersonal(n NewPersonal) (Personal, error)
	UpdatePersonal(userID int, u PersonalUpdate) (Personal, error)
	DeletePersonal(userID int) error

	ListBusiness() ([]Business, error)
	GetBusiness(userID int) (Business, error)
	CreateBusiness(n NewBusiness) (Business, error)
	UpdateBusiness(userID int, u BusinessUpdate) (Business, error)
	DeleteBusiness(userID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const personalSelect = `
	SELECT cp.id_usuario, cp.dni, cp.fecha_nacimiento, cp.genero,
	       u.email AS email_usuario, u.nombre AS nombre_usuario, u.apellido AS apellido_usuario
	FROM cuentas_personales cp
	JOIN usuarios u ON cp.id_usuario = u.id_usuario`

func scanPersonal(row interface{ Scan(...any) error }) (Personal, error) {
	var p Personal
	var dni, genero, email, nombre, apellido sql.NullString
	var fecha sql.NullTime
	err := row.Scan(&p.UserID, &dni, &fecha, &genero, &email, &nombre, &apellido)
	if err != nil {
		return Personal{}, err
	}
	p.DNI = database.Str(dni)
	p.FechaNacimiento = database.TimeP(fecha)
	p.Genero = database.Str(genero)
	p.EmailUsuario = database.Str(email)
	p.NombreUsuario = database.Str(nombre)
	p.ApellidoUsuario = database.Str(apellido)
	return p, nil
}

func (r *PostgresRepository) ListPersonal() ([]Personal, error) {
	rows, err := r.db.Query(personalSelect + `
	ORDER BY u.nombre, u.apellido`)
	if err != nil {
		return nil, fmt.Errorf("listing personal profiles: %w", err)
	}
	defer rows.Close()

	profiles := []Personal{}
	for rows.Next() {
		p, err := scanPersonal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning personal profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *PostgresRepository) GetPersonal(userID int) (Personal, error) {
	p, err := scanPersonal(r.db.QueryRow(personalSelect+`
	WHERE cp.id_usuario = $1`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Personal{}, ErrPersonalNotFound
	}
	if err != nil {
		return Personal{}, fmt.Errorf("fetching personal profile %d: %w", userID, err)
	}
	return p, nil
}

func (r *PostgresRepository) CreatePersonal(n NewPersonal) (Personal, error) {
	var id int
	err := r.db.QueryRow(`
	INSERT INTO cuentas_personales (id_usuario, dni, fecha_nacimiento, genero)
	VALUES ($1, $2, $3, $4)
	RETURNING id_usuario`,
		*n.UserID, n.DNI, n.FechaNacimiento, n.Genero,
	).Scan(&id)
	if err != nil {
		return Personal{}, err
	}
	return r.GetPersonal(id)
}

func (r *PostgresRepository) UpdatePersonal(userID int, u PersonalUpdate) (Personal, error) {
	fields := make([]database.Field, 0, 3)
	if u.DNI != nil {
		fields = append(fields, database.Field{Column: "dni", Value: *u.DNI})
	}
	if u.FechaNacimiento != nil {
		fields = append(fields, database.Field{Column: "fecha_nacimiento", Value: *u.FechaNacimiento})
	}
	if u.Genero != nil {
		fields = append(fields, database.Field{Column: "genero", Value: *u.Genero})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE cuentas_personales SET %s WHERE id_usuario = $%d RETURNING id_usuario`, set, len(args)+1)
	args = append(args, userID)

	var id int
	err := r.db.QueryRow(query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return Personal{}, ErrPersonalNotFound
	}
	if err != nil {
		return Personal{}, err
	}
	return r.GetPersonal(id)
}

func (r *PostgresRepository) DeletePersonal(userID int) error {
	res, err := r.db.Exec(`DELETE FROM cuentas_personales WHERE id_usuario = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting personal profile %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPersonalNotFound
	}
	return nil
}

const businessSelect = `
	SELECT ce.id_usuario, ce.ruc, ce.razon_social, ce.nombre_contacto,
	       ce.telefono_contacto, ce.direccion_fiscal,
	       u.email AS email_usuario, u.nombre AS nombre_usuario, u.apellido AS apellido_usuario
	FROM cuentas_empresa ce
	JOIN usuarios u ON ce.id_usuario = u.id_usuario`

func scanBusiness(row interface{ Scan(...any) error }) (Business, error) {
	var b Business
	var contacto, telefono, direccion, email, nombre, apellido sql.NullString
	err := row.Scan(&b.UserID, &b.RUC, &b.RazonSocial, &contacto, &telefono,
		&direccion, &email, &nombre, &apellido)
	if err != nil {
		return Business{}, err
	}
	b.NombreContacto = database.Str(contacto)
	b.TelefonoContacto = database.Str(telefono)
	b.DireccionFiscal = database.Str(direccion)
	b.EmailUsuario = database.Str(email)
	b.NombreUsuario = database.Str(nombre)
	b.ApellidoUsuario = database.Str(apellido)
	return b, nil
}

func (r *PostgresRepository) ListBusiness() ([]Business, error) {
	rows, err := r.db.Query(businessSelect + `
	ORDER BY u.nombre, u.apellido`)
	if err != nil {
		return nil, fmt.Errorf("listing business profiles: %w", err)
	}
	defer rows.Close()

	profiles := []Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning business profile: %w", err)
		}
		profiles = append(profiles, b)
	}
	return profiles, rows.Err()
}

func (r *PostgresRepository) GetBusiness(userID int) (Business, error) {
	b, err := scanBusiness(r.db.QueryRow(businessSelect+`
	WHERE ce.id_usuario = $1`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Business{}, ErrBusinessNotFound
	}
	if err != nil {
		return Business{}, fmt.Errorf("fetching business profile %d: %w", userID, err)
	}
	return b, nil
}

func (r *PostgresRepository) CreateBusiness(n NewBusiness) (Business, error) {
	var id int
	err := r.db.QueryRow(`
	INSERT INTO cuentas_empresa (id_usuario, ruc, razon_social, nombre_contacto, telefono_contacto, direccion_fiscal)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id_usuario`,
		*n.UserID, n.RUC, n.RazonSocial, n.NombreContacto, n.TelefonoContacto, n.DireccionFiscal,
	).Scan(&id)
	if err != nil {
		return Business{}, err
	}
	return r.GetBusiness(id)
}

func (r *PostgresRepository) UpdateBusiness(userID int, u BusinessUpdate) (Business, error) {
	fields := make([]database.Field, 0, 5)
	if u.RUC != nil {
		fields = append(fields, database.Field{Column: "ruc", Value: *u.RUC})
	}
	if u.RazonSocial != nil {
		fields = append(fields, database.Field{Column: "razon_social", Value: *u.RazonSocial})
	}
	if u.NombreContacto != nil {
		fields = append(fields, database.Field{Column: "nombre_contacto", Value: *u.NombreContacto})
	}
	if u.TelefonoContacto != nil {
		fields = append(fields, database.Field{Column: "telefono_contacto", Value: *u.TelefonoContacto})
	}
	if u.DireccionFiscal != nil {
		fields = append(fields, database.Field{Column: "direccion_fiscal", Value: *u.DireccionFiscal})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE cuentas_empresa SET %s WHERE id_usuario = $%d RETURNING id_usuario`, set, len(args)+1)
	args = append(args, userID)

	var id int
	err := r.db.QueryRow(query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return Business{}, ErrBusinessNotFound
	}
	if err != nil {
		return Business{}, err
	}
	return r.GetBusiness(id)
}

func (r *PostgresRepository) DeleteBusiness(userID int) error {
	res, err := r.db.Exec(`DELETE FROM cuentas_empresa WHERE id_usuario = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting business profile %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
