package address

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mercadogaucho/api/internal/database"
)

type Repository interface {
	ListAddresses(userID *int) ([]Address, error)
	GetAddress(id int) (Address, error)
	CreateAddress(n NewAddress) (Address, error)
	UpdateAddress(id int, u AddressUpdate) (Address, error)
	DeleteAddress(id int) error

	ListLocations(userID *int) ([]Location, error)
	GetLocation(id int) (Location, error)
	CreateLocation(n NewLocation) (Location, error)
	UpdateLocation(id int, u LocationUpdate) (Location, error)
	DeleteLocation(id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const addressSelect = `
	SELECT d.id_direccion, d.id_usuario, d.direccion, d.ciudad, d.departamento, d.codigo_postal, d.pais,
	       u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM direcciones d
	LEFT JOIN usuarios u ON d.id_usuario = u.id_usuario`

func scanAddress(row interface{ Scan(...any) error }) (Address, error) {
	var a Address
	var departamento, codigoPostal, nombre, apellido, email sql.NullString
	err := row.Scan(&a.ID, &a.UserID, &a.Direccion, &a.Ciudad, &departamento, &codigoPostal, &a.Pais,
		&nombre, &apellido, &email)
	if err != nil {
		return Address{}, err
	}
	a.Departamento = database.Str(departamento)
	a.CodigoPostal = database.Str(codigoPostal)
	a.NombreUsuario = database.Str(nombre)
	a.ApellidoUsuario = database.Str(apellido)
	a.EmailUsuario = database.Str(email)
	return a, nil
}

func (r *PostgresRepository) ListAddresses(userID *int) ([]Address, error) {
	query := addressSelect
	args := []any{}
	if userID != nil {
		query += ` WHERE d.id_usuario = $1 ORDER BY d.id_direccion ASC`
		args = append(args, *userID)
	} else {
		query += ` ORDER BY d.id_usuario ASC, d.id_direccion ASC`
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *PostgresRepository) GetAddress(id int) (Address, error) {
	a, err := scanAddress(r.db.QueryRow(addressSelect+` WHERE d.id_direccion = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Address{}, ErrAddressNotFound
	}
	return a, err
}

func (r *PostgresRepository) CreateAddress(n NewAddress) (Address, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO direcciones (id_usuario, direccion, ciudad, departamento, codigo_postal, pais)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_direccion`,
		*n.UserID, n.Direccion, n.Ciudad, n.Departamento, n.CodigoPostal, n.Pais).Scan(&id)
	if err != nil {
		return Address{}, err
	}
	return r.GetAddress(id)
}

func (r *PostgresRepository) UpdateAddress(id int, u AddressUpdate) (Address, error) {
	fields := make([]database.Field, 0, 6)
	if u.UserID != nil {
		fields = append(fields, database.Field{Column: "id_usuario", Value: *u.UserID})
	}
	if u.Direccion != nil {
		fields = append(fields, database.Field{Column: "direccion", Value: *u.Direccion})
	}
	if u.Ciudad != nil {
		fields = append(fields, database.Field{Column: "ciudad", Value: *u.Ciudad})
	}
	if u.Departamento != nil {
		fields = append(fields, database.Field{Column: "departamento", Value: *u.Departamento})
	}
	if u.CodigoPostal != nil {
		fields = append(fields, database.Field{Column: "codigo_postal", Value: *u.CodigoPostal})
	}
	if u.Pais != nil {
		fields = append(fields, database.Field{Column: "pais", Value: *u.Pais})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE direcciones SET %s WHERE id_direccion = $%d RETURNING id_direccion`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Address{}, ErrAddressNotFound
	}
	if err != nil {
		return Address{}, err
	}
	return r.GetAddress(updatedID)
}

func (r *PostgresRepository) DeleteAddress(id int) error {
	res, err := r.db.Exec(`DELETE FROM direcciones WHERE id_direccion = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAddressNotFound
	}
	return nil
}

const locationSelect = `
	SELECT uu.id_ubicacion, uu.id_usuario, uu.ciudad, uu.departamento, uu.pais,
	       uu.latitud, uu.longitud, uu.fecha_seleccion,
	       u.nombre AS nombre_usuario, u.apellido AS apellido_usuario, u.email AS email_usuario
	FROM ubicaciones_usuario uu
	LEFT JOIN usuarios u ON uu.id_usuario = u.id_usuario`

func scanLocation(row interface{ Scan(...any) error }) (Location, error) {
	var l Location
	var ciudad, departamento, pais, nombre, apellido, email sql.NullString
	var latitud, longitud sql.NullFloat64
	var fecha sql.NullTime
	err := row.Scan(&l.ID, &l.UserID, &ciudad, &departamento, &pais,
		&latitud, &longitud, &fecha, &nombre, &apellido, &email)
	if err != nil {
		return Location{}, err
	}
	l.Ciudad = database.Str(ciudad)
	l.Departamento = database.Str(departamento)
	l.Pais = database.Str(pais)
	l.Latitud = database.FloatP(latitud)
	l.Longitud = database.FloatP(longitud)
	l.FechaSeleccion = database.TimeP(fecha)
	l.NombreUsuario = database.Str(nombre)
	l.ApellidoUsuario = database.Str(apellido)
	l.EmailUsuario = database.Str(email)
	return l, nil
}

func (r *PostgresRepository) ListLocations(userID *int) ([]Location, error) {
	query := locationSelect
	args := []any{}
	if userID != nil {
		query += ` WHERE uu.id_usuario = $1 ORDER BY uu.fecha_seleccion DESC, uu.id_ubicacion DESC`
		args = append(args, *userID)
	} else {
		query += ` ORDER BY uu.id_usuario ASC, uu.fecha_seleccion DESC, uu.id_ubicacion DESC`
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *PostgresRepository) GetLocation(id int) (Location, error) {
	l, err := scanLocation(r.db.QueryRow(locationSelect+` WHERE uu.id_ubicacion = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Location{}, ErrLocationNotFound
	}
	return l, err
}

func (r *PostgresRepository) CreateLocation(n NewLocation) (Location, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO ubicaciones_usuario (id_usuario, ciudad, departamento, pais, latitud, longitud, fecha_seleccion)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, CURRENT_TIMESTAMP))
		RETURNING id_ubicacion`,
		*n.UserID, n.Ciudad, n.Departamento, n.Pais, n.Latitud, n.Longitud, n.FechaSeleccion).Scan(&id)
	if err != nil {
		return Location{}, err
	}
	return r.GetLocation(id)
}

func (r *PostgresRepository) UpdateLocation(id int, u LocationUpdate) (Location, error) {
	fields := make([]database.Field, 0, 7)
	if u.UserID != nil {
		fields = append(fields, database.Field{Column: "id_usuario", Value: *u.UserID})
	}
	if u.Ciudad != nil {
		fields = append(fields, database.Field{Column: "ciudad", Value: *u.Ciudad})
	}
	if u.Departamento != nil {
		fields = append(fields, database.Field{Column: "departamento", Value: *u.Departamento})
	}
	if u.Pais != nil {
		fields = append(fields, database.Field{Column: "pais", Value: *u.Pais})
	}
	if u.Latitud != nil {
		fields = append(fields, database.Field{Column: "latitud", Value: *u.Latitud})
	}
	if u.Longitud != nil {
		fields = append(fields, database.Field{Column: "longitud", Value: *u.Longitud})
	}
	if u.FechaSeleccion != nil {
		fields = append(fields, database.Field{Column: "fecha_seleccion", Value: *u.FechaSeleccion})
	}

	set, args := database.SetClause(fields)
	query := fmt.Sprintf(`UPDATE ubicaciones_usuario SET %s WHERE id_ubicacion = $%d RETURNING id_ubicacion`, set, len(args)+1)
	args = append(args, id)

	var updatedID int
	err := r.db.QueryRow(query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return Location{}, ErrLocationNotFound
	}
	if err != nil {
		return Location{}, err
	}
	return r.GetLocation(updatedID)
}

func (r *PostgresRepository) DeleteLocation(id int) error {
	res, err := r.db.Exec(`DELETE FROM ubicaciones_usuario WHERE id_ubicacion = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLocationNotFound
	}
	return nil
}
