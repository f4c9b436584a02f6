// Package address holds the two places a user can point at: saved delivery
// addresses (direcciones) and the browsing location pin (ubicaciones_usuario).
package address

import (
	"errors"
	"time"
)

var (
	ErrAddressNotFound  = errors.New("address not found")
	ErrLocationNotFound = errors.New("user location not found")
)

type Address struct {
	ID           int     `json:"id_direccion"`
	UserID       int     `json:"id_usuario"`
	Direccion    string  `json:"direccion"`
	Ciudad       string  `json:"ciudad"`
	Departamento *string `json:"departamento,omitempty"`
	CodigoPostal *string `json:"codigo_postal,omitempty"`
	Pais         string  `json:"pais"`

	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string `json:"email_usuario,omitempty"`
}

type NewAddress struct {
	UserID       *int    `json:"id_usuario"`
	Direccion    string  `json:"direccion"`
	Ciudad       string  `json:"ciudad"`
	Departamento *string `json:"departamento"`
	CodigoPostal *string `json:"codigo_postal"`
	Pais         string  `json:"pais"`
}

type AddressUpdate struct {
	UserID       *int    `json:"id_usuario"`
	Direccion    *string `json:"direccion"`
	Ciudad       *string `json:"ciudad"`
	Departamento *string `json:"departamento"`
	CodigoPostal *string `json:"codigo_postal"`
	Pais         *string `json:"pais"`
}

func (u AddressUpdate) Empty() bool {
	return u.UserID == nil && u.Direccion == nil && u.Ciudad == nil &&
		u.Departamento == nil && u.CodigoPostal == nil && u.Pais == nil
}

// Location is the point the user last selected, either a named city or raw
// coordinates.
type Location struct {
	ID             int        `json:"id_ubicacion"`
	UserID         int        `json:"id_usuario"`
	Ciudad         *string    `json:"ciudad,omitempty"`
	Departamento   *string    `json:"departamento,omitempty"`
	Pais           *string    `json:"pais,omitempty"`
	Latitud        *float64   `json:"latitud,omitempty"`
	Longitud       *float64   `json:"longitud,omitempty"`
	FechaSeleccion *time.Time `json:"fecha_seleccion,omitempty"`

	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string `json:"email_usuario,omitempty"`
}

type NewLocation struct {
	UserID         *int       `json:"id_usuario"`
	Ciudad         *string    `json:"ciudad"`
	Departamento   *string    `json:"departamento"`
	Pais           *string    `json:"pais"`
	Latitud        *float64   `json:"latitud"`
	Longitud       *float64   `json:"longitud"`
	FechaSeleccion *time.Time `json:"fecha_seleccion"`
}

type LocationUpdate struct {
	UserID         *int       `json:"id_usuario"`
	Ciudad         *string    `json:"ciudad"`
	Departamento   *string    `json:"departamento"`
	Pais           *string    `json:"pais"`
	Latitud        *float64   `json:"latitud"`
	Longitud       *float64   `json:"longitud"`
	FechaSeleccion *time.Time `json:"fecha_seleccion"`
}

func (u LocationUpdate) Empty() bool {
	return u.UserID == nil && u.Ciudad == nil && u.Departamento == nil &&
		u.Pais == nil && u.Latitud == nil && u.Longitud == nil && u.FechaSeleccion == nil
}
