// Package account holds the per-user profile extensions: the personal profile
// (DNI, birth date, gender) and the business profile (RUC, legal name). Both
// tables are keyed by id_usuario.
package account

import (
	"errors"
	"time"
)

var (
	ErrPersonalNotFound = errors.New("personal profile not found")
	ErrBusinessNotFound = errors.New("business profile not found")
)

type Personal struct {
	UserID          int        `json:"id_usuario"`
	DNI             *string    `json:"dni,omitempty"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento,omitempty"`
	Genero          *string    `json:"genero,omitempty"`

	EmailUsuario    *string `json:"email_usuario,omitempty"`
	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
}

type NewPersonal struct {
	UserID          *int    `json:"id_usuario"`
	DNI             *string `json:"dni"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Genero          *string `json:"genero"`
}

type PersonalUpdate struct {
	DNI             *string `json:"dni"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Genero          *string `json:"genero"`
}

func (u PersonalUpdate) Empty() bool {
	return u.DNI == nil && u.FechaNacimiento == nil && u.Genero == nil
}

type Business struct {
	UserID           int     `json:"id_usuario"`
	RUC              string  `json:"ruc"`
	RazonSocial      string  `json:"razon_social"`
	NombreContacto   *string `json:"nombre_contacto,omitempty"`
	TelefonoContacto *string `json:"telefono_contacto,omitempty"`
	DireccionFiscal  *string `json:"direccion_fiscal,omitempty"`

	EmailUsuario    *string `json:"email_usuario,omitempty"`
	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
}

type NewBusiness struct {
	UserID           *int    `json:"id_usuario"`
	RUC              string  `json:"ruc"`
	RazonSocial      string  `json:"razon_social"`
	NombreContacto   *string `json:"nombre_contacto"`
	TelefonoContacto *string `json:"telefono_contacto"`
	DireccionFiscal  *string `json:"direccion_fiscal"`
}

type BusinessUpdate struct {
	RUC              *string `json:"ruc"`
	RazonSocial      *string `json:"razon_social"`
	NombreContacto   *string `json:"nombre_contacto"`
	TelefonoContacto *string `json:"telefono_contacto"`
	DireccionFiscal  *string `json:"direccion_fiscal"`
}

func (u BusinessUpdate) Empty() bool {
	return u.RUC == nil && u.RazonSocial == nil && u.NombreContacto == nil &&
		u.TelefonoContacto == nil && u.DireccionFiscal == nil
}
