package store

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("official store not found")

// Store is a seller's official storefront; estado values belong to the
// tienda_estado_enum and one user owns at most one store.
type Store struct {
	ID            int        `json:"id_tienda"`
	UserID        int        `json:"id_usuario"`
	NombreTienda  string     `json:"nombre_tienda"`
	LogoURL       *string    `json:"logo_url,omitempty"`
	Descripcion   *string    `json:"descripcion,omitempty"`
	Estado        string     `json:"estado"`
	FechaCreacion *time.Time `json:"fecha_creacion,omitempty"`

	NombrePropietario   *string `json:"nombre_propietario,omitempty"`
	ApellidoPropietario *string `json:"apellido_propietario,omitempty"`
	EmailPropietario    *string `json:"email_propietario,omitempty"`
}

type NewStore struct {
	UserID       *int    `json:"id_usuario"`
	NombreTienda string  `json:"nombre_tienda"`
	LogoURL      *string `json:"logo_url"`
	Descripcion  *string `json:"descripcion"`
	Estado       string  `json:"estado"`
}

type Update struct {
	NombreTienda *string `json:"nombre_tienda"`
	LogoURL      *string `json:"logo_url"`
	Descripcion  *string `json:"descripcion"`
	Estado       *string `json:"estado"`
}

func (u Update) Empty() bool {
	return u.NombreTienda == nil && u.LogoURL == nil && u.Descripcion == nil && u.Estado == nil
}

type Filter struct {
	Estado       *string
	NombreTienda *string
}
