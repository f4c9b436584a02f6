package token

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("auth token not found")

// Token is one issued credential row. The token value is returned on create
// and lookup by ID, but validation responses omit it.
type Token struct {
	ID         int        `json:"id_token"`
	UserID     int        `json:"id_usuario"`
	Token      string     `json:"token,omitempty"`
	CreadoEn   *time.Time `json:"creado_en,omitempty"`
	Expiracion time.Time  `json:"expiracion"`
	IPOrigen   *string    `json:"ip_origen,omitempty"`

	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string `json:"email_usuario,omitempty"`
}

// Token is optional on create: when absent the service mints a signed JWT for
// the user.
type NewToken struct {
	UserID     *int       `json:"id_usuario"`
	Token      string     `json:"token"`
	Expiracion *time.Time `json:"expiracion"`
	IPOrigen   *string    `json:"ip_origen"`
}

type Update struct {
	Expiracion *time.Time `json:"expiracion"`
	IPOrigen   *string    `json:"ip_origen"`
}

func (u Update) Empty() bool {
	return u.Expiracion == nil && u.IPOrigen == nil
}

type Filter struct {
	UserID   *int
	Expirado *bool
}
