package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User is the public shape of a marketplace account. The password hash is
// deliberately absent: it never leaves the repository layer.
type User struct {
	ID            int       `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	Telefono      *string   `json:"telefono,omitempty"`
	TipoUsuario   string    `json:"tipo_usuario"`
	TipoCuenta    string    `json:"tipo_cuenta"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// NewUser carries the writable fields of a registration. Contraseña arrives
// in clear over the transport and is hashed before it reaches the store.
type NewUser struct {
	Nombre      string  `json:"nombre"`
	Apellido    string  `json:"apellido"`
	Email       string  `json:"email"`
	Telefono    *string `json:"telefono"`
	Contraseña  string  `json:"contraseña"`
	TipoUsuario string  `json:"tipo_usuario"`
	TipoCuenta  string  `json:"tipo_cuenta"`
}

// UserUpdate holds the sparse update set; nil means "leave unchanged".
// Email and password are intentionally not updatable through this path.
type UserUpdate struct {
	Nombre      *string `json:"nombre"`
	Apellido    *string `json:"apellido"`
	Telefono    *string `json:"telefono"`
	TipoUsuario *string `json:"tipo_usuario"`
	TipoCuenta  *string `json:"tipo_cuenta"`
}

func (u UserUpdate) Empty() bool {
	return u.Nombre == nil && u.Apellido == nil && u.Telefono == nil &&
		u.TipoUsuario == nil && u.TipoCuenta == nil
}
