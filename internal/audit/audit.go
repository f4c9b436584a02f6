// Package audit exposes the two append-only trails: activity logs and login
// records. Rows can be listed and created but never changed or removed over
// the API.
package audit

import (
	"errors"
	"time"
)

var (
	ErrLogNotFound   = errors.New("activity log not found")
	ErrLoginNotFound = errors.New("login record not found")
)

type Log struct {
	ID          int        `json:"id_log"`
	UserID      *int       `json:"id_usuario,omitempty"`
	Accion      string     `json:"accion"`
	Fecha       *time.Time `json:"fecha,omitempty"`
	Descripcion *string    `json:"descripcion,omitempty"`

	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string `json:"email_usuario,omitempty"`
}

type NewLog struct {
	UserID      *int    `json:"id_usuario"`
	Accion      string  `json:"accion"`
	Descripcion *string `json:"descripcion"`
}

type LogFilter struct {
	UserID     *int
	Accion     *string
	FechaDesde *time.Time
	FechaHasta *time.Time
}

type Login struct {
	ID          int        `json:"id_sesion"`
	UserID      *int       `json:"id_usuario,omitempty"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	IPOrigen    *string    `json:"ip_origen,omitempty"`
	Dispositivo *string    `json:"dispositivo,omitempty"`
	Navegador   *string    `json:"navegador,omitempty"`
	Exito       bool       `json:"exito"`

	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string `json:"email_usuario,omitempty"`
}

type NewLogin struct {
	UserID      *int    `json:"id_usuario"`
	IPOrigen    *string `json:"ip_origen"`
	Dispositivo *string `json:"dispositivo"`
	Navegador   *string `json:"navegador"`
	Exito       *bool   `json:"exito"`
}

type LoginFilter struct {
	UserID     *int
	Exito      *bool
	FechaDesde *time.Time
	FechaHasta *time.Time
}
