package payment

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("payment not found")

// Payment is one attempt against an order; estado_pago values belong to the
// store's pago_estado_enum.
type Payment struct {
	ID                   int        `json:"id_pago"`
	OrderID              int        `json:"id_orden"`
	MetodoPago           string     `json:"metodo_pago"`
	MontoPagado          float64    `json:"monto_pagado"`
	FechaPago            *time.Time `json:"fecha_pago,omitempty"`
	EstadoPago           string     `json:"estado_pago"`
	IDTransaccionExterna *string    `json:"id_transaccion_externa,omitempty"`

	UsuarioID       *int    `json:"id_usuario,omitempty"`
	NombreUsuario   *string `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string `json:"email_usuario,omitempty"`
}

type NewPayment struct {
	OrderID              *int       `json:"id_orden"`
	MetodoPago           string     `json:"metodo_pago"`
	MontoPagado          *float64   `json:"monto_pagado"`
	EstadoPago           string     `json:"estado_pago"`
	IDTransaccionExterna *string    `json:"id_transaccion_externa"`
	FechaPago            *time.Time `json:"fecha_pago"`
}

type Update struct {
	MetodoPago           *string  `json:"metodo_pago"`
	MontoPagado          *float64 `json:"monto_pagado"`
	EstadoPago           *string  `json:"estado_pago"`
	IDTransaccionExterna *string  `json:"id_transaccion_externa"`
}

func (u Update) Empty() bool {
	return u.MetodoPago == nil && u.MontoPagado == nil && u.EstadoPago == nil && u.IDTransaccionExterna == nil
}

type Filter struct {
	OrderID    *int
	EstadoPago *string
	FechaDesde *time.Time
	FechaHasta *time.Time
}
