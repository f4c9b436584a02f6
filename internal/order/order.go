package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrItemNotFound = errors.New("order item not found")
)

// Order groups a user's purchase. Estado values are owned by the store's
// orden_estado_enum; the application writes them through without a
// transition graph.
type Order struct {
	ID              int       `json:"id_orden"`
	UsuarioID       int       `json:"id_usuario"`
	FechaOrden      time.Time `json:"fecha_orden"`
	Total           float64   `json:"total"`
	Estado          string    `json:"estado"`
	NombreUsuario   *string   `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string   `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string   `json:"email_usuario,omitempty"`
	Detalles        []Item    `json:"detalles,omitempty"`
	Envio           *Shipment `json:"envio,omitempty"`
	Pagos           []Payment `json:"pagos,omitempty"`
}

// Item is an order line: quantity and the unit price captured at order
// time, immune to later product price changes.
type Item struct {
	ID                  int     `json:"id_detalle"`
	OrderID             int     `json:"id_orden"`
	ProductoID          int     `json:"id_producto"`
	Cantidad            int     `json:"cantidad"`
	PrecioUnitario      float64 `json:"precio_unitario"`
	NombreProducto      *string `json:"nombre_producto,omitempty"`
	DescripcionProducto *string `json:"descripcion_producto,omitempty"`
	UsuarioID           *int    `json:"id_usuario,omitempty"`
}

// Shipment and Payment are the read-model rows attached to a single-order
// fetch; their write paths live in internal/shipment and internal/payment.
type Shipment struct {
	ID                int        `json:"id_envio"`
	OrderID           int        `json:"id_orden"`
	DireccionEntrega  string     `json:"direccion_entrega"`
	MetodoEnvio       *string    `json:"metodo_envio,omitempty"`
	EstadoEnvio       string     `json:"estado_envio"`
	FechaEnvio        *time.Time `json:"fecha_envio,omitempty"`
	CostoEnvio        *float64   `json:"costo_envio,omitempty"`
	NumeroSeguimiento *string    `json:"numero_seguimiento,omitempty"`
}

type Payment struct {
	ID                   int        `json:"id_pago"`
	OrderID              int        `json:"id_orden"`
	MetodoPago           string     `json:"metodo_pago"`
	MontoPagado          float64    `json:"monto_pagado"`
	FechaPago            *time.Time `json:"fecha_pago,omitempty"`
	EstadoPago           string     `json:"estado_pago"`
	IDTransaccionExterna *string    `json:"id_transaccion_externa,omitempty"`
}

// NewItem is one requested line of an order creation.
type NewItem struct {
	ProductoID     *int     `json:"id_producto"`
	Cantidad       *int     `json:"cantidad"`
	PrecioUnitario *float64 `json:"precio_unitario"`
}

// Filter narrows the order listing.
type Filter struct {
	UsuarioID  *int
	Estado     *string
	FechaDesde *time.Time
	FechaHasta *time.Time
}

// Update is the sparse update set for an order.
type Update struct {
	Estado *string  `json:"estado"`
	Total  *float64 `json:"total"`
}

// ItemUpdate is the sparse update set for a line item.
type ItemUpdate struct {
	Cantidad       *int     `json:"cantidad"`
	PrecioUnitario *float64 `json:"precio_unitario"`
}
