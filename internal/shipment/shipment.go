package shipment

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("shipment not found")

// Shipment tracks delivery for exactly one order; estado_envio values belong
// to the store's envio_estado_enum.
type Shipment struct {
	ID                int        `json:"id_envio"`
	OrderID           int        `json:"id_orden"`
	DireccionEntrega  string     `json:"direccion_entrega"`
	MetodoEnvio       string     `json:"metodo_envio"`
	EstadoEnvio       string     `json:"estado_envio"`
	FechaEnvio        *time.Time `json:"fecha_envio,omitempty"`
	FechaEntrega      *time.Time `json:"fecha_entrega,omitempty"`
	CostoEnvio        float64    `json:"costo_envio"`
	NumeroSeguimiento *string    `json:"numero_seguimiento,omitempty"`

	UsuarioID  *int       `json:"id_usuario,omitempty"`
	FechaOrden *time.Time `json:"fecha_orden,omitempty"`
}

type NewShipment struct {
	OrderID           *int       `json:"id_orden"`
	DireccionEntrega  string     `json:"direccion_entrega"`
	MetodoEnvio       string     `json:"metodo_envio"`
	EstadoEnvio       string     `json:"estado_envio"`
	FechaEnvio        *time.Time `json:"fecha_envio"`
	CostoEnvio        *float64   `json:"costo_envio"`
	NumeroSeguimiento *string    `json:"numero_seguimiento"`
}

// id_orden is deliberately absent: a shipment never moves between orders.
type Update struct {
	DireccionEntrega  *string    `json:"direccion_entrega"`
	MetodoEnvio       *string    `json:"metodo_envio"`
	EstadoEnvio       *string    `json:"estado_envio"`
	FechaEnvio        *time.Time `json:"fecha_envio"`
	FechaEntrega      *time.Time `json:"fecha_entrega"`
	CostoEnvio        *float64   `json:"costo_envio"`
	NumeroSeguimiento *string    `json:"numero_seguimiento"`
}

func (u Update) Empty() bool {
	return u.DireccionEntrega == nil && u.MetodoEnvio == nil && u.EstadoEnvio == nil &&
		u.FechaEnvio == nil && u.FechaEntrega == nil && u.CostoEnvio == nil && u.NumeroSeguimiento == nil
}
