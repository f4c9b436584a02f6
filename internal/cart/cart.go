package cart

import (
	"errors"
	"time"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("cart item not found")
)

// Cart is one per user, created lazily the first time the user needs it.
// The usuario fields come from the display join and may be absent when the
// owning row is gone.
type Cart struct {
	ID              int       `json:"id_carrito"`
	UsuarioID       int       `json:"id_usuario"`
	FechaCreacion   time.Time `json:"fecha_creacion"`
	NombreUsuario   *string   `json:"nombre_usuario,omitempty"`
	ApellidoUsuario *string   `json:"apellido_usuario,omitempty"`
	EmailUsuario    *string   `json:"email_usuario,omitempty"`
}

// Item is one (carrito, producto) row. Repeat inserts for the same pair
// merge by adding quantities instead of duplicating the row.
type Item struct {
	ID             int      `json:"id_detalle"`
	CartID         int      `json:"id_carrito"`
	ProductoID     int      `json:"id_producto"`
	Cantidad       int      `json:"cantidad"`
	NombreProducto *string  `json:"nombre_producto,omitempty"`
	PrecioActual   *float64 `json:"precio_unitario_actual_producto,omitempty"`
}
