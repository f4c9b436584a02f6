package product

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrImageNotFound = errors.New("product image not found")
)

// Estado values accepted for a listing; the store enforces the same set.
const (
	EstadoNuevo = "nuevo"
	EstadoUsado = "usado"
)

func ValidEstado(s string) bool {
	return s == EstadoNuevo || s == EstadoUsado
}

type Product struct {
	ID               int       `json:"id_producto"`
	UsuarioID        int       `json:"id_usuario"`
	CategoriaID      int       `json:"id_categoria"`
	Titulo           string    `json:"titulo"`
	Descripcion      *string   `json:"descripcion,omitempty"`
	Precio           float64   `json:"precio"`
	Stock            int       `json:"stock"`
	Estado           string    `json:"estado"`
	FechaPublicacion time.Time `json:"fecha_publicacion"`

	VendedorNombre   *string `json:"vendedor_nombre,omitempty"`
	VendedorApellido *string `json:"vendedor_apellido,omitempty"`
	VendedorEmail    *string `json:"vendedor_email,omitempty"`
	NombreCategoria  *string `json:"nombre_categoria,omitempty"`
}

type NewProduct struct {
	UsuarioID   *int     `json:"id_usuario"`
	CategoriaID *int     `json:"id_categoria"`
	Titulo      string   `json:"titulo"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio"`
	Stock       *int     `json:"stock"`
	Estado      string   `json:"estado"`
}

type Update struct {
	CategoriaID *int     `json:"id_categoria"`
	Titulo      *string  `json:"titulo"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio"`
	Stock       *int     `json:"stock"`
	Estado      *string  `json:"estado"`
}

func (u Update) Empty() bool {
	return u.CategoriaID == nil && u.Titulo == nil && u.Descripcion == nil &&
		u.Precio == nil && u.Stock == nil && u.Estado == nil
}

// Image is one gallery entry of a product; orden drives display order.
type Image struct {
	ID         int     `json:"id_imagen"`
	ProductoID int     `json:"id_producto"`
	URL        string  `json:"url_imagen"`
	Orden      *int    `json:"orden,omitempty"`
	Titulo     *string `json:"titulo_producto,omitempty"`
}

type ImageUpdate struct {
	URL   *string `json:"url_imagen"`
	Orden *int    `json:"orden"`
}
