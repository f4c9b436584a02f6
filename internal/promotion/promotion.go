// Package promotion covers discount campaigns plus the two product-facing
// tables that hang off them: the campaign membership junction and the
// featured-product flags.
package promotion

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("promotion not found")
	ErrLinkNotFound     = errors.New("product-promotion link not found")
	ErrFeaturedNotFound = errors.New("featured product not found")
)

type Promotion struct {
	ID                  int        `json:"id_promocion"`
	Titulo              string     `json:"titulo"`
	Descripcion         *string    `json:"descripcion,omitempty"`
	DescuentoPorcentaje *int       `json:"descuento_porcentaje,omitempty"`
	FechaInicio         *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin            *time.Time `json:"fecha_fin,omitempty"`
	Condiciones         *string    `json:"condiciones,omitempty"`
	CodigoPromocion     *string    `json:"codigo_promocion,omitempty"`
	Activo              bool       `json:"activo"`
}

// Dates ride as YYYY-MM-DD strings so clients do not need full timestamps.
type NewPromotion struct {
	Titulo              string  `json:"titulo"`
	Descripcion         *string `json:"descripcion"`
	DescuentoPorcentaje *int    `json:"descuento_porcentaje"`
	FechaInicio         *string `json:"fecha_inicio"`
	FechaFin            *string `json:"fecha_fin"`
	Condiciones         *string `json:"condiciones"`
	CodigoPromocion     *string `json:"codigo_promocion"`
	Activo              *bool   `json:"activo"`
}

type PromotionUpdate struct {
	Titulo              *string `json:"titulo"`
	Descripcion         *string `json:"descripcion"`
	DescuentoPorcentaje *int    `json:"descuento_porcentaje"`
	FechaInicio         *string `json:"fecha_inicio"`
	FechaFin            *string `json:"fecha_fin"`
	Condiciones         *string `json:"condiciones"`
	CodigoPromocion     *string `json:"codigo_promocion"`
	Activo              *bool   `json:"activo"`
}

func (u PromotionUpdate) Empty() bool {
	return u.Titulo == nil && u.Descripcion == nil && u.DescuentoPorcentaje == nil &&
		u.FechaInicio == nil && u.FechaFin == nil && u.Condiciones == nil &&
		u.CodigoPromocion == nil && u.Activo == nil
}

type PromotionFilter struct {
	Activo        *bool
	Codigo        *string
	VigentesAhora bool
}

// Link joins one product to one campaign, enriched from both sides.
type Link struct {
	ProductoID  int `json:"id_producto"`
	PromocionID int `json:"id_promocion"`

	NombreProducto         *string    `json:"nombre_producto,omitempty"`
	PrecioOriginalProducto *float64   `json:"precio_original_producto,omitempty"`
	NombrePromocion        *string    `json:"nombre_promocion,omitempty"`
	DescripcionPromocion   *string    `json:"descripcion_promocion,omitempty"`
	DescuentoPorcentaje    *int       `json:"descuento_porcentaje,omitempty"`
	PromocionFechaInicio   *time.Time `json:"promocion_fecha_inicio,omitempty"`
	PromocionFechaFin      *time.Time `json:"promocion_fecha_fin,omitempty"`
	PromocionActiva        *bool      `json:"promocion_activa,omitempty"`
	CodigoPromocion        *string    `json:"codigo_promocion,omitempty"`
}

type LinkKey struct {
	ProductoID  *int `json:"id_producto"`
	PromocionID *int `json:"id_promocion"`
}

type LinkFilter struct {
	ProductoID  *int
	PromocionID *int
}

type Featured struct {
	ID            int        `json:"id_destacado"`
	ProductoID    int        `json:"id_producto"`
	TipoDestacado *string    `json:"tipo_destacado,omitempty"`
	FechaInicio   *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin      *time.Time `json:"fecha_fin,omitempty"`

	NombreProducto      *string  `json:"nombre_producto,omitempty"`
	DescripcionProducto *string  `json:"descripcion_producto,omitempty"`
	PrecioProducto      *float64 `json:"precio_producto,omitempty"`
}

type NewFeatured struct {
	ProductoID    *int    `json:"id_producto"`
	TipoDestacado *string `json:"tipo_destacado"`
	FechaInicio   *string `json:"fecha_inicio"`
	FechaFin      *string `json:"fecha_fin"`
}

type FeaturedUpdate struct {
	TipoDestacado *string `json:"tipo_destacado"`
	FechaInicio   *string `json:"fecha_inicio"`
	FechaFin      *string `json:"fecha_fin"`
}

func (u FeaturedUpdate) Empty() bool {
	return u.TipoDestacado == nil && u.FechaInicio == nil && u.FechaFin == nil
}

type FeaturedFilter struct {
	TipoDestacado *string
	ActivosAhora  bool
}
