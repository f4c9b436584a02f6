package banner

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("banner not found")

type Banner struct {
	ID          int        `json:"id_banner"`
	Titulo      string     `json:"titulo"`
	Descripcion *string    `json:"descripcion,omitempty"`
	ImagenURL   string     `json:"imagen_url"`
	EnlaceURL   *string    `json:"enlace_url,omitempty"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`
	Prioridad   *int       `json:"prioridad,omitempty"`
	Ubicacion   *string    `json:"ubicacion,omitempty"`
}

type NewBanner struct {
	Titulo      string  `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	ImagenURL   string  `json:"imagen_url"`
	EnlaceURL   *string `json:"enlace_url"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Prioridad   *int    `json:"prioridad"`
	Ubicacion   *string `json:"ubicacion"`
}

type Update struct {
	Titulo      *string `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	ImagenURL   *string `json:"imagen_url"`
	EnlaceURL   *string `json:"enlace_url"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	Prioridad   *int    `json:"prioridad"`
	Ubicacion   *string `json:"ubicacion"`
}

func (u Update) Empty() bool {
	return u.Titulo == nil && u.Descripcion == nil && u.ImagenURL == nil && u.EnlaceURL == nil &&
		u.FechaInicio == nil && u.FechaFin == nil && u.Prioridad == nil && u.Ubicacion == nil
}

type Filter struct {
	Ubicacion    *string
	ActivosAhora bool
}
