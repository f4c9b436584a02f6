package category

import "errors"

var ErrNotFound = errors.New("category not found")

type Category struct {
	ID          int     `json:"id_categoria"`
	Nombre      string  `json:"nombre_categoria"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type Update struct {
	Nombre      *string `json:"nombre_categoria"`
	Descripcion *string `json:"descripcion"`
}
