package message

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("message not found")
	ErrAlreadyAnswered = errors.New("message already answered")
)

// Message is a buyer/seller question, optionally tied to a product, with at
// most one reply stored inline.
type Message struct {
	ID             int        `json:"id_mensaje"`
	EmisorID       int        `json:"id_emisor"`
	ReceptorID     int        `json:"id_receptor"`
	ProductoID     *int       `json:"id_producto,omitempty"`
	Mensaje        string     `json:"mensaje"`
	Respuesta      *string    `json:"respuesta,omitempty"`
	FechaEnvio     *time.Time `json:"fecha_envio,omitempty"`
	FechaRespuesta *time.Time `json:"fecha_respuesta,omitempty"`

	NombreEmisor     *string `json:"nombre_emisor,omitempty"`
	ApellidoEmisor   *string `json:"apellido_emisor,omitempty"`
	EmailEmisor      *string `json:"email_emisor,omitempty"`
	NombreReceptor   *string `json:"nombre_receptor,omitempty"`
	ApellidoReceptor *string `json:"apellido_receptor,omitempty"`
	EmailReceptor    *string `json:"email_receptor,omitempty"`
	NombreProducto   *string `json:"nombre_producto,omitempty"`
}

type NewMessage struct {
	EmisorID   *int   `json:"id_emisor"`
	ReceptorID *int   `json:"id_receptor"`
	ProductoID *int   `json:"id_producto"`
	Mensaje    string `json:"mensaje"`
}

type Filter struct {
	EmisorID   *int
	ReceptorID *int
	ProductoID *int
	Respondido *bool
}
