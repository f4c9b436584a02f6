package message

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mercadogaucho/api/internal/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id/respuesta", h.answer)
	r.Delete("/:id", h.remove)
}

func (h *Handler) list(c *fiber.Ctx) error {
	var f Filter

	intFilter := func(name string, dst **int) bool {
		raw := c.Query(name)
		if raw == "" {
			return true
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		*dst = &id
		return true
	}
	if !intFilter("id_emisor", &f.EmisorID) {
		return respond.Error(c, fiber.StatusBadRequest, "id_emisor debe ser un número.")
	}
	if !intFilter("id_receptor", &f.ReceptorID) {
		return respond.Error(c, fiber.StatusBadRequest, "id_receptor debe ser un número.")
	}
	if !intFilter("id_producto", &f.ProductoID) {
		return respond.Error(c, fiber.StatusBadRequest, "id_producto debe ser un número.")
	}
	if raw := c.Query("respondido"); raw != "" {
		if raw != "true" && raw != "false" {
			return respond.Error(c, fiber.StatusBadRequest, "respondido debe ser \"true\" o \"false\".")
		}
		respondido := raw == "true"
		f.Respondido = &respondido
	}

	messages, err := h.service.List(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(messages)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del mensaje debe ser un número entero válido.")
	}

	m, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Mensaje no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(m)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewMessage)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := h.service.Create(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return respond.Error(c, fiber.StatusBadRequest, "id_emisor, id_receptor y mensaje son requeridos.")
		case errors.Is(err, ErrSelfMessage):
			return respond.Error(c, fiber.StatusBadRequest, "El emisor y el receptor no pueden ser el mismo usuario.")
		}
		return respond.DBError(c, err, "El emisor, receptor o producto especificado no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

type answerRequest struct {
	Respuesta string `json:"respuesta"`
}

func (h *Handler) answer(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del mensaje debe ser un número entero válido.")
	}

	payload := new(answerRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := h.service.Answer(id, payload.Respuesta)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyReply):
			return respond.Error(c, fiber.StatusBadRequest, "El campo respuesta es requerido.")
		case errors.Is(err, ErrNotFound):
			return respond.NotFound(c, "Mensaje original no encontrado")
		case errors.Is(err, ErrAlreadyAnswered):
			return respond.Error(c, fiber.StatusConflict, "El mensaje ya fue respondido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(m)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del mensaje debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Mensaje no encontrado para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
