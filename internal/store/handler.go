package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mercadogaucho/api/internal/database"
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
	r.Get("/usuario/:id_usuario", h.getByUser)
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/:id", h.remove)
}

func (h *Handler) list(c *fiber.Ctx) error {
	var f Filter
	if estado := c.Query("estado"); estado != "" {
		f.Estado = &estado
	}
	if nombre := c.Query("nombre_tienda"); nombre != "" {
		f.NombreTienda = &nombre
	}

	stores, err := h.service.List(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(stores)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la tienda debe ser un número entero válido.")
	}

	s, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Tienda oficial no encontrada")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(s)
}

func (h *Handler) getByUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id_usuario"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del usuario debe ser un número entero válido.")
	}

	s, err := h.service.GetByUser(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Este usuario no tiene una tienda oficial registrada")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(s)
}

// The unique violation can come from the owner column or the store name; the
// constraint name in the error text tells them apart.
func uniqueConflictMessage(err error, updating bool) string {
	if strings.Contains(err.Error(), "id_usuario") {
		return "Este usuario ya tiene una tienda oficial registrada."
	}
	if updating {
		return "El nombre de la tienda ya está en uso por otra tienda."
	}
	return "El nombre de la tienda ya está en uso."
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewStore)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	s, err := h.service.Create(*payload)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario y nombre_tienda son requeridos.")
		}
		switch database.Classify(err) {
		case database.ErrForeignKey:
			return respond.Error(c, fiber.StatusBadRequest, "El usuario especificado no existe.")
		case database.ErrUnique:
			return respond.Error(c, fiber.StatusConflict, uniqueConflictMessage(err, false))
		case database.ErrEnum:
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para estado no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la tienda debe ser un número entero válido.")
	}

	payload := new(Update)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo para actualizar.")
	}

	s, err := h.service.Update(id, *payload)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Tienda oficial no encontrada para actualizar")
		}
		switch database.Classify(err) {
		case database.ErrUnique:
			return respond.Error(c, fiber.StatusConflict, uniqueConflictMessage(err, true))
		case database.ErrEnum:
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para estado no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(s)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la tienda debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Tienda oficial no encontrada para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
