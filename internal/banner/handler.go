package banner

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
	r.Put("/:id", h.update)
	r.Delete("/:id", h.remove)
}

func (h *Handler) list(c *fiber.Ctx) error {
	var f Filter
	if ubicacion := c.Query("ubicacion"); ubicacion != "" {
		f.Ubicacion = &ubicacion
	}
	f.ActivosAhora = c.Query("activos_ahora") == "true"

	banners, err := h.service.List(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(banners)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del banner debe ser un número entero válido.")
	}

	b, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Banner no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(b)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewBanner)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	b, err := h.service.Create(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return respond.Error(c, fiber.StatusBadRequest, "El título y la URL de la imagen son requeridos para el banner.")
		case errors.Is(err, ErrInvalidDate):
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha inválido. Usar YYYY-MM-DD.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del banner debe ser un número entero válido.")
	}

	payload := new(Update)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo para actualizar.")
	}

	b, err := h.service.Update(id, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha inválido. Usar YYYY-MM-DD.")
		case errors.Is(err, ErrNotFound):
			return respond.NotFound(c, "Banner no encontrado para actualizar")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(b)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del banner debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Banner no encontrado para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
