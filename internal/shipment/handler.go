package shipment

import (
	"errors"
	"strconv"

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
	r.Get("/orden/:id_orden", h.getByOrder)
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/:id", h.remove)
}

func (h *Handler) list(c *fiber.Ctx) error {
	shipments, err := h.service.List()
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(shipments)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del envío debe ser un número entero válido.")
	}

	s, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Registro de envío no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(s)
}

func (h *Handler) getByOrder(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id_orden"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la orden debe ser un número entero válido.")
	}

	s, err := h.service.GetByOrder(orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Registro de envío no encontrado para esta orden")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(s)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewShipment)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	s, err := h.service.Create(*payload)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return respond.Error(c, fiber.StatusBadRequest, "id_orden, direccion_entrega y metodo_envio son requeridos.")
		}
		switch database.Classify(err) {
		case database.ErrForeignKey:
			return respond.Error(c, fiber.StatusBadRequest, "La orden especificada no existe.")
		case database.ErrUnique:
			return respond.Error(c, fiber.StatusConflict, "Ya existe un registro de envío para esta orden.")
		case database.ErrEnum:
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para estado_envio no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del envío debe ser un número entero válido.")
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
			return respond.NotFound(c, "Registro de envío no encontrado para actualizar")
		}
		if errors.Is(database.Classify(err), database.ErrEnum) {
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para estado_envio no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(s)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del envío debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Registro de envío no encontrado para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
