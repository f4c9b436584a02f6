package payment

import (
	"errors"
	"strconv"
	"time"

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

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (h *Handler) list(c *fiber.Ctx) error {
	var f Filter
	if raw := c.Query("id_orden"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "El id_orden del filtro debe ser un número entero válido.")
		}
		f.OrderID = &id
	}
	if estado := c.Query("estado_pago"); estado != "" {
		f.EstadoPago = &estado
	}
	if raw := c.Query("fecha_desde"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "fecha_desde inválida.")
		}
		f.FechaDesde = &t
	}
	if raw := c.Query("fecha_hasta"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "fecha_hasta inválida.")
		}
		f.FechaHasta = &t
	}

	payments, err := h.service.List(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(payments)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del pago debe ser un número entero válido.")
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Pago no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewPayment)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return respond.Error(c, fiber.StatusBadRequest, "id_orden, metodo_pago y monto_pagado son requeridos.")
		case errors.Is(err, ErrInvalidAmount):
			return respond.Error(c, fiber.StatusBadRequest, "El monto_pagado no puede ser negativo.")
		}
		return respond.DBError(c, err, "La orden referenciada no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del pago debe ser un número entero válido.")
	}

	payload := new(Update)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Ningún campo válido proporcionado para actualizar.")
	}

	p, err := h.service.Update(id, *payload)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Pago no encontrado para actualizar")
		}
		if errors.Is(err, ErrInvalidAmount) {
			return respond.Error(c, fiber.StatusBadRequest, "El monto_pagado no puede ser negativo.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del pago debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Pago no encontrado para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
