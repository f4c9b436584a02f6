package token

import (
	"errors"
	"fmt"
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
	r.Get("/validar/:token", h.validate)
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/valor/:token", h.removeByValue)
	r.Delete("/usuario/:id_usuario/all", h.removeAllForUser)
	r.Delete("/:id", h.remove)
}

func (h *Handler) list(c *fiber.Ctx) error {
	var f Filter
	if raw := c.Query("id_usuario"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario debe ser un número.")
		}
		f.UserID = &id
	}
	if raw := c.Query("expirado"); raw != "" {
		if raw != "true" && raw != "false" {
			return respond.Error(c, fiber.StatusBadRequest, "expirado debe ser \"true\" o \"false\".")
		}
		expirado := raw == "true"
		f.Expirado = &expirado
	}

	tokens, err := h.service.List(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(tokens)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del token debe ser un número entero válido.")
	}

	t, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Token no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(t)
}

func (h *Handler) validate(c *fiber.Ctx) error {
	value := c.Params("token")
	if value == "" {
		return respond.Error(c, fiber.StatusBadRequest, "Formato de token inválido.")
	}

	t, err := h.service.Validate(value)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.Error(c, fiber.StatusUnauthorized, "Token inválido o expirado.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(t)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewToken)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.IPOrigen == nil {
		ip := c.IP()
		payload.IPOrigen = &ip
	}

	t, err := h.service.Create(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario y expiracion son requeridos.")
		case errors.Is(err, ErrPastExpiration):
			return respond.Error(c, fiber.StatusBadRequest, "La fecha de expiracion debe ser una fecha válida y futura.")
		}
		switch database.Classify(err) {
		case database.ErrForeignKey:
			return respond.Error(c, fiber.StatusBadRequest, "El usuario especificado no existe.")
		case database.ErrUnique:
			return respond.Error(c, fiber.StatusConflict, "El token proporcionado ya existe.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del token debe ser un número entero válido.")
	}

	payload := new(Update)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos expiracion o ip_origen para actualizar.")
	}

	t, err := h.service.Update(id, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrPastExpiration):
			return respond.Error(c, fiber.StatusBadRequest, "La fecha de expiracion debe ser una fecha válida y futura.")
		case errors.Is(err, ErrNotFound):
			return respond.NotFound(c, "Token no encontrado para actualizar")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(t)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del token debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Token no encontrado para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) removeByValue(c *fiber.Ctx) error {
	value := c.Params("token")

	if err := h.service.DeleteByValue(value); err != nil {
		if errors.Is(err, ErrEmptyTokenValue) {
			return respond.Error(c, fiber.StatusBadRequest, "Formato de token inválido.")
		}
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Token no encontrado para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) removeAllForUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id_usuario"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del usuario debe ser un número entero válido.")
	}

	count, err := h.service.DeleteAllForUser(userID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%d token(s) eliminados para el usuario %d.", count, userID),
	})
}
