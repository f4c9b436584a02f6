package user

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
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/:id", h.remove)
}

func (h *Handler) list(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(users)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del usuario debe ser un número entero válido.")
	}

	u, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Usuario no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(u)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewUser)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Nombre == "" || payload.Apellido == "" || payload.Email == "" || payload.Contraseña == "" {
		return respond.Error(c, fiber.StatusBadRequest, "Faltan campos requeridos: nombre, apellido, email, contraseña")
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		if errors.Is(database.Classify(err), database.ErrUnique) {
			return respond.Error(c, fiber.StatusConflict, "Conflicto: El email ya está registrado.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del usuario debe ser un número entero válido.")
	}

	payload := new(UserUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Ningún campo válido proporcionado para actualizar.")
	}

	updated, err := h.service.Update(id, *payload)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Usuario no encontrado para actualizar")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(updated)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del usuario debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Usuario no encontrado para borrar")
		}
		if errors.Is(database.Classify(err), database.ErrForeignKey) {
			return respond.Error(c, fiber.StatusConflict, "Conflicto: El usuario está referenciado en otras tablas importantes.")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
