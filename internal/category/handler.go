package category

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
	cats, err := h.service.List()
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(cats)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la categoría debe ser un número entero válido.")
	}

	cat, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Categoría no encontrada")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(cat)
}

type createRequest struct {
	Nombre      string  `json:"nombre_categoria"`
	Descripcion *string `json:"descripcion"`
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Nombre == "" {
		return respond.Error(c, fiber.StatusBadRequest, "El nombre_categoria es requerido.")
	}

	cat, err := h.service.Create(payload.Nombre, payload.Descripcion)
	if err != nil {
		if errors.Is(database.Classify(err), database.ErrUnique) {
			return respond.Error(c, fiber.StatusConflict, "Conflicto: la categoría ya existe.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la categoría debe ser un número entero válido.")
	}

	payload := new(Update)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Nombre == nil && payload.Descripcion == nil {
		return respond.Error(c, fiber.StatusBadRequest, "Ningún campo válido proporcionado para actualizar.")
	}

	cat, err := h.service.Update(id, *payload)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Categoría no encontrada para actualizar")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(cat)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la categoría debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Categoría no encontrada para borrar")
		}
		if errors.Is(database.Classify(err), database.ErrForeignKey) {
			return respond.Error(c, fiber.StatusConflict, "Conflicto: La categoría está referenciada por productos.")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
