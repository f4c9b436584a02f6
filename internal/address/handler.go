package address

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

// RegisterAddressRoutes mounts /direcciones and RegisterLocationRoutes mounts
// /ubicacion_usuario; both share the service.

func (h *Handler) RegisterAddressRoutes(r fiber.Router) {
	r.Get("/", h.listAddresses)
	r.Get("/:id", h.getAddress)
	r.Post("/", h.createAddress)
	r.Put("/:id", h.updateAddress)
	r.Delete("/:id", h.removeAddress)
}

func (h *Handler) RegisterLocationRoutes(r fiber.Router) {
	r.Get("/", h.listLocations)
	r.Get("/:id", h.getLocation)
	r.Post("/", h.createLocation)
	r.Put("/:id", h.updateLocation)
	r.Delete("/:id", h.removeLocation)
}

func userIDFilter(c *fiber.Ctx) (*int, bool) {
	raw := c.Query("id_usuario")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func (h *Handler) listAddresses(c *fiber.Ctx) error {
	userID, ok := userIDFilter(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El id_usuario debe ser un número entero válido.")
	}

	addresses, err := h.service.ListAddresses(userID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(addresses)
}

func (h *Handler) getAddress(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la dirección debe ser un número entero válido.")
	}

	a, err := h.service.GetAddress(id)
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			return respond.NotFound(c, "Dirección no encontrada")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(a)
}

func (h *Handler) createAddress(c *fiber.Ctx) error {
	payload := new(NewAddress)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	a, err := h.service.CreateAddress(*payload)
	if err != nil {
		if errors.Is(err, ErrMissingAddressFields) {
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario, direccion, ciudad y país son requeridos.")
		}
		return respond.DBError(c, err, "El usuario especificado no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *Handler) updateAddress(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la dirección debe ser un número entero válido.")
	}

	payload := new(AddressUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo para actualizar.")
	}

	a, err := h.service.UpdateAddress(id, *payload)
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			return respond.NotFound(c, "Dirección no encontrada para actualizar")
		}
		return respond.DBError(c, err, "El nuevo usuario especificado para la dirección no existe.")
	}
	return c.JSON(a)
}

func (h *Handler) removeAddress(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la dirección debe ser un número entero válido.")
	}

	if err := h.service.DeleteAddress(id); err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			return respond.NotFound(c, "Dirección no encontrada para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listLocations(c *fiber.Ctx) error {
	userID, ok := userIDFilter(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El id_usuario debe ser un número entero válido.")
	}

	locations, err := h.service.ListLocations(userID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(locations)
}

func (h *Handler) getLocation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la ubicación debe ser un número entero válido.")
	}

	l, err := h.service.GetLocation(id)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return respond.NotFound(c, "Ubicación de usuario no encontrada")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(l)
}

func (h *Handler) createLocation(c *fiber.Ctx) error {
	payload := new(NewLocation)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	l, err := h.service.CreateLocation(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingLocationUser):
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario es requerido.")
		case errors.Is(err, ErrMissingLocationTarget):
			return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos ciudad, o latitud y longitud.")
		}
		return respond.DBError(c, err, "El usuario especificado no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

func (h *Handler) updateLocation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la ubicación debe ser un número entero válido.")
	}

	payload := new(LocationUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo para actualizar.")
	}

	l, err := h.service.UpdateLocation(id, *payload)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return respond.NotFound(c, "Ubicación de usuario no encontrada para actualizar")
		}
		return respond.DBError(c, err, "El nuevo usuario especificado para la ubicación no existe.")
	}
	return c.JSON(l)
}

func (h *Handler) removeLocation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la ubicación debe ser un número entero válido.")
	}

	if err := h.service.DeleteLocation(id); err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return respond.NotFound(c, "Ubicación de usuario no encontrada para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
