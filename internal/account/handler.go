package account

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

func (h *Handler) RegisterPersonalRoutes(r fiber.Router) {
	r.Get("/", h.listPersonal)
	r.Get("/:id_usuario", h.getPersonal)
	r.Post("/", h.createPersonal)
	r.Put("/:id_usuario", h.updatePersonal)
	r.Delete("/:id_usuario", h.removePersonal)
}

func (h *Handler) RegisterBusinessRoutes(r fiber.Router) {
	r.Get("/", h.listBusiness)
	r.Get("/:id_usuario", h.getBusiness)
	r.Post("/", h.createBusiness)
	r.Put("/:id_usuario", h.updateBusiness)
	r.Delete("/:id_usuario", h.removeBusiness)
}

func userParam(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id_usuario"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) listPersonal(c *fiber.Ctx) error {
	profiles, err := h.service.ListPersonal()
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(profiles)
}

func (h *Handler) getPersonal(c *fiber.Ctx) error {
	userID, ok := userParam(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de usuario debe ser un número entero válido.")
	}

	p, err := h.service.GetPersonal(userID)
	if err != nil {
		if errors.Is(err, ErrPersonalNotFound) {
			return respond.NotFound(c, "Perfil personal no encontrado para este usuario")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func (h *Handler) createPersonal(c *fiber.Ctx) error {
	payload := new(NewPersonal)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := h.service.CreatePersonal(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingUser):
			return respond.Error(c, fiber.StatusBadRequest, "El campo id_usuario es requerido.")
		case errors.Is(err, ErrInvalidDate):
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha de nacimiento inválido. Usar YYYY-MM-DD.")
		}
		switch database.Classify(err) {
		case database.ErrForeignKey:
			return respond.Error(c, fiber.StatusBadRequest, "El usuario especificado no existe.")
		case database.ErrUnique:
			return respond.Error(c, fiber.StatusConflict, "Ya existe un perfil personal para este usuario.")
		case database.ErrEnum:
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para género no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) updatePersonal(c *fiber.Ctx) error {
	userID, ok := userParam(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de usuario debe ser un número entero válido.")
	}

	payload := new(PersonalUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := h.service.UpdatePersonal(userID, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyUpdate):
			return respond.Error(c, fiber.StatusBadRequest, "No se proporcionaron campos para actualizar.")
		case errors.Is(err, ErrInvalidDate):
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha de nacimiento inválido. Usar YYYY-MM-DD.")
		case errors.Is(err, ErrPersonalNotFound):
			return respond.NotFound(c, "Perfil personal no encontrado para este usuario. Intente crear (POST)")
		}
		if database.Classify(err) == database.ErrEnum {
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para género no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func (h *Handler) removePersonal(c *fiber.Ctx) error {
	userID, ok := userParam(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de usuario debe ser un número entero válido.")
	}

	if err := h.service.DeletePersonal(userID); err != nil {
		if errors.Is(err, ErrPersonalNotFound) {
			return respond.NotFound(c, "Perfil personal no encontrado para este usuario")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(fiber.Map{"message": "Perfil personal eliminado exitosamente."})
}

func (h *Handler) listBusiness(c *fiber.Ctx) error {
	profiles, err := h.service.ListBusiness()
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(profiles)
}

func (h *Handler) getBusiness(c *fiber.Ctx) error {
	userID, ok := userParam(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de usuario debe ser un número entero válido.")
	}

	b, err := h.service.GetBusiness(userID)
	if err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			return respond.NotFound(c, "Perfil de empresa no encontrado para este usuario")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(b)
}

func (h *Handler) createBusiness(c *fiber.Ctx) error {
	payload := new(NewBusiness)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	b, err := h.service.CreateBusiness(*payload)
	if err != nil {
		if errors.Is(err, ErrMissingBusinessFields) {
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario, ruc y razón social son requeridos.")
		}
		switch database.Classify(err) {
		case database.ErrForeignKey:
			return respond.Error(c, fiber.StatusBadRequest, "El usuario especificado no existe.")
		case database.ErrUnique:
			return respond.Error(c, fiber.StatusConflict, "Ya existe un perfil de empresa para este usuario.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *Handler) updateBusiness(c *fiber.Ctx) error {
	userID, ok := userParam(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de usuario debe ser un número entero válido.")
	}

	payload := new(BusinessUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	b, err := h.service.UpdateBusiness(userID, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyUpdate):
			return respond.Error(c, fiber.StatusBadRequest, "No se proporcionaron campos para actualizar.")
		case errors.Is(err, ErrBusinessNotFound):
			return respond.NotFound(c, "Perfil de empresa no encontrado para este usuario. Intente crear (POST)")
		}
		if database.Classify(err) == database.ErrUnique {
			return respond.Error(c, fiber.StatusConflict, "El RUC proporcionado ya está registrado para otra empresa.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(b)
}

func (h *Handler) removeBusiness(c *fiber.Ctx) error {
	userID, ok := userParam(c)
	if !ok {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de usuario debe ser un número entero válido.")
	}

	if err := h.service.DeleteBusiness(userID); err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			return respond.NotFound(c, "Perfil de empresa no encontrado para este usuario")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(fiber.Map{"message": "Perfil de empresa eliminado exitosamente."})
}
