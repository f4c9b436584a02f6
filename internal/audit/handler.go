package audit

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

func (h *Handler) RegisterLogRoutes(r fiber.Router) {
	r.Get("/", h.listLogs)
	r.Get("/:id", h.getLog)
	r.Post("/", h.createLog)
	r.Put("/:id", func(c *fiber.Ctx) error {
		return respond.MethodDisabled(c, "Método PUT no permitido para logs de actividad. Los logs son inmutables.")
	})
	r.Delete("/:id", func(c *fiber.Ctx) error {
		return respond.MethodDisabled(c, "Método DELETE no permitido para logs de actividad. Contacte al administrador para políticas de retención.")
	})
}

func (h *Handler) RegisterLoginRoutes(r fiber.Router) {
	r.Get("/", h.listLogins)
	r.Get("/:id", h.getLogin)
	r.Post("/", h.createLogin)
	r.Put("/:id", func(c *fiber.Ctx) error {
		return respond.MethodDisabled(c, "Método PUT no permitido para registros de inicio de sesión. Los logs son inmutables.")
	})
	r.Delete("/:id", func(c *fiber.Ctx) error {
		return respond.MethodDisabled(c, "Método DELETE no permitido para registros de inicio de sesión. Contacte al administrador para políticas de retención.")
	})
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func dateFilters(c *fiber.Ctx, desde, hasta **time.Time) error {
	if raw := c.Query("fecha_desde"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha_desde inválido.")
		}
		*desde = &t
	}
	if raw := c.Query("fecha_hasta"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha_hasta inválido.")
		}
		*hasta = &t
	}
	return nil
}

func (h *Handler) listLogs(c *fiber.Ctx) error {
	var f LogFilter
	if raw := c.Query("id_usuario"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario debe ser un número.")
		}
		f.UserID = &id
	}
	if accion := c.Query("accion"); accion != "" {
		f.Accion = &accion
	}
	if resp := dateFilters(c, &f.FechaDesde, &f.FechaHasta); resp != nil {
		return resp
	}

	logs, err := h.service.ListLogs(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(logs)
}

func (h *Handler) getLog(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del log debe ser un número entero válido.")
	}

	l, err := h.service.GetLog(id)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			return respond.NotFound(c, "Registro de actividad no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(l)
}

func (h *Handler) createLog(c *fiber.Ctx) error {
	payload := new(NewLog)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	l, err := h.service.CreateLog(*payload)
	if err != nil {
		if errors.Is(err, ErrMissingAction) {
			return respond.Error(c, fiber.StatusBadRequest, "El campo accion es requerido.")
		}
		return respond.DBError(c, err, "El usuario especificado para el log no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

func (h *Handler) listLogins(c *fiber.Ctx) error {
	var f LoginFilter
	if raw := c.Query("id_usuario"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario debe ser un número.")
		}
		f.UserID = &id
	}
	if raw := c.Query("exito"); raw != "" {
		if raw != "true" && raw != "false" {
			return respond.Error(c, fiber.StatusBadRequest, "El parámetro exito debe ser \"true\" o \"false\".")
		}
		exito := raw == "true"
		f.Exito = &exito
	}
	if resp := dateFilters(c, &f.FechaDesde, &f.FechaHasta); resp != nil {
		return resp
	}

	logins, err := h.service.ListLogins(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(logins)
}

func (h *Handler) getLogin(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la sesión debe ser un número entero válido.")
	}

	l, err := h.service.GetLogin(id)
	if err != nil {
		if errors.Is(err, ErrLoginNotFound) {
			return respond.NotFound(c, "Registro de inicio de sesión no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(l)
}

func (h *Handler) createLogin(c *fiber.Ctx) error {
	payload := new(NewLogin)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	l, err := h.service.CreateLogin(*payload)
	if err != nil {
		if errors.Is(err, ErrMissingExito) {
			return respond.Error(c, fiber.StatusBadRequest, "El campo exito (true/false) es requerido.")
		}
		return respond.DBError(c, err, "El usuario especificado no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}
