package order

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

// RegisterOrderRoutes mounts the ordenes resource.
func (h *Handler) RegisterOrderRoutes(r fiber.Router) {
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/:id", h.remove)
}

// RegisterItemRoutes mounts the detalle_orden resource.
func (h *Handler) RegisterItemRoutes(r fiber.Router) {
	r.Get("/", h.listItems)
	r.Get("/:id", h.getItem)
	r.Post("/", h.createItem)
	r.Put("/:id", h.updateItem)
	r.Delete("/:id", h.deleteItem)
}

// parseDate accepts both date-only and full timestamp query values.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *Handler) list(c *fiber.Ctx) error {
	var f Filter

	if raw := c.Query("id_usuario"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario debe ser un número.")
		}
		f.UsuarioID = &id
	}
	if raw := c.Query("estado"); raw != "" {
		f.Estado = &raw
	}
	if raw := c.Query("fecha_desde"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha_desde inválido.")
		}
		f.FechaDesde = &t
	}
	if raw := c.Query("fecha_hasta"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha_hasta inválido.")
		}
		f.FechaHasta = &t
	}

	orders, err := h.service.List(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(orders)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la orden debe ser un número entero válido.")
	}

	o, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Orden no encontrada.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(o)
}

type createOrderRequest struct {
	UsuarioID *int      `json:"id_usuario"`
	Total     *float64  `json:"total"`
	Estado    string    `json:"estado"`
	Detalles  []NewItem `json:"detalles"`
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.UsuarioID == nil || payload.Total == nil {
		return respond.Error(c, fiber.StatusBadRequest, "id_usuario y total son requeridos.")
	}

	o, err := h.service.Create(*payload.UsuarioID, *payload.Total, payload.Estado, payload.Detalles)
	if err != nil {
		var itemErr *ItemError
		switch {
		case errors.Is(err, ErrInvalidUser):
			return respond.Error(c, fiber.StatusBadRequest, "id_usuario debe ser un número entero válido.")
		case errors.Is(err, ErrInvalidTotal):
			return respond.Error(c, fiber.StatusBadRequest, "El total debe ser un número no negativo.")
		case errors.As(err, &itemErr):
			return respond.Error(c, fiber.StatusBadRequest, "Detalle inválido: "+itemErr.Reason+".")
		}
		return respond.DBError(c, err, "El usuario o uno de los productos especificados no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la orden debe ser un número entero válido.")
	}

	payload := new(Update)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Estado == nil && payload.Total == nil {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo (ej. estado, total) para actualizar.")
	}

	o, err := h.service.Update(id, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTotal):
			return respond.Error(c, fiber.StatusBadRequest, "Si se proporciona, el total debe ser un número no negativo.")
		case errors.Is(err, ErrNotFound):
			return respond.NotFound(c, "Orden no encontrada para actualizar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(o)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la orden debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Orden no encontrada para borrar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listItems(c *fiber.Ctx) error {
	var orderID *int
	if raw := c.Query("id_orden"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "El id_orden debe ser un número entero válido.")
		}
		orderID = &id
	}

	items, err := h.service.ListItems(orderID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(items)
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del detalle de orden debe ser un número entero válido.")
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return respond.NotFound(c, "Detalle de orden no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(item)
}

type createItemRequest struct {
	OrderID        *int     `json:"id_orden"`
	ProductoID     *int     `json:"id_producto"`
	Cantidad       *int     `json:"cantidad"`
	PrecioUnitario *float64 `json:"precio_unitario"`
}

func (h *Handler) createItem(c *fiber.Ctx) error {
	payload := new(createItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.OrderID == nil || payload.ProductoID == nil || payload.Cantidad == nil || payload.PrecioUnitario == nil {
		return respond.Error(c, fiber.StatusBadRequest, "id_orden, id_producto, cantidad y precio_unitario son requeridos.")
	}

	item, err := h.service.CreateItem(*payload.OrderID, *payload.ProductoID, *payload.Cantidad, *payload.PrecioUnitario)
	if err != nil {
		var itemErr *ItemError
		if errors.As(err, &itemErr) {
			return respond.Error(c, fiber.StatusBadRequest, itemErr.Reason)
		}
		return respond.DBError(c, err, "La orden o el producto especificado no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del detalle de orden debe ser un número entero válido.")
	}

	payload := new(ItemUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Cantidad == nil && payload.PrecioUnitario == nil {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos cantidad o precio_unitario para actualizar.")
	}

	item, err := h.service.UpdateItem(id, *payload)
	if err != nil {
		var itemErr *ItemError
		switch {
		case errors.As(err, &itemErr):
			return respond.Error(c, fiber.StatusBadRequest, itemErr.Reason)
		case errors.Is(err, ErrItemNotFound):
			return respond.NotFound(c, "Detalle de orden no encontrado para actualizar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(item)
}

func (h *Handler) deleteItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del detalle de orden debe ser un número entero válido.")
	}

	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return respond.NotFound(c, "Detalle de orden no encontrado para borrar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
