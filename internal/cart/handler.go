package cart

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

// RegisterCartRoutes mounts the carritos resource.
func (h *Handler) RegisterCartRoutes(r fiber.Router) {
	r.Get("/", h.listCarts)
	r.Get("/usuario/:id_usuario", h.getCartByUser)
	r.Get("/:id", h.getCart)
	r.Post("/", h.ensureCart)
	r.Put("/:id", h.updateCart)
	r.Delete("/usuario/:id_usuario", h.deleteCartByUser)
	r.Delete("/:id", h.deleteCart)
}

// RegisterItemRoutes mounts the carrito_detalle resource.
func (h *Handler) RegisterItemRoutes(r fiber.Router) {
	r.Get("/", h.listItems)
	r.Get("/:id", h.getItem)
	r.Post("/", h.addItem)
	r.Put("/:id", h.updateItem)
	r.Delete("/:id", h.deleteItem)
}

func (h *Handler) listCarts(c *fiber.Ctx) error {
	carts, err := h.service.ListCarts()
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(carts)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del carrito debe ser un número entero válido.")
	}

	cart, err := h.service.GetCart(id)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return respond.NotFound(c, "Carrito no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(cart)
}

func (h *Handler) getCartByUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id_usuario"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del usuario debe ser un número entero válido.")
	}

	cart, err := h.service.GetCartByUser(userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return respond.NotFound(c, "Carrito no encontrado para este usuario. Puede crearse uno nuevo.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(cart)
}

type ensureCartRequest struct {
	UsuarioID *int `json:"id_usuario"`
}

// ensureCart is the idempotent get-or-create entry point: 201 with the new
// cart the first time, 200 with the existing one after that.
func (h *Handler) ensureCart(c *fiber.Ctx) error {
	payload := new(ensureCartRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.UsuarioID == nil {
		return respond.Error(c, fiber.StatusBadRequest, "El id_usuario es requerido.")
	}

	cart, existed, err := h.service.EnsureCart(*payload.UsuarioID)
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			return respond.Error(c, fiber.StatusBadRequest, "El id_usuario debe ser un número entero válido.")
		}
		return respond.DBError(c, err, "El usuario especificado no existe.")
	}

	if existed {
		return c.JSON(fiber.Map{"message": "Carrito existente recuperado.", "carrito": cart})
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// updateCart: the carritos table has no client-mutable columns.
func (h *Handler) updateCart(c *fiber.Ctx) error {
	return respond.Error(c, fiber.StatusNotImplemented,
		"La actualización directa del carrito "+c.Params("id")+" no tiene campos modificables.")
}

func (h *Handler) deleteCart(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del carrito debe ser un número entero válido.")
	}
	return h.finishCartDelete(c, h.service.DeleteCart(id), "Carrito no encontrado para borrar.")
}

func (h *Handler) deleteCartByUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id_usuario"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del usuario debe ser un número entero válido.")
	}
	return h.finishCartDelete(c, h.service.DeleteCartByUser(userID), "Carrito no encontrado para este usuario para borrar.")
}

func (h *Handler) finishCartDelete(c *fiber.Ctx, err error, notFoundMsg string) error {
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return respond.NotFound(c, notFoundMsg)
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listItems(c *fiber.Ctx) error {
	var cartID *int
	if raw := c.Query("id_carrito"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "El id_carrito debe ser un número.")
		}
		cartID = &id
	}

	items, err := h.service.ListItems(cartID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(items)
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del detalle debe ser un número entero válido.")
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return respond.NotFound(c, "Item de detalle de carrito no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(item)
}

type addItemRequest struct {
	CartID     *int `json:"id_carrito"`
	ProductoID *int `json:"id_producto"`
	Cantidad   *int `json:"cantidad"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.CartID == nil || payload.ProductoID == nil || payload.Cantidad == nil {
		return respond.Error(c, fiber.StatusBadRequest, "id_carrito, id_producto y cantidad son requeridos.")
	}

	item, err := h.service.AddItem(*payload.CartID, *payload.ProductoID, *payload.Cantidad)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			return respond.Error(c, fiber.StatusBadRequest, "La cantidad debe ser mayor que cero.")
		case errors.Is(err, ErrInvalidID):
			return respond.Error(c, fiber.StatusBadRequest, "id_carrito e id_producto deben ser números positivos.")
		}
		return respond.DBError(c, err, "El carrito o producto especificado no existe.")
	}
	return c.JSON(item)
}

type updateItemRequest struct {
	Cantidad *int `json:"cantidad"`
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del detalle debe ser un número entero válido.")
	}

	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Cantidad == nil {
		return respond.Error(c, fiber.StatusBadRequest, "La cantidad es requerida.")
	}

	item, err := h.service.UpdateItemQuantity(id, *payload.Cantidad)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			return respond.Error(c, fiber.StatusBadRequest, "La cantidad debe ser un número entero mayor que cero.")
		case errors.Is(err, ErrItemNotFound):
			return respond.NotFound(c, "Item de detalle de carrito no encontrado para actualizar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(item)
}

func (h *Handler) deleteItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del detalle debe ser un número entero válido.")
	}

	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return respond.NotFound(c, "Item de detalle de carrito no encontrado para borrar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
