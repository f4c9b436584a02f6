package product

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

// RegisterProductRoutes mounts the productos resource.
func (h *Handler) RegisterProductRoutes(r fiber.Router) {
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/:id", h.remove)
}

// RegisterImageRoutes mounts the imagenes_producto resource.
func (h *Handler) RegisterImageRoutes(r fiber.Router) {
	r.Get("/", h.listImages)
	r.Get("/:id", h.getImage)
	r.Post("/", h.createImage)
	r.Put("/:id", h.updateImage)
	r.Delete("/:id", h.deleteImage)
}

func (h *Handler) list(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(products)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del producto debe ser un número entero válido.")
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Producto no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewProduct)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.UsuarioID == nil || payload.CategoriaID == nil || payload.Titulo == "" ||
		payload.Precio == nil || payload.Stock == nil || payload.Estado == "" {
		return respond.Error(c, fiber.StatusBadRequest,
			"Faltan campos requeridos: id_usuario, id_categoria, titulo, precio, stock, estado")
	}

	p, err := h.service.Create(*payload)
	if err != nil {
		if errors.Is(err, ErrInvalidEstado) {
			return respond.Error(c, fiber.StatusBadRequest, `Estado inválido. Debe ser "nuevo" o "usado"`)
		}
		return respond.DBError(c, err, "Error de referencia: El usuario o la categoría proporcionados no existen.")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del producto debe ser un número entero válido.")
	}

	payload := new(Update)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo para actualizar")
	}

	p, err := h.service.Update(id, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEstado):
			return respond.Error(c, fiber.StatusBadRequest, `Estado inválido. Debe ser "nuevo" o "usado"`)
		case errors.Is(err, ErrNotFound):
			return respond.NotFound(c, "Producto no encontrado para actualizar")
		}
		return respond.DBError(c, err, "Error de referencia: La categoría proporcionada no existe.")
	}
	return c.JSON(p)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del producto debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Producto no encontrado para borrar")
		}
		if errors.Is(database.Classify(err), database.ErrForeignKey) {
			return respond.Error(c, fiber.StatusConflict,
				"Conflicto: El producto está referenciado en otras tablas (órdenes, carritos, etc.).")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listImages(c *fiber.Ctx) error {
	var productID *int
	if raw := c.Query("id_producto"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "El id_producto debe ser un número.")
		}
		productID = &id
	}

	images, err := h.service.ListImages(productID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(images)
}

func (h *Handler) getImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la imagen debe ser un número entero válido.")
	}

	img, err := h.service.GetImage(id)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			return respond.NotFound(c, "Imagen de producto no encontrada")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(img)
}

type createImageRequest struct {
	ProductoID *int   `json:"id_producto"`
	URL        string `json:"url_imagen"`
	Orden      *int   `json:"orden"`
}

func (h *Handler) createImage(c *fiber.Ctx) error {
	payload := new(createImageRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.ProductoID == nil || payload.URL == "" {
		return respond.Error(c, fiber.StatusBadRequest, "id_producto y url_imagen son requeridos.")
	}

	img, err := h.service.CreateImage(*payload.ProductoID, payload.URL, payload.Orden)
	if err != nil {
		return respond.DBError(c, err, "El producto especificado no existe.")
	}
	return c.Status(fiber.StatusCreated).JSON(img)
}

func (h *Handler) updateImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la imagen debe ser un número entero válido.")
	}

	payload := new(ImageUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.URL == nil && payload.Orden == nil {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos url_imagen u orden para actualizar.")
	}

	img, err := h.service.UpdateImage(id, *payload)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			return respond.NotFound(c, "Imagen de producto no encontrada para actualizar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(img)
}

func (h *Handler) deleteImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la imagen debe ser un número entero válido.")
	}

	if err := h.service.DeleteImage(id); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			return respond.NotFound(c, "Imagen de producto no encontrada para borrar.")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
