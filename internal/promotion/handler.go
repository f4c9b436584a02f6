package promotion

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

func (h *Handler) RegisterPromotionRoutes(r fiber.Router) {
	r.Get("/", h.list)
	r.Get("/codigo/:codigo", h.getByCode)
	r.Get("/:id", h.get)
	r.Post("/", h.create)
	r.Put("/:id", h.update)
	r.Delete("/:id", h.remove)
}

func (h *Handler) RegisterLinkRoutes(r fiber.Router) {
	r.Get("/", h.listLinks)
	r.Get("/producto/:id_producto", h.linksForProduct)
	r.Get("/promocion/:id_promocion", h.linksForPromotion)
	r.Post("/", h.createLink)
	r.Delete("/", h.removeLink)
}

func (h *Handler) RegisterFeaturedRoutes(r fiber.Router) {
	r.Get("/", h.listFeatured)
	r.Get("/producto/:id_producto", h.featuredByProduct)
	r.Get("/:id", h.getFeatured)
	r.Post("/", h.upsertFeatured)
	r.Put("/:id", h.updateFeatured)
	r.Delete("/producto/:id_producto", h.removeFeaturedByProduct)
	r.Delete("/:id", h.removeFeatured)
}

func (h *Handler) list(c *fiber.Ctx) error {
	var f PromotionFilter
	if raw := c.Query("activo"); raw != "" {
		if raw != "true" && raw != "false" {
			return respond.Error(c, fiber.StatusBadRequest, "El parámetro activo debe ser \"true\" o \"false\".")
		}
		activo := raw == "true"
		f.Activo = &activo
	}
	if codigo := c.Query("codigo_promocion"); codigo != "" {
		f.Codigo = &codigo
	}
	f.VigentesAhora = c.Query("vigentes_ahora") == "true"

	promotions, err := h.service.List(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(promotions)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la promoción debe ser un número entero válido.")
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Promoción no encontrada")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func (h *Handler) getByCode(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	if codigo == "" {
		return respond.Error(c, fiber.StatusBadRequest, "El código de promoción es requerido.")
	}

	p, err := h.service.GetByCode(codigo)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Código de promoción no válido, no encontrado o no activo")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func promotionInputError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrMissingTitle):
		return respond.Error(c, fiber.StatusBadRequest, "El título de la promoción es requerido.")
	case errors.Is(err, ErrInvalidDiscount):
		return respond.Error(c, fiber.StatusBadRequest, "descuento_porcentaje debe ser un número entero entre 0 y 100.")
	case errors.Is(err, ErrInvalidDate):
		return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha inválido. Usar YYYY-MM-DD.")
	case errors.Is(err, ErrDateRange):
		return respond.Error(c, fiber.StatusBadRequest, "fecha_fin no puede ser anterior a fecha_inicio.")
	}
	return nil
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(NewPromotion)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(*payload)
	if err != nil {
		if resp := promotionInputError(c, err); resp != nil {
			return resp
		}
		if errors.Is(database.Classify(err), database.ErrUnique) {
			return respond.Error(c, fiber.StatusConflict, "El código de promoción ya existe.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la promoción debe ser un número entero válido.")
	}

	payload := new(PromotionUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo para actualizar.")
	}

	p, err := h.service.Update(id, *payload)
	if err != nil {
		if resp := promotionInputError(c, err); resp != nil {
			return resp
		}
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Promoción no encontrada para actualizar")
		}
		if errors.Is(database.Classify(err), database.ErrUnique) {
			return respond.Error(c, fiber.StatusConflict, "El código de promoción ya está en uso por otra promoción.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(p)
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la promoción debe ser un número entero válido.")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return respond.NotFound(c, "Promoción no encontrada para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listLinks(c *fiber.Ctx) error {
	var f LinkFilter
	if raw := c.Query("id_producto"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "id_producto debe ser un número.")
		}
		f.ProductoID = &id
	}
	if raw := c.Query("id_promocion"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return respond.Error(c, fiber.StatusBadRequest, "id_promocion debe ser un número.")
		}
		f.PromocionID = &id
	}

	links, err := h.service.ListLinks(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(links)
}

func (h *Handler) linksForProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id_producto"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del producto debe ser un número entero válido.")
	}

	links, err := h.service.LinksForProduct(productID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(links)
}

func (h *Handler) linksForPromotion(c *fiber.Ctx) error {
	promotionID, err := strconv.Atoi(c.Params("id_promocion"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de la promoción debe ser un número entero válido.")
	}

	links, err := h.service.LinksForPromotion(promotionID)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(links)
}

func (h *Handler) createLink(c *fiber.Ctx) error {
	payload := new(LinkKey)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	l, err := h.service.CreateLink(*payload)
	if err != nil {
		if errors.Is(err, ErrMissingLinkKey) {
			return respond.Error(c, fiber.StatusBadRequest, "id_producto y id_promocion son requeridos.")
		}
		switch database.Classify(err) {
		case database.ErrForeignKey:
			return respond.Error(c, fiber.StatusBadRequest, "El producto o la promoción especificada no existe.")
		case database.ErrUnique:
			return respond.Error(c, fiber.StatusConflict, "Este producto ya está asociado a esta promoción.")
		}
		return respond.DBError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

// removeLink takes the pair in the body: the junction has no surrogate key.
func (h *Handler) removeLink(c *fiber.Ctx) error {
	payload := new(LinkKey)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteLink(*payload); err != nil {
		if errors.Is(err, ErrMissingLinkKey) {
			return respond.Error(c, fiber.StatusBadRequest, "id_producto y id_promocion son requeridos en el cuerpo de la solicitud para eliminar la asociación.")
		}
		if errors.Is(err, ErrLinkNotFound) {
			return respond.NotFound(c, "Asociación producto-promoción no encontrada para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listFeatured(c *fiber.Ctx) error {
	var f FeaturedFilter
	if tipo := c.Query("tipo_destacado"); tipo != "" {
		f.TipoDestacado = &tipo
	}
	f.ActivosAhora = c.Query("activos_ahora") == "true"

	featured, err := h.service.ListFeatured(f)
	if err != nil {
		return respond.DBError(c, err, "")
	}
	return c.JSON(featured)
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de destacado debe ser un número entero válido.")
	}

	f, err := h.service.GetFeatured(id)
	if err != nil {
		if errors.Is(err, ErrFeaturedNotFound) {
			return respond.NotFound(c, "Registro de producto destacado no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(f)
}

func (h *Handler) featuredByProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id_producto"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del producto debe ser un número entero válido.")
	}

	f, err := h.service.GetFeaturedByProduct(productID)
	if err != nil {
		if errors.Is(err, ErrFeaturedNotFound) {
			return respond.NotFound(c, "Este producto no está marcado como destacado")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(f)
}

func (h *Handler) upsertFeatured(c *fiber.Ctx) error {
	payload := new(NewFeatured)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}

	f, err := h.service.UpsertFeatured(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingProduct):
			return respond.Error(c, fiber.StatusBadRequest, "id_producto es requerido.")
		case errors.Is(err, ErrInvalidDate):
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha inválido. Usar YYYY-MM-DD.")
		case errors.Is(err, ErrDateRange):
			return respond.Error(c, fiber.StatusBadRequest, "fecha_fin no puede ser anterior a fecha_inicio.")
		}
		switch database.Classify(err) {
		case database.ErrForeignKey:
			return respond.Error(c, fiber.StatusBadRequest, "El producto especificado no existe.")
		case database.ErrEnum:
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para tipo_destacado no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(f)
}

func (h *Handler) updateFeatured(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de destacado debe ser un número entero válido.")
	}

	payload := new(FeaturedUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respond.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Empty() {
		return respond.Error(c, fiber.StatusBadRequest, "Se requiere al menos un campo (tipo_destacado, fecha_inicio, fecha_fin) para actualizar.")
	}

	f, err := h.service.UpdateFeatured(id, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			return respond.Error(c, fiber.StatusBadRequest, "Formato de fecha inválido. Usar YYYY-MM-DD.")
		case errors.Is(err, ErrDateRange):
			return respond.Error(c, fiber.StatusBadRequest, "fecha_fin no puede ser anterior a fecha_inicio.")
		case errors.Is(err, ErrFeaturedNotFound):
			return respond.NotFound(c, "Registro de producto destacado no encontrado para actualizar")
		}
		if errors.Is(database.Classify(err), database.ErrEnum) {
			return respond.Error(c, fiber.StatusBadRequest, "Valor proporcionado para tipo_destacado no es válido.")
		}
		return respond.DBError(c, err, "")
	}
	return c.JSON(f)
}

func (h *Handler) removeFeatured(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID de destacado debe ser un número entero válido.")
	}

	if err := h.service.DeleteFeatured(id); err != nil {
		if errors.Is(err, ErrFeaturedNotFound) {
			return respond.NotFound(c, "Registro de producto destacado no encontrado para borrar")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) removeFeaturedByProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id_producto"))
	if err != nil {
		return respond.Error(c, fiber.StatusBadRequest, "El ID del producto debe ser un número entero válido.")
	}

	if err := h.service.DeleteFeaturedByProduct(productID); err != nil {
		if errors.Is(err, ErrFeaturedNotFound) {
			return respond.NotFound(c, "Producto no estaba marcado como destacado o no encontrado")
		}
		return respond.DBError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
