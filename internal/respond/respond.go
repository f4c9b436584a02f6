// Package respond centralizes the mapping from store/validation failures to
// HTTP responses so every resource answers the same way.
package respond

import (
	"database/sql"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/mercadogaucho/api/internal/database"
)

// Production suppresses error detail on 500 responses. Set once at startup.
var Production bool

// Error writes a JSON error body with the given status.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// NotFound is the 404 shape used by every by-id lookup.
func NotFound(c *fiber.Ctx, msg string) error {
	return Error(c, fiber.StatusNotFound, msg)
}

// MethodDisabled answers 405 for append-only resources without touching the
// store.
func MethodDisabled(c *fiber.Ctx, msg string) error {
	return Error(c, fiber.StatusMethodNotAllowed, msg)
}

// DBError classifies a store error and answers with the status the taxonomy
// prescribes: 400 for broken references and enum violations, 409 for
// uniqueness conflicts, 404 for missing rows, 500 otherwise. refMsg is the
// resource-specific wording for the referential case. The underlying message
// is attached to 500s only outside production, but always logged.
func DBError(c *fiber.Ctx, err error, refMsg string) error {
	switch classified := database.Classify(err); {
	case errors.Is(classified, database.ErrForeignKey):
		return Error(c, fiber.StatusBadRequest, refMsg)
	case errors.Is(classified, database.ErrUnique):
		return Error(c, fiber.StatusConflict, "Conflicto: el valor ya existe.")
	case errors.Is(classified, database.ErrEnum):
		return Error(c, fiber.StatusBadRequest, "Valor proporcionado no es válido para el campo enumerado.")
	case errors.Is(classified, sql.ErrNoRows):
		return NotFound(c, "Recurso no encontrado.")
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		if Production {
			return Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error interno del servidor",
			"detalle": err.Error(),
		})
	}
}
