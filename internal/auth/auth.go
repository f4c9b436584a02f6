// Package auth provides the optional bearer-token middleware. It is mounted
// only when a signing secret is configured, so an unconfigured deployment
// keeps every route open.
package auth

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/mercadogaucho/api/internal/respond"
)

// Middleware validates the Authorization bearer token on every mutating
// request. Reads stay public, as do user registration and token issuance,
// otherwise no client could ever obtain a token.
func Middleware(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
		Filter:     public,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return respond.Error(c, fiber.StatusUnauthorized, "Token de autenticación inválido o ausente.")
		},
	})
}

func public(c *fiber.Ctx) bool {
	if c.Method() == fiber.MethodGet {
		return true
	}
	if c.Method() == fiber.MethodPost {
		switch c.Path() {
		case "/api/usuarios", "/api/usuarios/", "/api/tokens_autenticacion", "/api/tokens_autenticacion/":
			return true
		}
	}
	return false
}
