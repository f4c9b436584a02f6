package audit

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// The immutable-resource routes answer before any service call, so the
// handler can be wired with a nil service.
func newAuditApp() *fiber.App {
	handler := NewHandler(nil)
	app := fiber.New()
	handler.RegisterLogRoutes(app.Group("/api/logs_actividad"))
	handler.RegisterLoginRoutes(app.Group("/api/inicios_sesion"))
	return app
}

func TestLogsRejectMutation(t *testing.T) {
	app := newAuditApp()

	cases := []struct {
		method, path, fragment string
	}{
		{"PUT", "/api/logs_actividad/3", "Los logs son inmutables."},
		{"DELETE", "/api/logs_actividad/3", "políticas de retención"},
		{"PUT", "/api/inicios_sesion/3", "Los logs son inmutables."},
		{"DELETE", "/api/inicios_sesion/3", "políticas de retención"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", tc.method, tc.path, err)
		}
		if res.StatusCode != fiber.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected 405, got %d", tc.method, tc.path, res.StatusCode)
		}
		b, _ := io.ReadAll(res.Body)
		if !strings.Contains(string(b), tc.fragment) {
			t.Errorf("%s %s: body %q missing %q", tc.method, tc.path, b, tc.fragment)
		}
	}
}
