package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/mercadogaucho/api/internal/account"
	"github.com/mercadogaucho/api/internal/address"
	"github.com/mercadogaucho/api/internal/audit"
	"github.com/mercadogaucho/api/internal/auth"
	"github.com/mercadogaucho/api/internal/banner"
	"github.com/mercadogaucho/api/internal/cart"
	"github.com/mercadogaucho/api/internal/category"
	"github.com/mercadogaucho/api/internal/config"
	"github.com/mercadogaucho/api/internal/database"
	"github.com/mercadogaucho/api/internal/message"
	"github.com/mercadogaucho/api/internal/order"
	"github.com/mercadogaucho/api/internal/payment"
	"github.com/mercadogaucho/api/internal/product"
	"github.com/mercadogaucho/api/internal/promotion"
	"github.com/mercadogaucho/api/internal/respond"
	"github.com/mercadogaucho/api/internal/shipment"
	"github.com/mercadogaucho/api/internal/store"
	"github.com/mercadogaucho/api/internal/token"
	"github.com/mercadogaucho/api/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuración inválida: %v", err)
	}
	respond.Production = cfg.IsProduction()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}
	defer db.Close()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if cfg.JWTSecret != "" {
		app.Use(auth.Middleware(cfg.JWTSecret))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API del Mercado Gaucho en funcionamiento!")
	})
	app.Get("/estado-db", func(c *fiber.Ctx) error {
		var one int
		if err := db.QueryRow(`SELECT 1`).Scan(&one); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"estado":  "error",
				"mensaje": "Hubo un error al intentar conectar con la base de datos.",
			})
		}
		return c.JSON(fiber.Map{
			"estado":  "ok",
			"mensaje": "La API pudo conectarse correctamente a la base de datos.",
		})
	})

	userHandler := user.NewHandler(user.NewService(user.NewPostgresRepository(db)))
	accountHandler := account.NewHandler(account.NewService(account.NewPostgresRepository(db)))
	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db)))
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)))
	paymentHandler := payment.NewHandler(payment.NewService(payment.NewPostgresRepository(db)))
	shipmentHandler := shipment.NewHandler(shipment.NewService(shipment.NewPostgresRepository(db)))
	addressHandler := address.NewHandler(address.NewService(address.NewPostgresRepository(db)))
	messageHandler := message.NewHandler(message.NewService(message.NewPostgresRepository(db)))
	promotionHandler := promotion.NewHandler(promotion.NewService(promotion.NewPostgresRepository(db)))
	storeHandler := store.NewHandler(store.NewService(store.NewPostgresRepository(db)))
	bannerHandler := banner.NewHandler(banner.NewService(banner.NewPostgresRepository(db)))
	auditHandler := audit.NewHandler(audit.NewService(audit.NewPostgresRepository(db)))
	tokenHandler := token.NewHandler(token.NewService(token.NewPostgresRepository(db), cfg.JWTSecret))

	mounts := []struct {
		prefix   string
		register func(fiber.Router)
	}{
		{"/usuarios", userHandler.RegisterRoutes},
		{"/cuentas_personales", accountHandler.RegisterPersonalRoutes},
		{"/cuentas_empresa", accountHandler.RegisterBusinessRoutes},
		{"/categorias", categoryHandler.RegisterRoutes},
		{"/productos", productHandler.RegisterProductRoutes},
		{"/imagenes_producto", productHandler.RegisterImageRoutes},
		{"/carritos", cartHandler.RegisterCartRoutes},
		{"/carrito_detalle", cartHandler.RegisterItemRoutes},
		{"/ordenes", orderHandler.RegisterOrderRoutes},
		{"/detalle_orden", orderHandler.RegisterItemRoutes},
		{"/pagos", paymentHandler.RegisterRoutes},
		{"/envios", shipmentHandler.RegisterRoutes},
		{"/direcciones", addressHandler.RegisterAddressRoutes},
		{"/ubicacion_usuario", addressHandler.RegisterLocationRoutes},
		{"/mensajes", messageHandler.RegisterRoutes},
		{"/promociones", promotionHandler.RegisterPromotionRoutes},
		{"/productos_promocionados", promotionHandler.RegisterLinkRoutes},
		{"/productos_destacados", promotionHandler.RegisterFeaturedRoutes},
		{"/tiendas_oficiales", storeHandler.RegisterRoutes},
		{"/banners", bannerHandler.RegisterRoutes},
		{"/logs_actividad", auditHandler.RegisterLogRoutes},
		{"/inicios_sesion", auditHandler.RegisterLoginRoutes},
		{"/tokens_autenticacion", tokenHandler.RegisterRoutes},
	}

	api := app.Group("/api")
	for _, m := range mounts {
		m.register(api.Group(m.prefix))
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Ruta no encontrada."})
	})

	log.Printf("Servidor API del Mercado Gaucho escuchando en %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("el servidor se detuvo: %v", err)
	}
}
