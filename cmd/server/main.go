package main

import (
	"log"
	"strings"

	"github.com/byildiz78/td-invoice/internal/admin"
	"github.com/byildiz78/td-invoice/internal/audit"
	"github.com/byildiz78/td-invoice/internal/auth"
	"github.com/byildiz78/td-invoice/internal/config"
	"github.com/byildiz78/td-invoice/internal/database"
	"github.com/byildiz78/td-invoice/internal/documents"
	"github.com/byildiz78/td-invoice/internal/models"
	"github.com/byildiz78/td-invoice/internal/robotpos"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	pos := robotpos.NewClient(cfg.RobotposAPIURL, cfg.RobotposAPIToken, cfg.QueryPath)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/verify", auth.VerifyHandler())

	// Belge görünümleri
	protected.Get("/invoices/headers", documents.ListHeadersHandler(pos))
	protected.Get("/invoices/branches", documents.BranchSummaryHandler(pos))
	protected.Get("/invoices/export", documents.ExportHandler(pos))
	protected.Get("/invoices/:orderKey", documents.GetInvoiceHandler(pos))
	protected.Get("/invoices", documents.ListInvoicesHandler(pos))

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Kullanıcı yönetimi
	adminRoutes.Post("/users", admin.CreateUserHandler())
	adminRoutes.Get("/users", admin.ListUsersHandler())
	adminRoutes.Delete("/users/:id", admin.DeleteUserHandler())

	// Sorgu günlüğü
	adminRoutes.Get("/fetch-logs", audit.ListFetchLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
