package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"scoutportal/internal/auth"
	"scoutportal/internal/http/middleware"
	"scoutportal/internal/service"
)

// Services bundles the use-case layer handed to RegisterRoutes.
type Services struct {
	Auth      service.AuthService
	Documents service.DocumentService
	Camps     service.CampService
	News      service.NewsService
	Magazine  service.MagazineService
}

// RegisterRoutes attaches all portal routes to the provided Fiber app.
// Handlers stay free of business logic; authorization is route wiring.
func RegisterRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenManager, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Readiness (DB ping) and liveness probes
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin()

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", Register(svcs.Auth))
	authGroup.Post("/login", Login(svcs.Auth))

	docs := api.Group("/documents")
	docs.Get("/", requireAuth, ListDocuments(svcs.Documents))
	docs.Post("/", requireAuth, requireAdmin, UploadDocument(svcs.Documents))
	docs.Get("/:id/download", requireAuth, DownloadDocument(svcs.Documents))
	docs.Delete("/:id", requireAuth, requireAdmin, DeleteDocument(svcs.Documents))

	camps := api.Group("/camps")
	camps.Get("/", ListCamps(svcs.Camps))
	camps.Get("/all", requireAuth, requireAdmin, ListAllCamps(svcs.Camps))
	camps.Post("/", requireAuth, CreateCamp(svcs.Camps))
	camps.Get("/:id", GetCamp(svcs.Camps))
	camps.Put("/:id/approve", requireAuth, requireAdmin, ApproveCamp(svcs.Camps))
	camps.Put("/:id/reject", requireAuth, requireAdmin, RejectCamp(svcs.Camps))
	camps.Put("/:id", requireAuth, requireAdmin, UpdateCamp(svcs.Camps))
	camps.Delete("/:id", requireAuth, requireAdmin, DeleteCamp(svcs.Camps))

	news := api.Group("/news")
	news.Get("/", ListNews(svcs.News))
	news.Get("/:id", GetNews(svcs.News))
	news.Post("/", requireAuth, requireAdmin, CreateNews(svcs.News))
	news.Put("/:id", requireAuth, requireAdmin, UpdateNews(svcs.News))
	news.Delete("/:id", requireAuth, requireAdmin, DeleteNews(svcs.News))

	issues := api.Group("/issues")
	issues.Get("/", ListIssues(svcs.Magazine))
	issues.Get("/:id/download", DownloadIssue(svcs.Magazine))
	issues.Post("/", requireAuth, requireAdmin, CreateIssue(svcs.Magazine))
	issues.Put("/:id", requireAuth, requireAdmin, UpdateIssue(svcs.Magazine))
	issues.Delete("/:id", requireAuth, requireAdmin, DeleteIssue(svcs.Magazine))
}
