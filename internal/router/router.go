package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/jsonresponse/api/handler"
)

type Handlers struct {
	Catalog  *apiHandler.CatalogHandler
	Health   *apiHandler.HealthHandler
	Fallback *apiHandler.FallbackHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/v1/users", handlers.Catalog.ListUsers)
	r.GET("/api/v1/users/{id}", handlers.Catalog.GetUser)
	r.GET("/api/v1/books", handlers.Catalog.ListBooks)

	// Protected routes
	r.POST("/api/v1/users", authMiddleware(handlers.Catalog.CreateUser))

	// Unmatched requests still get an envelope.
	r.NotFound = handlers.Fallback.NotFound
	r.MethodNotAllowed = handlers.Fallback.MethodNotAllowed
	r.PanicHandler = handlers.Fallback.Panic

	return r
}
