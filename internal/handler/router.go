package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"catalog-service/internal/handler/api"
	"catalog-service/internal/handler/middleware"
	"catalog-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, offerHandler *api.OfferHandler, productHandler *api.ProductHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, offerHandler, productHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, offerHandler *api.OfferHandler, productHandler *api.ProductHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("")
		public.Use(authMiddleware.OptionalAuth())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/offers/:id", Handler: offerHandler.Get},
			{Method: http.MethodGet, Path: "/offer-aliases/:alias", Handler: offerHandler.GetByAlias},
			{Method: http.MethodGet, Path: "/products/:productId/offers", Handler: offerHandler.ListByProduct},
		})

		offers := apiGroup.Group("/offers")
		offers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(offers, []route{
				{Method: http.MethodPost, Path: "", Handler: offerHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: offerHandler.Delete()},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: offerHandler.Publish()},
				{Method: http.MethodPost, Path: "/:id/unpublish", Handler: offerHandler.Unpublish()},
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: offerHandler.Reserve()},
				{Method: http.MethodPost, Path: "/:id/unreserve", Handler: offerHandler.Unreserve()},
				{Method: http.MethodPost, Path: "/:id/archive", Handler: offerHandler.Archive()},
				{Method: http.MethodPut, Path: "/:id/title", Handler: offerHandler.UpdateTitle},
				{Method: http.MethodPut, Path: "/:id/size", Handler: offerHandler.UpdateSize},
				{Method: http.MethodPut, Path: "/:id/categories", Handler: offerHandler.UpdateCategories},
				{Method: http.MethodPut, Path: "/:id/images", Handler: offerHandler.UpdateImages},
				{Method: http.MethodPut, Path: "/:id/notes", Handler: offerHandler.UpdateNotes},
				{Method: http.MethodPut, Path: "/:id/price", Handler: offerHandler.UpdatePrice},
				{Method: http.MethodPost, Path: "/:id/discount", Handler: offerHandler.AddDiscount},
				{Method: http.MethodDelete, Path: "/:id/discount", Handler: offerHandler.RemoveDiscount()},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "/:productId/notifications", Handler: productHandler.Notify, Mw: []gin.HandlerFunc{authMiddleware.RequireSystem()}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
