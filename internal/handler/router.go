package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cashdrawer-api/internal/handler/api"
	"cashdrawer-api/internal/handler/middleware"
	"cashdrawer-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// crudHandler is the resource surface every cash drawer endpoint group exposes.
type crudHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type Handlers struct {
	CashDrawer      *api.CashDrawerHandler
	CashTransaction *api.CashTransactionHandler
	DrawerHistory   *api.DrawerHistoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/cash-drawers"), resourceRoutes(handlers.CashDrawer))
		addRoutes(apiGroup.Group("/cash-transactions"), resourceRoutes(handlers.CashTransaction))
		addRoutes(apiGroup.Group("/cash-drawer-history"), resourceRoutes(handlers.DrawerHistory))
	}
}

func resourceRoutes(h crudHandler) []route {
	return []route{
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete},
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
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
