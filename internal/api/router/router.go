package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/api/handler"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/api/middleware"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/jwt"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/redis"
)

// Setup assembles the gin engine: middleware, health probe, API routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", middleware.JWTAuth(jwtMgr, rdb, logger), h.Auth.Logout)
		}

		dtr := api.Group("/dtr")
		{
			// Ingestion mutates the log store, so it sits behind the
			// admin token. Reading reconstructed calendars does not.
			dtr.POST("/generate",
				middleware.JWTAuth(jwtMgr, rdb, logger),
				middleware.BodyLimit(cfg.Server.MaxBodyBytes),
				h.DTR.Generate)
			dtr.GET("/batches", middleware.JWTAuth(jwtMgr, rdb, logger), h.DTR.ListBatches)
			dtr.GET("/batches/:id/raw", middleware.JWTAuth(jwtMgr, rdb, logger), h.DTR.GetBatchRaw)

			dtr.GET("/employees", h.DTR.ListEmployees)
			dtr.GET("/employees/:name/calendar", h.DTR.GetEmployeeCalendar)
		}

		export := api.Group("/export")
		{
			export.GET("/dtr.xlsx", h.Export.ExportExcel)
			export.GET("/dtr.pdf", h.Export.ExportPDF)
			export.GET("/dtr.ics", h.Export.ExportICS)
		}
	}

	return r
}
