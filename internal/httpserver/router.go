package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"apjatelpmo/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	dashboardHandler *handler.DashboardHandler,
	scheduleHandler *handler.ScheduleHandler,
	exportHandler *handler.ExportHandler,
	historyHandler *handler.HistoryHandler,
	jwtSecret string,
	db *pgxpool.Pool,
	logger *zap.Logger,
) *Router {
	r := gin.Default()
	r.Use(RequestLogMiddleware(logger))
	r.Use(MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "db_not_ready", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/projects", projectHandler.List)
		auth.GET("/projects/:id", projectHandler.Get)
		auth.POST("/projects", projectHandler.Save)
		auth.GET("/projects/:id/schedule/conflicts", scheduleHandler.ProjectConflicts)
		auth.GET("/projects/:id/history", historyHandler.ListByProject)
		auth.POST("/schedule/check", scheduleHandler.Check)
		auth.GET("/vendors", projectHandler.Vendors)
		auth.POST("/uploads", projectHandler.Upload)
		auth.GET("/dashboard/summary", dashboardHandler.Summary)
		auth.GET("/export/projects.csv", exportHandler.ProjectsCSV)
		auth.GET("/export/projects.xlsx", exportHandler.ProjectsXLSX)
		auth.GET("/export/admin.csv", exportHandler.AdminCSV)
		auth.GET("/export/admin.xlsx", exportHandler.AdminXLSX)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
