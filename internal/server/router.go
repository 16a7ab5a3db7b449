package server

import (
	"net/http"
	"time"

	"impact-log/internal/auth"
	"impact-log/internal/config"
	"impact-log/internal/handlers"
	"impact-log/internal/middleware"
	"impact-log/internal/models"
	"impact-log/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg *config.Config, st *store.Store, hasher *auth.Hasher, tokens *auth.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(corsMiddleware(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.DBTimeout))

	h := handlers.New(st, hasher, tokens)
	requireAuth := middleware.RequireAuth(tokens, st)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	r.GET("/", handlers.Index)

	api := r.Group("/api")

	// AUTH
	authRoutes := api.Group("/auth")
	authRoutes.POST("/signup", h.Signup)
	authRoutes.POST("/login", h.Login)
	authRoutes.GET("/me", requireAuth, h.Me)

	// IMPACT LOGS
	logs := api.Group("/impact-logs", requireAuth)
	logs.POST("", h.CreateLog)
	logs.GET("/my-logs", h.MyLogs)

	// admin only
	logs.GET("/all", adminOnly, h.AllLogs)
	logs.PATCH("/:id/status", adminOnly, h.UpdateStatus)

	// PUBLIC
	public := api.Group("/public")
	public.GET("/impact-logs", h.PublicLogs)
	public.GET("/stats", h.PublicStats)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
