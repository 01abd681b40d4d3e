package demoapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/audit"
	"github.com/glowdesk/medspa-console/internal/config"
	"github.com/glowdesk/medspa-console/internal/middleware"
)

// NewEngine wires the demo backend. The same engine backs the demoapi
// binary and the package tests.
func NewEngine(store *Store, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RateLimitMiddleware(cfg.RequestsPerMin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := NewAuthHandler(store, cfg)
	meHandler := NewMeHandler(store)
	appointmentHandler := NewAppointmentHandler(store)
	treatmentHandler := NewTreatmentHandler(store, auditDispatcher)
	soapNoteHandler := NewSOAPNoteHandler(store, auditDispatcher)
	clientHandler := NewClientHandler(store)

	// ======================================================
	// ROUTES — PUBLIC
	// ======================================================
	r.POST("/login", authHandler.Login)
	r.POST("/register", authHandler.Register)

	// ======================================================
	// ROUTES — AUTHENTICATED
	// ======================================================
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/user", meHandler.GetMe)

		authed.GET("/bookings", appointmentHandler.ListBookings)
		authed.GET("/appointments", appointmentHandler.ListAll)

		authed.GET("/treatments", treatmentHandler.List)
		authed.POST("/treatments", treatmentHandler.Create)
		authed.PUT("/treatments/:id", treatmentHandler.Update)
		authed.DELETE("/treatments/:id", treatmentHandler.Delete)

		authed.GET("/clients", clientHandler.List)

		authed.GET("/soap-notes", soapNoteHandler.List)
		authed.POST("/soap-notes", soapNoteHandler.Create)
		authed.PUT("/soap-notes/:id", soapNoteHandler.Update)
		authed.DELETE("/soap-notes/:id", soapNoteHandler.Delete)
	}

	return r
}
