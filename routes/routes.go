// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"suretydesk/handlers"
	"suretydesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers staff authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginStaffHandler)

		// Registration and logout require an authenticated staff session.
		protected := api.Group("")
		protected.Use(middleware.StaffAuthMiddleware())
		protected.POST("/register", middleware.AdminOnly(), hb.RegisterStaffHandler)
		protected.POST("/logout", hb.LogoutStaffHandler)
	}
}

// RegisterClientRoutes registers client management endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.POST("", hb.CreateClientHandler)
		api.GET("", hb.ListClientsHandler)
		api.GET("/:id", hb.GetClientHandler)
		api.PUT("/:id", hb.UpdateClientHandler)
		api.DELETE("/:id", middleware.AdminOnly(), hb.DeleteClientHandler)
	}
}

// RegisterCaseRoutes registers case file endpoints.
func RegisterCaseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cases")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.POST("", hb.CreateCaseHandler)
		api.GET("", hb.ListCasesHandler)
		api.GET("/:id", hb.GetCaseHandler)
		api.PUT("/:id", hb.UpdateCaseHandler)
		api.DELETE("/:id", middleware.AdminOnly(), hb.DeleteCaseHandler)
	}
}

// RegisterBondRoutes registers bond and payment endpoints.
func RegisterBondRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bonds")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.POST("", hb.IssueBondHandler)
		api.GET("", hb.ListBondsHandler)
		api.GET("/:id", hb.GetBondHandler)
		api.PUT("/:id/status", hb.UpdateBondStatusHandler)
		api.GET("/:id/payments", hb.ListBondPaymentsHandler)
	}

	pay := r.Group("/api/payments")
	pay.Use(middleware.StaffAuthMiddleware())
	{
		pay.POST("", hb.RecordPaymentHandler)
		pay.GET("/:id", hb.GetPaymentHandler)
		pay.PUT("/:id/paid", hb.MarkPaymentPaidHandler)
	}
}

// RegisterDocumentRoutes registers document storage endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.POST("", hb.UploadDocumentHandler)
		api.GET("", hb.ListDocumentsHandler)
		api.GET("/:id/url", hb.GetDocumentURLHandler)
		api.DELETE("/:id", middleware.AdminOnly(), hb.DeleteDocumentHandler)
	}
}

// RegisterPortalRoutes registers the client check-in portal endpoints.
func RegisterPortalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/portal")
	{
		api.POST("/login", hb.PortalLoginHandler)

		protected := api.Group("")
		protected.Use(middleware.PortalAuthMiddleware())
		protected.POST("/checkin", hb.SubmitCheckInHandler)
		protected.GET("/checkins", hb.CheckInHistoryHandler)
		protected.GET("/notices", hb.PortalNoticesHandler)
	}
}

// RegisterCheckInRoutes registers the staff-facing check-in endpoints.
func RegisterCheckInRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkins")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.GET("/client/:clientId", hb.ClientHistoryHandler)
		api.GET("/missed", hb.MissedCheckInsHandler)
		api.POST("/reminders", hb.ScheduleRemindersHandler)
	}
}

// RegisterSearchRoutes registers the record search endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.POST("", hb.SearchRecordsHandler)
	}
}

// RegisterTrainingRoutes registers the onboarding course endpoints.
func RegisterTrainingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/training")
	api.Use(middleware.StaffAuthMiddleware())
	{
		api.GET("/modules", hb.ListModulesHandler)
		api.GET("/modules/:id", hb.GetModuleHandler)
		api.POST("/modules", middleware.AdminOnly(), hb.CreateModuleHandler)
		api.DELETE("/modules/:id", middleware.AdminOnly(), hb.DeleteModuleHandler)
		api.POST("/progress", hb.RecordProgressHandler)
		api.GET("/progress", hb.MyProgressHandler)
	}
}

// RegisterHealthRoute registers the health check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterCaseRoutes(r, hb)
	RegisterBondRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterPortalRoutes(r, hb)
	RegisterCheckInRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterTrainingRoutes(r, hb)
	RegisterHealthRoute(r)
}
