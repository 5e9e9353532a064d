package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jobtracker/internal/api/middleware"
	"jobtracker/internal/audit"
	"jobtracker/internal/auth"
	"jobtracker/internal/tracker"
)

// RegisterRoutes wires the handlers under the /api prefix.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	authService *auth.AuthService,
	redisClient redis.UniversalClient,
	loginRateLimitPerHour int,
) {
	recorder := audit.NewLogRecorder()
	applicationHandler := NewApplicationHandler(tracker.NewApplicationService(db, recorder))
	companyHandler := NewCompanyHandler(tracker.NewCompanyService(db, recorder))
	dashboardHandler := NewDashboardHandler(tracker.NewMetricsService(db))
	auditHandler := NewAuditHandler(db)
	authHandler := NewAuthHandler(db, authService, redisClient, loginRateLimitPerHour)
	stubHandler := NewStubHandler()
	authMiddleware := middleware.AuthMiddleware(authService)

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware)
		{
			protected.GET("/applications", applicationHandler.ListApplications)
			protected.POST("/applications", applicationHandler.CreateApplication)
			protected.GET("/applications/:id", applicationHandler.GetApplication)
			protected.PUT("/applications/:id", applicationHandler.UpdateApplication)
			protected.DELETE("/applications/:id", applicationHandler.DeleteApplication)

			protected.GET("/target-companies", companyHandler.ListCompanies)
			protected.POST("/target-companies", companyHandler.CreateCompany)
			protected.GET("/target-companies/:id", companyHandler.GetCompany)
			protected.PUT("/target-companies/:id", companyHandler.UpdateCompany)
			protected.DELETE("/target-companies/:id", companyHandler.DeleteCompany)

			protected.GET("/tracker/dashboard", dashboardHandler.GetDashboard)
			protected.GET("/audit-log", auditHandler.ListAuditLogs)

			protected.GET("/interviews", stubHandler.ListInterviews)
			protected.POST("/search-companies", stubHandler.SearchCompanies)
		}
	}
}
