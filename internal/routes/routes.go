package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"clinic-registry-server/internal/config"
	"clinic-registry-server/internal/handlers"
	"clinic-registry-server/internal/middleware"
	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/registry"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, logger *logrus.Entry) {
	// The creation pipeline behind the nested POST endpoints.
	storage := registry.NewStorage(db)
	service := registry.NewService(storage, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg, logger)
	userHandler := handlers.NewUserHandler(db, service, logger)
	patientHandler := handlers.NewPatientHandler(db, service, logger)
	specialistHandler := handlers.NewSpecialistHandler(db, service, logger)
	reportHandler := handlers.NewReportHandler(db, service, logger)
	roleHandler := handlers.NewRoleHandler(db, service, logger)
	specializationHandler := handlers.NewSpecializationHandler(db, service, logger)
	disorderHandler := handlers.NewDisorderHandler(db, logger)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Registration endpoints: each creates the account and its
		// profile (and, for reports, the whole graph) in one request.
		public.POST("/patients", patientHandler.CreatePatient)
		public.POST("/specialists", specialistHandler.CreateSpecialist)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// User management routes (admin-only)
		userRoutes := private.Group("/users")
		userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			userRoutes.POST("", userHandler.CreateUser)
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/:id", userHandler.GetUserByID)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.PATCH("/:id/role", userHandler.UpdateUserRole)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}

		// Patient routes
		patientRoutes := private.Group("/patients")
		{
			patientRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSpecialist), patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), patientHandler.DeletePatient)
		}

		// Specialist routes
		specialistRoutes := private.Group("/specialists")
		{
			specialistRoutes.GET("", specialistHandler.GetSpecialists)
			specialistRoutes.GET("/:id", specialistHandler.GetSpecialistByID)
			specialistRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSpecialist), specialistHandler.UpdateSpecialist)
			specialistRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), specialistHandler.DeleteSpecialist)
		}

		// Report routes: creation nests full patient and specialist
		// payloads, so it is restricted to staff.
		reportRoutes := private.Group("/reports")
		{
			reportRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSpecialist), reportHandler.CreateReport)
			reportRoutes.GET("", reportHandler.GetReports)
			reportRoutes.GET("/:id", reportHandler.GetReportByID)
			reportRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSpecialist), reportHandler.UpdateReport)
			reportRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), reportHandler.DeleteReport)
		}

		// Reference rows
		roleRoutes := private.Group("/roles")
		roleRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			roleRoutes.POST("", roleHandler.CreateRole)
			roleRoutes.GET("", roleHandler.GetRoles)
			roleRoutes.GET("/:id", roleHandler.GetRoleByID)
			roleRoutes.DELETE("/:id", roleHandler.DeleteRole)
		}

		specializationRoutes := private.Group("/specializations")
		{
			specializationRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), specializationHandler.CreateSpecialization)
			specializationRoutes.GET("", specializationHandler.GetSpecializations)
			specializationRoutes.GET("/:id", specializationHandler.GetSpecializationByID)
			specializationRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), specializationHandler.DeleteSpecialization)
		}

		disorderRoutes := private.Group("/disorders")
		{
			disorderRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSpecialist), disorderHandler.CreateDisorder)
			disorderRoutes.GET("", disorderHandler.GetDisorders)
			disorderRoutes.GET("/:id", disorderHandler.GetDisorderByID)
			disorderRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleSpecialist), disorderHandler.UpdateDisorder)
			disorderRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), disorderHandler.DeleteDisorder)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
