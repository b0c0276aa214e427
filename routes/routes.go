package routes

import (
	"micat-content-api/controllers"
	"micat-content-api/middleware"
	"micat-content-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "MICAT Content Review API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", controllers.GetProfile)
			protected.POST("/switch-role", controllers.SwitchRole)

			// Reference data
			protected.GET("/macs", controllers.GetMACs)

			// Submissions
			submissions := protected.Group("/submissions")
			{
				submissions.GET("", controllers.GetSubmissions)
				submissions.GET("/:id", controllers.GetSubmission)

				// Only MAC officers upload content
				submissions.POST("", middleware.RequireRole(models.RoleMACOfficer), controllers.CreateSubmission)

				// Only MICAT reviewers act on the queue
				submissions.POST("/:id/start-review", middleware.RequireRole(models.RoleMICATReviewer), controllers.StartReview)
				submissions.POST("/:id/approve", middleware.RequireRole(models.RoleMICATReviewer), controllers.ApproveSubmission)
				submissions.POST("/:id/deny", middleware.RequireRole(models.RoleMICATReviewer), controllers.DenySubmission)
				submissions.POST("/:id/return", middleware.RequireRole(models.RoleMICATReviewer), controllers.ReturnSubmission)
			}

			// Account management (admin only)
			users := protected.Group("/users")
			users.Use(middleware.RequireRole(models.RoleAdmin))
			{
				users.GET("", controllers.GetUsers)
				users.POST("", controllers.CreateUser)
				users.POST("/:id/toggle-active", controllers.ToggleUserStatus)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.GET("/counter", controllers.GetNotificationCounter)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			}

			// Audit trail (reviewer and admin)
			protected.GET("/activity",
				middleware.RequireRole(models.RoleMICATReviewer, models.RoleAdmin),
				controllers.GetActivityLogs)

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)
		}
	}
}
