package routes

import (
	"tools-directory-api/controllers"
	"tools-directory-api/middleware"
	"tools-directory-api/models"

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
					"message": "Tools Directory API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", controllers.GetProfile)

			// Reporting (any authenticated user)
			reports := protected.Group("/reports")
			{
				reports.POST("", controllers.SubmitReport)
				reports.GET("/mine", controllers.GetMyReports)
			}

			// Appeals against one's own sanctions
			protected.POST("/actions/:action_id/appeals", controllers.CreateAppeal)

			// Moderation workspace
			moderation := protected.Group("/moderation")
			{
				// Reviewers (moderator or admin) work the queue
				review := moderation.Group("")
				review.Use(middleware.RequireRole(models.RoleModerator, models.RoleAdmin))
				{
					review.GET("/reports", controllers.GetReports)
					review.GET("/reports/pending", controllers.GetPendingReports)
					review.GET("/queue", controllers.GetQueue)
					review.POST("/reports/:report_id/assign", controllers.AssignReport)
					review.POST("/reports/:report_id/decision", controllers.MakeDecision)
					review.GET("/users/:user_id/status", controllers.GetUserStatus)
					review.GET("/users/:user_id/actions", controllers.GetUserActions)
					review.GET("/statistics", controllers.GetStatistics)
				}

				// Enforcement and appeal review are admin only
				admin := moderation.Group("")
				admin.Use(middleware.RequireRole(models.RoleAdmin))
				{
					admin.POST("/content/remove", controllers.RemoveContent)
					admin.POST("/content/hide", controllers.HideContent)
					admin.POST("/actions/warn", controllers.WarnUser)
					admin.POST("/actions/suspend", controllers.SuspendUser)
					admin.POST("/actions/ban", controllers.BanUser)
					admin.POST("/actions/restore", controllers.RestoreUser)
					admin.GET("/appeals/pending", controllers.GetPendingAppeals)
					admin.POST("/appeals/:appeal_id/approve", controllers.ApproveAppeal)
					admin.POST("/appeals/:appeal_id/reject", controllers.RejectAppeal)
					admin.POST("/sweep-suspensions", controllers.SweepSuspensions)
				}
			}
		}
	}
}
