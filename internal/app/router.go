package app

import (
	"codetrack_backend/docs"
	"codetrack_backend/internal/config"
	"codetrack_backend/internal/middleware"
	"codetrack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerTrackingRoutes(authGroup, c)
		a.registerRoadmapRoutes(authGroup, c)
		a.registerAnalyticsRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/auth/oauth", c.auth.OAuthLogin)

		// Browsable without an account; a valid token is still honored.
		public.GET("/roadmaps/public", middleware.TryAuthMiddleware(a.Config), c.roadmap.ListPublic)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)
	rg.DELETE("/user/account", c.user.DeleteAccount)
}

func (a *App) registerTrackingRoutes(rg *gin.RouterGroup, c *controllers) {
	// Practice attempts
	rg.POST("/problems", c.problem.Create)
	rg.GET("/problems", c.problem.List)
	rg.GET("/problems/stats", c.problem.Stats)
	rg.GET("/problems/:id", c.problem.Get)
	rg.PUT("/problems/:id", c.problem.Update)
	rg.DELETE("/problems/:id", c.problem.Delete)

	// Learning resources
	rg.POST("/learning-items", c.learning.Create)
	rg.GET("/learning-items", c.learning.List)
	rg.GET("/learning-items/:id", c.learning.Get)
	rg.PUT("/learning-items/:id", c.learning.Update)
	rg.DELETE("/learning-items/:id", c.learning.Delete)

	// Spaced-repetition reviews
	rg.GET("/revisions", c.revision.List)
	rg.GET("/revisions/due", c.revision.ListDue)
	rg.POST("/revisions/:id/complete", c.revision.Complete)
	rg.DELETE("/revisions/:id", c.revision.Delete)
}

func (a *App) registerRoadmapRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/roadmaps", c.roadmap.Create)
	rg.GET("/roadmaps", c.roadmap.List)
	rg.GET("/roadmaps/:id", c.roadmap.Get)
	rg.PUT("/roadmaps/:id", c.roadmap.Update)
	rg.DELETE("/roadmaps/:id", c.roadmap.Delete)
	rg.POST("/roadmaps/:id/topics", c.roadmap.AddTopic)

	rg.PUT("/topics/:topicId", c.roadmap.UpdateTopic)
	rg.DELETE("/topics/:topicId", c.roadmap.DeleteTopic)
	rg.POST("/topics/:topicId/subtopics", c.roadmap.AddSubtopic)

	rg.PUT("/subtopics/:subtopicId", c.roadmap.UpdateSubtopic)
	rg.DELETE("/subtopics/:subtopicId", c.roadmap.DeleteSubtopic)
}

func (a *App) registerAnalyticsRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/analytics/report", c.analytics.GetReport)
	rg.GET("/analytics/revisions", c.analytics.GetRevisionWindow)
	rg.GET("/analytics/insights", c.analytics.GetInsights)
}
