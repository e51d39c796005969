package app

import (
	"course_share_backend/docs"
	"course_share_backend/internal/config"
	"course_share_backend/internal/middleware"
	"course_share_backend/internal/model"
	"course_share_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Signup)
		public.POST("/login", c.auth.Login)
		public.GET("/home", c.leaderboard.Home)
		public.GET("/topusers", c.leaderboard.TopUsers)
		public.GET("/profile/:username", c.user.PublicProfile)
	}

	// 2. 课程读接口：可选认证，游客只见已通过课程，登录用户可见自己的
	browse := router.Group("/api")
	browse.Use(middleware.TryAuthMiddleware(cfg))
	{
		browse.GET("/courses", c.course.List)
		browse.GET("/courses/:id", c.course.Get)
		browse.GET("/courses/:id/rate", c.rating.GetForRating)
		browse.GET("/mycourses", c.course.MyCourses)
		browse.GET("/mycourses/enrolled", c.course.EnrolledCourses)
	}

	// 3. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.POST("/courses", c.course.Create)
		authGroup.PUT("/courses/:id", c.course.Update)
		authGroup.DELETE("/courses/:id", c.course.Delete)
		authGroup.POST("/courses/:id/rate", c.rating.Rate)
		authGroup.POST("/enroll/:id", c.enrollment.Enroll)
		authGroup.POST("/unenroll/:id", c.enrollment.Unenroll)
	}

	// 4. 版主/管理员接口
	modGroup := router.Group("/api")
	modGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleModerator))
	{
		modGroup.GET("/approvals", c.course.Approvals)
		modGroup.PUT("/courses/:id/approve", c.course.Approve)
		modGroup.DELETE("/users/:username", c.user.DeleteUser)
	}
}
