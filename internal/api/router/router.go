package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "peertest/docs"
	"peertest/internal/api/handler"
	"peertest/internal/api/middleware"
	"peertest/internal/core"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/git/api"
	"peertest/internal/repository"
	"peertest/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, engine *core.Engine, connect api.Connector, sync handler.SyncTrigger, version string) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Repository
	userRepo := repository.NewUserRepository()
	projectRepo := repository.NewProjectRepository()

	// 初始化Service
	authService := service.NewAuthService(cfg, userRepo, connect)
	userService := service.NewUserService(cfg, userRepo)
	projectService := service.NewProjectService(cfg, engine, connect, projectRepo, userRepo)
	commentService := service.NewCommentService(cfg, engine, projectRepo, userRepo)
	testService := service.NewTestService(cfg, engine, connect, userRepo)

	// 初始化Handler
	statusHandler := handler.NewStatusHandler(cfg.Server.Name, version)
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	commentHandler := handler.NewCommentHandler(commentService)
	testHandler := handler.NewTestHandler(testService)
	syncHandler := handler.NewSyncHandler(sync)

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", statusHandler.Status)

		// 认证相关(无需token)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/resetpassword", authHandler.ResetPassword)
		}

		// 需要认证的路由
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			// 认证信息
			authed.GET("/auth/me", authHandler.GetMe)
			authed.POST("/auth/verifygitlabuser", authHandler.VerifyGitlabUser)

			// 用户管理
			userGroup := authed.Group("/users")
			{
				userGroup.GET("", userHandler.List)
				userGroup.PUT("/me", userHandler.Update)
				userGroup.GET("/:id", userHandler.Get)
				userGroup.DELETE("/:id", userHandler.Delete)
			}

			// 项目管理
			projectGroup := authed.Group("/projects")
			{
				projectGroup.POST("", projectHandler.Create)       // fork并初始化
				projectGroup.GET("", projectHandler.List)          // 列表查询
				projectGroup.GET("/:id", projectHandler.Retrieve)  // 主项目+配套测试项目详情
				projectGroup.PUT("/:id", projectHandler.Update)    // 提交文件并联动同步
				projectGroup.DELETE("/:id", projectHandler.Delete) // 远端+本地删除
			}

			// 评论与评分
			authed.POST("/comments", commentHandler.PostComment)
			authed.GET("/comments", commentHandler.ListComments)
			authed.POST("/reviews", commentHandler.PostReview)
			authed.GET("/reviews", commentHandler.ListReviews)

			// 测试触发与查询
			testGroup := authed.Group("/tests")
			{
				testGroup.POST("", testHandler.Trigger)
				testGroup.GET("", testHandler.List)
				testGroup.GET("/detail", testHandler.Get)
			}

			// 手动触发全量分支同步
			authed.POST("/sync", syncHandler.Trigger)
		}
	}

	return r
}
