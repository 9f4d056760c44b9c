package main

import (
	"net/http"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(c.Config.CORS.FrontendURL))

	authRequired := middleware.Auth(c.JWTManager, c.UserRepo)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "Welcome to " + c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	})

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}

		// Redis is optional; report it without failing the check
		cacheStatus := "disabled"
		if c.Cache != nil {
			cacheStatus = "up"
			if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
				cacheStatus = "down"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"cache":  cacheStatus,
		})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
	}

	users := router.Group("/users", authRequired)
	{
		users.GET("/me", c.UserHandler.GetProfile)
		users.PUT("/me", c.UserHandler.UpdateProfile)
		users.DELETE("/me", c.UserHandler.DeleteAccount)
		users.GET("/me/posts", c.UserHandler.ListMyPosts)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.GET("/:id/comments", c.CommentHandler.ListByPost)

		posts.POST("", authRequired, c.PostHandler.Create)
		posts.PUT("/:id", authRequired, c.PostHandler.Update)
		posts.DELETE("/:id", authRequired, c.PostHandler.Delete)
		posts.POST("/:id/comments", authRequired, c.CommentHandler.Create)
	}

	comments := router.Group("/comments", authRequired)
	{
		comments.PUT("/:id", c.CommentHandler.Update)
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}

	return router
}
