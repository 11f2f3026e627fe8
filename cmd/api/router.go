package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

// SetupRouter wires all HTTP routes. Route groups mirror the domain
// packages; auth requirements are applied per group.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	v1 := router.Group("/api/v1")

	v1.GET("/health", healthCheckHandler(c))

	authRequired := middleware.Auth(c.JWTManager, c.Cache)
	adminOnly := middleware.RequireRole(user.RoleAdministrator)

	// Authentication
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/refresh", c.AuthHandler.Refresh)
		auth.POST("/logout", authRequired, c.AuthHandler.Logout)
		auth.GET("/me", authRequired, c.AuthHandler.Me)
	}

	// Books: reads are public, detail reads are personalized when a
	// valid token is present, mutations need a bearer token.
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/filter", c.BookHandler.List)
		books.GET("/search", c.BookHandler.Search)
		books.GET("/:id", middleware.OptionalAuth(c.JWTManager, c.Cache), c.BookHandler.GetByID)

		books.POST("", authRequired, c.BookHandler.Create)
		books.PUT("/:id", authRequired, c.BookHandler.Update)
		books.DELETE("/:id", authRequired, c.BookHandler.Delete)
	}

	// Categories: reads are public, mutations are administrator-only.
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/filter", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.GET("/:id/books", c.CategoryHandler.GetBooks)

		categories.POST("", authRequired, adminOnly, c.CategoryHandler.Create)
		categories.PUT("/:id", authRequired, adminOnly, c.CategoryHandler.Update)
		categories.DELETE("/:id", authRequired, adminOnly, c.CategoryHandler.Delete)
	}

	// Wishlist: always scoped to the authenticated caller.
	wishlist := v1.Group("/wishlist", authRequired)
	{
		wishlist.GET("", c.WishlistHandler.List)
		wishlist.POST("", c.WishlistHandler.Create)
		wishlist.GET("/check/:book_id", c.WishlistHandler.Check)
		wishlist.GET("/:id", c.WishlistHandler.GetByID)
		wishlist.PUT("/:id", c.WishlistHandler.Update)
		wishlist.DELETE("/:id", c.WishlistHandler.Delete)
	}

	// User administration
	users := v1.Group("/users", authRequired, adminOnly)
	{
		users.GET("", c.UserHandler.List)
		users.POST("", c.UserHandler.Create)
		users.GET("/:id", c.UserHandler.GetByID)
		users.PUT("/:id", c.UserHandler.Update)
		users.DELETE("/:id", c.UserHandler.Delete)
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		// Redis being down degrades caching but not correctness, so it
		// never fails the health check on its own.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
