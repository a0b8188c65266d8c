package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/auth"
	"bookshelf/internal/books"
	"bookshelf/internal/database"
)

// RouterConfig holds all dependencies needed to build the router.
type RouterConfig struct {
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	BookService    *books.Service
	Database       *database.Database
	AllowedOrigins string
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bookshelf API is running"})
	})

	authController := NewAuthController(cfg.AuthService)
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)

		protected := authRoutes.Group("")
		protected.Use(cfg.AuthMiddleware.Handler())
		protected.GET("/me", authController.Me)
		protected.POST("/logout", authController.Logout)
	}

	booksController := NewBooksController(cfg.BookService)
	bookRoutes := router.Group("/api/books")
	bookRoutes.Use(cfg.AuthMiddleware.Handler())
	{
		bookRoutes.GET("", booksController.List)
		bookRoutes.POST("/addBook", booksController.Create)
		bookRoutes.GET("/editBook/:id", booksController.Get)
		bookRoutes.PUT("/editBook/:id", booksController.Update)
		bookRoutes.PATCH("/:id/progress", booksController.UpdateProgress)
		bookRoutes.PATCH("/:id/rating", booksController.UpdateRating)
		bookRoutes.DELETE("/:id", booksController.Delete)
	}

	return router
}
