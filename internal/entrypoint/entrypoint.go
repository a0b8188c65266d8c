package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/auth"
	"bookshelf/internal/books"
	"bookshelf/internal/config"
	"bookshelf/internal/database"
	bookstore "bookshelf/internal/database/books"
	"bookshelf/internal/database/users"
	http_controllers "bookshelf/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires up configuration, storage and services, then serves HTTP.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf API v%s", version)

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		generated, err := auth.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate signing secret: %v", err)
		}
		secret = generated
		log.Printf("JWT_SECRET is not set; generated an ephemeral signing secret (tokens will not survive restarts)")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userRepo := users.NewRepository(db.DB)
	bookRepo := bookstore.NewRepository(db.DB)

	tokens := auth.NewTokenManager(secret, cfg.Auth.TokenExpiry)
	authService := auth.NewService(userRepo, tokens, cfg.Auth.BcryptCost)
	authMiddleware := auth.NewMiddleware(tokens)
	bookService := books.NewService(bookRepo)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		BookService:    bookService,
		Database:       db,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        version,
	})

	Serve(router, cfg)
}
