// Entry point: loads configuration, opens the database pool, runs
// migrations, wires services and handlers, and serves HTTP with
// graceful shutdown.
//
// @title Blog Pessoal API
// @version 1.0
// @description API de blog pessoal com usuários, temas e postagens.
// @contact.name API Support
// @contact.email suporte@blogpessoal.dev
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/auth"
	"github.com/user/blogpessoal-go/config"
	"github.com/user/blogpessoal-go/db"
	_ "github.com/user/blogpessoal-go/docs" // Generated Swagger docs
	"github.com/user/blogpessoal-go/posts"
	"github.com/user/blogpessoal-go/storage"
	"github.com/user/blogpessoal-go/topics"
	"github.com/user/blogpessoal-go/users"
)

func main() {
	// .env is a development convenience; in production the variables
	// come from the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Services and handlers are wired by hand; dependencies flow in
	// through constructors.
	userStore := auth.NewSQLUserStore(pool)
	authService := auth.NewAuthService(userStore, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	photos := storage.NewLocal(cfg.Storage.UploadDir)
	userService := users.NewUserService(pool)
	userHandlers := users.NewUserHandlers(userService, photos)

	topicService := topics.NewTopicService(pool)
	topicHandlers := topics.NewTopicHandlers(topicService)

	postService := posts.NewPostService(pool)
	postHandlers := posts.NewPostHandlers(postService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Convert panics that escape handlers into a structured 500 body.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writePanicError(ww, apperror.NewInternalError("erro interno do servidor", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	requireAuth := auth.RequireAuth(authService.Codec(), userStore)

	// Public authentication endpoints.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
	})

	// User management is fully behind authentication.
	r.Route("/v1/usuarios", func(r chi.Router) {
		r.Use(requireAuth)
		userHandlers.RegisterRoutes(r)
	})

	// Temas and postagens: reads are public, mutations require a token.
	r.Route("/temas", func(r chi.Router) {
		topicHandlers.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			topicHandlers.RegisterProtectedRoutes(r)
		})
	})

	r.Route("/postagens", func(r chi.Router) {
		postHandlers.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			postHandlers.RegisterProtectedRoutes(r)
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writePanicError is a local helper for the panic recovery middleware.
func writePanicError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
