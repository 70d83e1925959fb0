package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"pulse-backend/internal/database"
	"pulse-backend/internal/handlers"
	customMiddleware "pulse-backend/internal/middleware"
	"pulse-backend/internal/notify"
	"pulse-backend/internal/repository"
	"pulse-backend/internal/sentiment"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "feedback_portal")
	jwtSecret := getEnv("JWT_SECRET", "")
	sentimentURL := getEnv("SENTIMENT_URL", "http://localhost:5000")
	port := getEnv("PORT", "8080")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo()
	feedbackRepo := repository.NewFeedbackRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	// Sentiment annotation is best-effort against an external service
	analyzer := sentiment.NewClient(sentimentURL)

	// Manager notifications go out by email when Resend is configured,
	// otherwise to the log
	var notifier notify.Notifier
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		notifier = notify.NewEmailNotifier(apiKey, getEnv("FROM_EMAIL", "portal@example.com"))
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, manager notifications will be logged only")
		notifier = notify.NewLogNotifier()
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	managerHandler := handlers.NewManagerHandler(userRepo)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, userRepo, analyzer, notifier)
	sentimentHandler := handlers.NewSentimentHandler(analyzer)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pulse-backend"}`))
	})

	// Public routes (no auth required)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/managers", managerHandler.ListManagers)
	r.Post("/sentiment", sentimentHandler.Analyze)

	// Protected routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(jwtSecret))

		r.Post("/feedback", feedbackHandler.SubmitFeedback)
		r.Get("/feedback", feedbackHandler.ListFeedback)
		r.Post("/feedback/{id}/respond", feedbackHandler.Respond)
	})

	// Start server
	log.Printf("🚀 Feedback portal backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
