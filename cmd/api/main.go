package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/telecrm/internal/infra/database"
	"github.com/xavierca1/telecrm/internal/infra/http/handlers"
	"github.com/xavierca1/telecrm/internal/infra/http/middleware"
	"github.com/xavierca1/telecrm/internal/infra/mail"
	"github.com/xavierca1/telecrm/internal/infra/queue"
	"github.com/xavierca1/telecrm/internal/infra/worker"
	"github.com/xavierca1/telecrm/internal/logger"
	"github.com/xavierca1/telecrm/internal/usecase"
)

func main() {
	godotenv.Load()
	defer logger.Sync()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("failed connecting to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("failed migrating schema", zap.Error(err))
	}

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		logger.Fatal("failed connecting to RabbitMQ", zap.Error(err))
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	userRepo := database.NewUserRepository(db)
	leadRepo := database.NewLeadRepository(db)
	callRepo := database.NewCallRecordRepository(db)

	database.SeedDefaultAdmin(ctx, userRepo)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@telecrm.local"),
	)

	// 3. Background workers
	followUpWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go followUpWorker.Start(queue.QueueName)

	staleWorker := worker.NewStaleLeadWorker(db)
	go staleWorker.Start(ctx)

	// 4. Use cases
	jwtSecret := []byte(envOr("JWT_SECRET", "dev-secret-change-me"))
	authUC := usecase.NewAuthUseCase(userRepo, jwtSecret)
	leadUC := usecase.NewLeadUseCase(leadRepo)
	recordCallUC := usecase.NewRecordCallUseCase(leadRepo, callRepo, userRepo, producer)
	callRecordUC := usecase.NewCallRecordUseCase(callRepo, leadRepo)
	metricsUC := usecase.NewMetricsUseCase(userRepo, leadRepo, callRepo)

	// 5. Handlers
	userHandler := handlers.NewUserHandler(authUC)
	leadHandler := handlers.NewLeadHandler(leadUC, recordCallUC)
	callHandler := handlers.NewCallRecordHandler(callRecordUC, metricsUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/health", healthHandler.Handle)

	r.Post("/api/users/register", userHandler.Register)
	r.Post("/api/users/login", userHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticator(jwtSecret))

		r.Get("/api/users/profile", userHandler.Profile)
		r.Put("/api/users/profile", userHandler.UpdateProfile)
		r.Get("/api/users", userHandler.ListTelecallers)
		r.Get("/api/users/{id}", userHandler.Get)
		r.Delete("/api/users/{id}", userHandler.Delete)

		r.Get("/api/leads", leadHandler.List)
		r.Post("/api/leads", leadHandler.Create)
		r.Get("/api/leads/{id}", leadHandler.Get)
		r.Put("/api/leads/{id}", leadHandler.Update)
		r.Delete("/api/leads/{id}", leadHandler.Delete)
		r.Put("/api/leads/{id}/status", leadHandler.UpdateStatus)

		r.Get("/api/call-records", callHandler.List)
		r.Post("/api/call-records", callHandler.Create)
		r.Get("/api/call-records/metrics", callHandler.DashboardMetrics)
		r.Get("/api/call-records/trends", callHandler.CallTrends)
		r.Get("/api/call-records/lead/{leadId}", callHandler.ListByLead)
		r.Get("/api/call-records/{id}", callHandler.Get)
	})

	addr := ":" + envOr("PORT", "8080")
	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	return strings.Split(raw, ",")
}
