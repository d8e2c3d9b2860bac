package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/mini-crm/internal/config"
	"github.com/xavierca1/mini-crm/internal/infra/auth"
	"github.com/xavierca1/mini-crm/internal/infra/database"
	"github.com/xavierca1/mini-crm/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/mini-crm/internal/infra/http/middleware"
	"github.com/xavierca1/mini-crm/internal/infra/integration/brasilapi"
	"github.com/xavierca1/mini-crm/internal/infra/mail"
	"github.com/xavierca1/mini-crm/internal/infra/queue"
	"github.com/xavierca1/mini-crm/internal/storage"
	"github.com/xavierca1/mini-crm/internal/usecase"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg.Env)

	store := buildStore(cfg)

	// Repositórios e serviços
	leadRepo := database.NewLeadRepository(store, database.DefaultLatency)
	authService := auth.NewService(store, auth.DefaultDelay)
	enrichment := brasilapi.NewClient(cfg.BrasilAPIURL)

	// Colaboradores opcionais: broker e email só entram quando configurados.
	var rabbitConn *amqp.Connection
	var events usecase.LeadEventPublisher
	if cfg.RabbitHost != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
		if err != nil {
			logrus.WithError(err).Fatal("falha ao conectar no RabbitMQ")
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	var notifier usecase.LeadNotifier
	if cfg.MailHost != "" && cfg.MailTo != "" {
		notifier = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.MailTo)
	}

	// UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, events, notifier)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, events, notifier)

	// Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, createLeadUC, updateLeadUC)
	insightsHandler := handlers.NewInsightsHandler(leadRepo)
	authHandler := handlers.NewAuthHandler(authService)
	enrichmentHandler := handlers.NewEnrichmentHandler(enrichment)
	healthHandler := handlers.NewHealthHandler(store, rabbitConn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(appmiddleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireSession(authService))

		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/auth/me", authHandler.HandleMe)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.HandleList)
			r.Post("/", leadHandler.HandleCreate)
			r.Post("/reset", leadHandler.HandleReset)
			r.Get("/{id}", leadHandler.HandleGet)
			r.Patch("/{id}", leadHandler.HandleUpdate)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Get("/pipeline", insightsHandler.HandlePipeline)
			r.Get("/summary", insightsHandler.HandleSummary)
			r.Get("/cities", insightsHandler.HandleCities)
			r.Get("/conversion", insightsHandler.HandleConversion)
		})

		r.Route("/enrichment", func(r chi.Router) {
			r.Get("/cnpj/{cnpj}", enrichmentHandler.HandleCompany)
			r.Get("/cep/{cep}", enrichmentHandler.HandleAddress)
			r.Get("/banks", enrichmentHandler.HandleBanks)
		})
	})

	logrus.WithFields(logrus.Fields{
		"addr":    cfg.Addr,
		"storage": cfg.StorageBackend,
	}).Info("mini-crm API no ar")

	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logrus.WithError(err).Fatal("servidor encerrou com erro")
	}
}

func buildStore(cfg config.Config) storage.Store {
	switch cfg.StorageBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		return storage.NewRedisStore(rdb)

	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logrus.WithError(err).Fatal("falha ao abrir conexão com o Postgres")
		}
		store, err := storage.NewPostgresStore(db)
		if err != nil {
			logrus.WithError(err).Fatal("falha ao preparar tabela kv_slots")
		}
		return store

	default:
		return storage.NewFileStore(cfg.StorageFile)
	}
}
