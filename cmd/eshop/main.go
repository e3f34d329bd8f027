package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"eshop/internal/config"
	"eshop/internal/database"
	"eshop/internal/events"
	"eshop/internal/handler"
	"eshop/internal/model"
	"eshop/internal/repository"
	"eshop/internal/repository/memory"
	"eshop/internal/repository/postgres"
	"eshop/internal/service"
)

func main() {
	cfg := config.New()

	var (
		productRepo repository.ProductRepository
		carRepo     repository.CarRepository
		orderRepo   repository.OrderRepository
		paymentRepo repository.PaymentRepository
	)

	if cfg.DatabaseURI != "" {
		db, err := database.NewDB(cfg.DatabaseURI)
		if err != nil {
			slog.Error("failed to connect to DB", "error", err)
			os.Exit(1)
		}
		defer database.CloseDB(db)

		if err := database.InitSchema(db); err != nil {
			slog.Error("failed to init DB schema", "error", err)
			os.Exit(1)
		}

		productRepo = postgres.NewProductRepo(db)
		carRepo = postgres.NewCarRepo(db)
		orderRepo = postgres.NewOrderRepo(db)
		paymentRepo = postgres.NewPaymentRepo(db)
	} else {
		slog.Info("no database configured, running on in-memory stores")
		productRepo = memory.NewProductStore()
		carRepo = memory.NewCarStore()
		orderRepo = memory.NewOrderStore()
		paymentRepo = memory.NewPaymentStore()
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	defer publisher.Close()

	// Services
	productSvc := service.NewProductService(productRepo)
	carSvc := service.NewCarService(carRepo)
	orderSvc := service.NewOrderService(orderRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, orderSvc, publisher)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handler.RegisterCrudRoutes[*model.Product](r, "/api/products", productSvc)
	handler.RegisterCrudRoutes[*model.Car](r, "/api/cars", carSvc)

	r.Post("/api/orders", handler.CreateOrderHandler(orderSvc))
	r.Get("/api/orders", handler.OrderHistoryHandler(orderSvc))
	r.Get("/api/orders/{id}", handler.GetOrderHandler(orderSvc))
	r.Post("/api/orders/{id}/pay", handler.PayOrderHandler(orderSvc, paymentSvc))

	r.Get("/api/payments", handler.ListPaymentsHandler(paymentSvc))
	r.Get("/api/payments/{id}", handler.GetPaymentHandler(paymentSvc))
	r.Post("/api/payments/{id}/status", handler.SetPaymentStatusHandler(paymentSvc))

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
