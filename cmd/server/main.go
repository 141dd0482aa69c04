package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aymenhafsi/electroshop/internal/config"
	"github.com/aymenhafsi/electroshop/internal/events"
	"github.com/aymenhafsi/electroshop/internal/httpserver"
	"github.com/aymenhafsi/electroshop/internal/logging"
	"github.com/aymenhafsi/electroshop/internal/models"
	"github.com/aymenhafsi/electroshop/internal/repo"
	"github.com/aymenhafsi/electroshop/internal/service"
	"github.com/aymenhafsi/electroshop/internal/session"
	"github.com/aymenhafsi/electroshop/pkg/db"
	loggingmw "github.com/aymenhafsi/electroshop/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.SessionEntry{},
	); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	r := repo.New(gdb)
	sessions := session.NewGormStore(gdb)
	producer := events.NewProducer(cfg.KafkaBrokers)

	cartSvc := &service.CartService{Repo: r, Sessions: sessions}
	checkoutSvc := &service.CheckoutService{Repo: r, Cart: cartSvc, Producer: producer}
	catalogSvc := &service.CatalogService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}
	sellerSvc := &service.SellerService{Repo: r}

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler:  &httpserver.ProductHTTP{Svc: catalogSvc, Producer: producer},
		CartHandler:     &httpserver.CartHTTP{Svc: cartSvc},
		CheckoutHandler: &httpserver.CheckoutHTTP{Svc: checkoutSvc},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc},
		SellerHandler:   &httpserver.SellerHTTP{Svc: sellerSvc},
		JWTSecret:       cfg.JWTSecret,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		log.Printf("starting server on %s...", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	log.Println("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Println("server stopped")
}
