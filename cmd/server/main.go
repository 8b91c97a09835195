package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mkarimi/customer-ledger/internal/config"
	"github.com/mkarimi/customer-ledger/internal/exchange"
	"github.com/mkarimi/customer-ledger/internal/handlers"
	"github.com/mkarimi/customer-ledger/internal/migrations"
	"github.com/mkarimi/customer-ledger/internal/repository"
	"github.com/mkarimi/customer-ledger/internal/services"
	"github.com/mkarimi/customer-ledger/internal/session"
	"github.com/mkarimi/customer-ledger/pkg/db"
	xhttp "github.com/mkarimi/customer-ledger/pkg/http"
	"github.com/mkarimi/customer-ledger/pkg/logger"
	"github.com/mkarimi/customer-ledger/pkg/prom"
	"github.com/mkarimi/customer-ledger/pkg/redis"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	cfg := config.Get()

	dbConf := db.Config{
		Driver:   cfg.DBDriver,
		Path:     cfg.DBPath,
		User:     cfg.PostgresUser,
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		Password: cfg.PostgresPassword,
		Database: cfg.PostgresDatabase,
	}

	// the schema must be in a known shape before anything touches it
	if err := migrations.Run(dbConf); err != nil {
		logger.Fatal(err)
	}

	database, err := db.CreateReadWrite(dbConf, dbConf, cfg.AppEnv == "dev")
	if err != nil {
		logger.Error("failed connecting to database", "error", err)
		return
	}

	sessions := createSessionStore(cfg)

	if err := prom.Create(hostname(), cfg.AppEnv, cfg.PromNamespace); err != nil {
		logger.Warn("metrics disabled", "error", err)
	}

	customerRepo := repository.NewCustomerRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)

	ledgerService := services.NewLedgerService(customerRepo, transactionRepo)
	exchangeService := exchange.NewExchange(customerRepo, transactionRepo, database)
	healthService := services.NewHealthService(database)

	sessionManager := handlers.NewSessionManager(sessions)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, exchangeService, sessionManager)
	authHandler := handlers.NewAuthHandler(cfg.AdminPassword, sessionManager)
	healthHandler := handlers.NewHealthHandler(healthService)

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 10))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	handlers.RegisterLedgerRoutes(s.Router, ledgerHandler)
	handlers.RegisterAuthRoutes(s.Router, authHandler)
	handlers.RegisterHealthRoutes(s.Router, healthHandler)
	s.Router.GET("/metrics", prom.Handler())

	logger.Info("starting", "version", version, "commit", commit, "built", date)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(cfg.HTTPListenAddr); err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

func createSessionStore(cfg *config.Config) *session.Store {
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute

	if cfg.RedisAddr == "" {
		logger.Info("no REDIS_ADDR configured, sessions held in memory")
		return session.NewMemoryStore(ttl)
	}

	adapter, err := redis.NewRedisAdapter("default", cfg.RedisUniversalKeyPrefix, &redis.Options{
		Addrs:      []string{cfg.RedisAddr},
		ClientName: "default",
		DB:         cfg.RedisDatabase,
		Username:   cfg.RedisUsername,
		Password:   cfg.RedisPassword,
	})
	if err != nil {
		logger.Error("failed connecting to redis, sessions held in memory", "error", err)
		return session.NewMemoryStore(ttl)
	}
	return session.NewStore(adapter, ttl)
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
