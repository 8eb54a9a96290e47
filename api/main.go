package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	_ "github.com/lflopes1997/Projeto-ControleEstoque/docs"
	"github.com/lflopes1997/Projeto-ControleEstoque/internal/config"
	"github.com/lflopes1997/Projeto-ControleEstoque/internal/db"
	api "github.com/lflopes1997/Projeto-ControleEstoque/internal/http"
	"github.com/lflopes1997/Projeto-ControleEstoque/internal/http/handlers"
	rl "github.com/lflopes1997/Projeto-ControleEstoque/internal/http/rate_limiter"
	"github.com/lflopes1997/Projeto-ControleEstoque/internal/repo"
)

// @title Controle de Estoque API
// @version 1.0
// @description REST API for managing inventory products.
// @BasePath /
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Could not load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Could not connect to database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		logger.Fatalf("Could not prepare database: %v", err)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))

	visitors := rl.NewVisitors(rate.Limit(20), 40)
	go visitors.StartCleanupLoop()

	r := api.NewRouter(api.RouterConfig{
		AllowedOrigin: cfg.AllowedOrigin,
		Visitors:      visitors,
		Logger:        logger,
	})

	logger.Infof("API on http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal(err)
	}
}
