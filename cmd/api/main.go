package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/api"
	"github.com/Eronmosele95/electrical-dashboard/internal/config"
	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
	"github.com/Eronmosele95/electrical-dashboard/internal/theme"
)

func main() {
	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	production := os.Getenv("API_ENV") == "production"

	logger, err := newLogger(production)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.LoadOrDefault(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	applyEnvOverrides(cfg)

	catalog, err := rates.LoadOrBuiltin(cfg.RatesFile)
	if err != nil {
		logger.Fatal("loading rate presets", zap.Error(err))
	}

	store := storage.NewFileStore(cfg.Storage.Dir)
	router := api.NewRouter(api.Deps{
		Logger:  logger,
		Config:  cfg,
		History: history.NewStore(store, cfg.History.MaxEntries, logger),
		Theme:   theme.NewManager(store),
		Catalog: catalog,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Info("server started",
			zap.String("addr", cfg.Server.Addr),
			zap.String("storage_dir", cfg.Storage.Dir),
			zap.Int("rate_presets", len(catalog.Presets)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, logger)
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// applyEnvOverrides lets deploy environments adjust the file config without
// editing it.
func applyEnvOverrides(cfg *config.Config) {
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Storage.Dir = dir
	}
	if path := os.Getenv("RATES_FILE"); path != "" {
		cfg.RatesFile = path
	}
}

func waitForShutdown(srv *http.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
