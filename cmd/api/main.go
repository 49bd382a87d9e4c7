package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"pettrackr/internal/adapters/storage/sqlite"
	"pettrackr/internal/config"
	"pettrackr/internal/platform/logger"
	"pettrackr/internal/router"
)

func main() {
	cfgPath := flag.String("config", "", "ruta al archivo de configuración (opcional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.New(logger.Options{App: "pettrackr-api"}).Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    "pettrackr-api",
	})

	var stores *sqlite.Stores
	if cfg.DataDir != "" {
		stores, err = sqlite.OpenStores(cfg.DataDir)
		if err != nil {
			log.Error("open stores", "error", err)
			os.Exit(1)
		}
		defer stores.Close()
		log.Info("stores abiertos", "data_dir", cfg.DataDir)
	} else {
		log.Warn("sin data_dir: repos in-memory, los datos no persisten")
	}

	h, err := router.New(router.Options{Cfg: cfg, Log: log, Stores: stores})
	if err != nil {
		log.Error("build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
