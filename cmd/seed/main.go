package main

import (
	"context"
	"flag"
	"io/fs"
	"os"
	"time"

	"bookingapi/internal/config"
	"bookingapi/internal/database"
	"bookingapi/internal/pkg/logger"
	"bookingapi/internal/seed"
)

func main() {
	dataDir := flag.String("data", "", "directory with users.json, hosts.json, ... (default: embedded datasets)")
	timeout := flag.Duration("timeout", 2*time.Minute, "abort seeding after this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info", false).WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("DB connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	var data fs.FS = seed.DefaultData()
	if *dataDir != "" {
		data = os.DirFS(*dataDir)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	counts, err := seed.NewLoader(db, log).Run(ctx, data)
	if err != nil {
		// Fatal exits 1
		log.WithError(err).Fatal("seeding failed")
	}

	log.WithField("counts", counts).Info("database has been seeded successfully")
}
