package main

import (
	"context"
	"time"

	"txnloader/config"
	"txnloader/database"
	"txnloader/loader"
	"txnloader/progress"
	"txnloader/server"
	"txnloader/utils"

	"github.com/apex/log"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Infof("Connecting to MySQL %s:%s ...", cfg.DBHost, cfg.DBPort)
	db, err := utils.DBConnect(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.Threads+1)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	log.Infof("Preparing destination table %s ...", cfg.TargetTable)
	if err := database.PrepareTarget(ctx, db, cfg.SourceTable, cfg.TargetTable); err != nil {
		log.Fatalf("Failed to prepare destination table: %v", err)
	}

	t0 := time.Now()
	agg := progress.New(cfg.TotalRecords, t0)

	if cfg.StatusPort > 0 {
		server.NewStatusServer(agg).Start(cfg.StatusPort)
	}

	log.Infof("Starting load: %d records using %d workers (batch=%d)",
		cfg.TotalRecords, cfg.Threads, cfg.BatchSize)

	coord := loader.NewCoordinator(
		loader.MySQLWriterFactory(db, cfg.TargetTable),
		cfg.BatchSize,
		cfg.CancelOnFailure,
	)
	if err := coord.Run(ctx, cfg.TotalRecords, cfg.Threads, agg); err != nil {
		log.Fatalf("Load failed: %v", err)
	}

	elapsed := time.Since(t0)
	rate := float64(0)
	if elapsed.Seconds() > 0 {
		rate = float64(cfg.TotalRecords) / elapsed.Seconds()
	}
	log.Infof("All workers done: %d rows in %.2f min (%.0f rows/sec)",
		cfg.TotalRecords, elapsed.Minutes(), rate)
}
