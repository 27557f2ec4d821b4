package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"NovaQuant/internal/config"
	"NovaQuant/internal/recorder"
	"NovaQuant/internal/scheduler"
	"NovaQuant/internal/store"
	"NovaQuant/internal/trading"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] NovaQuant starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init trading desk over the file-backed paper store
	st := store.NewFileStore(cfg.Trading.StoreFile, cfg.Trading.StartingCashCents)
	desk := trading.NewDesk(st, trading.NewSyntheticSource(), rec)
	log.Printf("[INFO] paper store: %s", cfg.Trading.StoreFile)

	// Init scheduler
	sched := scheduler.NewScheduler(desk, rec, cfg.Toolkit.StateFile, cfg.DebtRatio, cfg.Toolkit.Seed)
	if err := sched.RegisterAll(cfg.Schedule.ValuationCron, cfg.Schedule.AdviceCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing advice task now")
		go sched.RunAdviceNow()
	}

	log.Println("[INFO] NovaQuant is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] NovaQuant stopped")
}
