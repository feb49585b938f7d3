package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"SignalBench/internal/config"
	"SignalBench/internal/dataset"
	"SignalBench/internal/recorder"
	"SignalBench/internal/scheduler"
	"SignalBench/internal/simulator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SignalBench starting...")

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

	// Init data source
	var src dataset.Source
	if cfg.Dataset.PricesPath != "" {
		src = dataset.NewCSVSource(cfg.Dataset.Symbol, cfg.Dataset.PricesPath,
			cfg.Dataset.SignalsPath, cfg.Dataset.BenchmarkPath)
	} else {
		src = &dataset.SyntheticSource{Symbol: cfg.Dataset.Symbol}
	}
	log.Printf("[INFO] data source: %s", src.Name())

	// Init engine
	eng, err := simulator.New(cfg.Execution)
	if err != nil {
		log.Fatalf("[FATAL] init engine: %v", err)
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

	sched := scheduler.NewScheduler(src, eng, rec, cfg.Report.ChartPath)

	// With no cron expression, run the pipeline once and exit.
	if cfg.Schedule.RerunCron == "" {
		sched.RunNow()
		log.Println("[INFO] SignalBench done")
		return
	}

	if err := sched.Register(cfg.Schedule.RerunCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing backtest now")
		go sched.RunNow()
	}

	log.Println("[INFO] SignalBench is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] SignalBench stopped")
}
