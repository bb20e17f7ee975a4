package main

import (
	"context"
	"log"
	"os"
	"time"

	"StockDash/internal/cache"
	"StockDash/internal/collector"
	"StockDash/internal/config"
	"StockDash/internal/scheduler"
	"StockDash/internal/server"

	hertzserver "github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockDash starting...")

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

	// Init fetch cache
	var store cache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := cache.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite cache failed, using memory: %v", err)
			store = cache.NewMemoryCache()
		} else {
			store = sc
			defer sc.Close()
		}
	} else {
		store = cache.NewMemoryCache()
	}

	// Init fetcher
	fmp := collector.NewFMPFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	fetcher := collector.NewCachedFetcher(
		fmp,
		store,
		time.Duration(cfg.Cache.QuoteTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.HistoryTTLSeconds)*time.Second,
	)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher)

	// Context for background refresh
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init refresh scheduler
	sched := scheduler.NewScheduler(ctx, col, cfg.DataSource.Symbol)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: warm the cache immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, warming cache now")
		go sched.RunNow()
	}

	// HTTP API
	h := hertzserver.Default(hertzserver.WithHostPorts(cfg.Server.Addr))
	server.RegisterRoutes(h, col, cfg.DataSource.Symbol)

	log.Printf("[INFO] StockDash serving on %s (default symbol %s)", cfg.Server.Addr, cfg.DataSource.Symbol)
	h.Spin()

	log.Println("[INFO] StockDash stopped")
}
