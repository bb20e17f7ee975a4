package scheduler

import (
	"context"
	"fmt"
	"log"

	"StockDash/internal/collector"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically refreshes the default symbol so dashboard requests
// hit a warm cache instead of paying the upstream round trip.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Symbol    string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, symbol string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Symbol:    symbol,
		Ctx:       ctx,
	}
}

// Register registers the refresh task on the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (for warm start).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	snap, err := s.Collector.Collect(s.Ctx, s.Symbol)
	if err != nil {
		log.Printf("[ERROR] refresh %s: %v", s.Symbol, err)
		return
	}
	log.Printf("[INFO] refreshed %s: price=%.2f points=%d", s.Symbol, snap.Quote.Price, len(snap.Chart.Points))
}
