package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"QuoteTracker/internal/collector"
	"QuoteTracker/internal/model"
	"QuoteTracker/internal/notifier"
)

// Sender delivers a rendered batch report somewhere other than the terminal.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs tracking batches once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  Sender // optional
	Symbols   []string
	Start     time.Time
	Format    string
	Out       io.Writer
	Diag      io.Writer
	Ctx       context.Context

	now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, symbols []string, start time.Time, format string, out, diag io.Writer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		Collector: col,
		Symbols:   symbols,
		Start:     start,
		Format:    format,
		Out:       out,
		Diag:      diag,
		Ctx:       ctx,
		now:       time.Now,
	}
}

// Register schedules a batch on the given cron spec (seconds field first).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.batchTask); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	return nil
}

// StartCron starts the cron scheduler.
func (s *Scheduler) StartCron() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running batch to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunOnce summarizes every symbol from Start until now and writes the results.
func (s *Scheduler) RunOnce(ctx context.Context) ([]model.SummaryResult, error) {
	end := s.now()
	log.Printf("[INFO] running batch for %d symbols, %s to %s", len(s.Symbols), s.Start.Format(time.RFC3339), end.Format(time.RFC3339))

	results := s.Collector.SummarizeAll(ctx, s.Start, end, s.Symbols)
	if err := notifier.WriteResults(s.Out, s.Diag, s.Start, results, s.Format); err != nil {
		return results, fmt.Errorf("write results: %w", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendWithRetry(ctx, notifier.FormatReport(s.Start, results), 3); err != nil {
			log.Printf("[ERROR] send notification: %v", err)
		}
	}
	return results, nil
}

func (s *Scheduler) batchTask() {
	if _, err := s.RunOnce(s.Ctx); err != nil {
		log.Printf("[ERROR] batch: %v", err)
	}
}
