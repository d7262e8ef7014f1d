package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

// ReportFunc receives the report produced for one watched query.
type ReportFunc func(q weather.Query, report weather.Report)

// Scheduler periodically re-runs the watched queries and hands each report to a callback.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	queries   []weather.Query
	interval  time.Duration
	onReport  ReportFunc
}

// New creates a new Scheduler.
func New(queries []weather.Query, interval time.Duration, service *weather.Service, onReport ReportFunc) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		service:   service,
		queries:   queries,
		interval:  interval,
		onReport:  onReport,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.queries) == 0 {
		log.Println("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval < time.Second {
		interval = 15 * time.Minute
	}

	if _, err := s.scheduler.Every(interval).Do(s.runJob); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// runJob runs every watched query one after another. Each run is independent
// of the previous one.
func (s *Scheduler) runJob() {
	log.Println("scheduler: running weather watch job")

	for _, q := range s.queries {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		report, err := s.service.Run(ctx, q)
		cancel()
		if err != nil {
			log.Printf("scheduler: query %q failed: %v", q.Place+q.Coords, err)
			continue
		}
		if s.onReport != nil {
			s.onReport(q, report)
		}
	}

	log.Println("scheduler: completed weather watch job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
