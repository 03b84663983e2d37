package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/ouramail/pkg/logger"
)

// ErrInvalidTime indicates the configured time of day is not HH:MM.
var ErrInvalidTime = errors.New("scheduler: time of day must be HH:MM")

// Config holds scheduler configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Time string `env:"SCHEDULE_TIME" envDefault:"10:00"`
}

// Schedule computes daily trigger instants for one wall-clock time of day.
type Schedule struct {
	spec      cron.Schedule
	timeOfDay string
}

// Parse builds a Schedule from a 24-hour "HH:MM" time of day.
func Parse(timeOfDay string) (*Schedule, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, timeOfDay)
	}

	spec, err := cron.ParseStandard(fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTime, timeOfDay, err)
	}

	return &Schedule{spec: spec, timeOfDay: timeOfDay}, nil
}

// Next returns the first trigger instant strictly after now, in now's location:
// today if the configured time is still ahead, otherwise tomorrow.
func (s *Schedule) Next(now time.Time) time.Time {
	return s.spec.Next(now)
}

// String returns the configured time of day.
func (s *Schedule) String() string {
	return s.timeOfDay
}

// Job is one pipeline run.
type Job func(ctx context.Context) error

// Scheduler drives a Job once per Schedule trigger. The clock and timer are
// injectable so the loop can be tested without real time passing.
type Scheduler struct {
	schedule *Schedule
	log      *slog.Logger
	now      func() time.Time
	after    func(d time.Duration) <-chan time.Time
}

// New creates a Scheduler. The logger may be nil; a discarding logger is used then.
func New(schedule *Schedule, log *slog.Logger) *Scheduler {
	if log == nil {
		log = logger.NewNope()
	}
	return &Scheduler{
		schedule: schedule,
		log:      log,
		now:      time.Now,
		after: func(d time.Duration) <-chan time.Time {
			return time.After(d)
		},
	}
}

// Run loops forever: wait for the next trigger, run the job, log the outcome,
// repeat. Job errors are logged and swallowed so one failed day cannot stop
// the loop. Returns nil when ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, job Job) error {
	for {
		next := s.schedule.Next(s.now())
		s.log.Info("waiting for next run", "at", next)

		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return nil
		case <-s.after(next.Sub(s.now())):
		}

		started := s.now()
		if err := job(ctx); err != nil {
			s.log.Error("scheduled run failed", "error", err, "duration", s.now().Sub(started).String())
			continue
		}
		s.log.Info("scheduled run completed", "duration", s.now().Sub(started).String())
	}
}
