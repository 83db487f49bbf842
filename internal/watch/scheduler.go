package watch

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// Scheduler runs periodic regeneration, picking up new content revisions
// and build dates without a configuration change.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler creates a scheduler; call Start to run its jobs.
func NewScheduler() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create scheduler").Build()
	}
	return &Scheduler{scheduler: s}, nil
}

// Every schedules task at interval. A run still in progress when the next
// one is due makes that run wait for the following slot.
func (s *Scheduler) Every(interval time.Duration, name string, task func()) (string, error) {
	if interval <= 0 {
		return "", ferrors.ValidationError("schedule interval must be positive").
			WithContext("interval", interval.String()).
			Build()
	}
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to schedule job").
			WithContext("job", name).
			Build()
	}
	return job.ID().String(), nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("Starting scheduler")
	s.scheduler.Start()
}

// Stop waits for running jobs and shuts the scheduler down.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	return s.scheduler.Shutdown()
}
