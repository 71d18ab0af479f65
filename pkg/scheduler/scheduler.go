// Package scheduler wraps robfig/cron with named jobs so the API can list
// what is scheduled and when it runs next.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type JobStatus struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	NextRun time.Time `json:"next_run"`
}

type Scheduler struct {
	cron *cron.Cron

	mu    sync.Mutex
	names map[cron.EntryID]string

	log *zap.Logger
}

func New(log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		names: make(map[cron.EntryID]string),
		log:   log.With(zap.String("component", "scheduler")),
	}
}

// AddJob registers fn under a standard 5-field cron spec.
func (s *Scheduler) AddJob(name, spec string, fn func()) error {
	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, spec, err)
	}

	s.mu.Lock()
	s.names[id] = name
	s.mu.Unlock()

	s.log.Info("job scheduled", zap.String("name", name), zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling; running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Jobs lists every scheduled job with its next run time.
func (s *Scheduler) Jobs() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	jobs := make([]JobStatus, 0, len(entries))
	for _, e := range entries {
		jobs = append(jobs, JobStatus{
			ID:      int(e.ID),
			Name:    s.names[e.ID],
			NextRun: e.Next,
		})
	}

	return jobs
}
