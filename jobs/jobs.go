package jobs

import (
	"context"
	"log"

	"DocSlot/metrics"

	"github.com/robfig/cron/v3"
)

type Pruner interface {
	Prune() int
}

// Scheduler runs maintenance for the in-process login limiter. Expired OTPs
// are left in place so a late verify still reports them as expired.
type Scheduler struct {
	cron    *cron.Cron
	limiter Pruner
	metrics *metrics.Metrics
}

func NewScheduler(limiter Pruner, m *metrics.Metrics) *Scheduler {
	return &Scheduler{cron: cron.New(), limiter: limiter, metrics: m}
}

/*
* Register the prune on the given cron spec
* Start the cron in its own goroutine
 */
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		log.Println("Pruning idle login rate limit windows...")
		s.RunOnce(context.Background())
	}); err != nil {
		log.Println("Error while scheduling the limiter prune: ", err)
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) RunOnce(_ context.Context) int {
	if s.limiter == nil {
		return 0
	}
	n := s.limiter.Prune()
	if n > 0 {
		log.Println("Pruned idle limiter windows:", n)
	}
	s.metrics.Pruned(n)
	return n
}
