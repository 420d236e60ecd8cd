// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartCooldownSweeper periodically evicts expired cooldown entries so the
// in-memory map does not grow forever with one-off submitters.
func (s *ScoreService) StartCooldownSweeper() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[Sweeper] failed to create scheduler: %v", err)
		return
	}
	sched.Start()

	// Every minute: drop entries whose cooldown already elapsed
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			removed := s.Limiter.Sweep(s.Clock.Now().UnixMilli())
			if removed > 0 {
				log.Printf("[Sweeper] evicted %d expired cooldown entries", removed)
			}
		}),
	)
}
