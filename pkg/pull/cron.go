package pull

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Ticks creates an unbounded source that emits scheduled activation times
// according to a standard cron expression ("minute hour day month weekday").
// Each pull blocks until the next activation or until the context is
// canceled.
func Ticks(expr string) (Source[time.Time], error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return &cronSource{schedule: schedule}, nil
}

type cronSource struct {
	schedule cron.Schedule
}

func (s *cronSource) Next(ctx context.Context) (time.Time, bool, error) {
	activation := s.schedule.Next(time.Now())

	timer := time.NewTimer(time.Until(activation))
	defer timer.Stop()

	select {
	case <-timer.C:
		return activation, true, nil
	case <-ctx.Done():
		return time.Time{}, false, ctx.Err()
	}
}

func (s *cronSource) Close() error {
	return nil
}
