package service

import (
	"context"
	"time"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
)

// periodDelta converts a recurrence configuration into a window length.
// Months are a fixed 30-day approximation, not calendar-aware.
func periodDelta(unit domain.PeriodUnit, count int) time.Duration {
	switch unit {
	case domain.PeriodUnitHour:
		return time.Duration(count) * time.Hour
	case domain.PeriodUnitDay:
		return time.Duration(count) * 24 * time.Hour
	case domain.PeriodUnitWeek:
		return time.Duration(count) * 7 * 24 * time.Hour
	case domain.PeriodUnitMonth:
		return time.Duration(count) * 30 * 24 * time.Hour
	}
	return 0
}

// currentWindow aligns the recurring window on the anchor: the window holding
// now starts at anchor + floor((now-anchor)/delta)*delta. A clock before the
// anchor falls into the first window.
func currentWindow(anchor, now time.Time, delta time.Duration) (time.Time, time.Time) {
	if now.Before(anchor) {
		return anchor, anchor.Add(delta)
	}
	periods := now.Sub(anchor) / delta
	start := anchor.Add(periods * delta)
	return start, start.Add(delta)
}

// computeProgress derives a member's usage of a task at a point in time.
// Usage counts pending and approved completions; only rejected ones are free.
// Without a recurrence limit only the lifetime sum is defined.
func computeProgress(ctx context.Context, ledger ports.CompletionRepository, task domain.Task, memberID uint64, now time.Time) (domain.Progress, error) {
	lifetime, err := ledger.SumCountLifetime(ctx, task.ID, memberID)
	if err != nil {
		return domain.Progress{}, err
	}

	if !task.HasLimit() {
		return domain.Progress{Current: lifetime, Lifetime: lifetime}, nil
	}

	delta := periodDelta(*task.PeriodUnit, *task.PeriodCount)
	windowStart, windowEnd := currentWindow(task.StartTime, now, delta)

	current, err := ledger.SumCountInWindow(ctx, task.ID, memberID, windowStart, windowEnd)
	if err != nil {
		return domain.Progress{}, err
	}

	remaining := *task.MaxPerPeriod - current
	if remaining < 0 {
		remaining = 0
	}

	return domain.Progress{
		Current:     current,
		Remaining:   &remaining,
		Limit:       task.MaxPerPeriod,
		PeriodStart: &windowStart,
		PeriodEnd:   &windowEnd,
		Lifetime:    lifetime,
	}, nil
}
