package service

import (
	"context"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/store"
)

// DefaultLookbackDays bounds how far back streaks are evaluated.
const DefaultLookbackDays = 90

// StreakService derives consecutive-day streaks from the daily snapshot
// history. Read-only.
type StreakService struct {
	store store.Store
	now   func() time.Time
}

func NewStreakService(st store.Store) *StreakService {
	return &StreakService{store: st, now: time.Now}
}

// ComputeStreaks walks the last lookbackDays calendar days of snapshots.
// A day counts when its snapshot has at least one completed exercise; a
// missing snapshot counts as an empty day. An empty today alone does not
// break a streak that ran through yesterday, but two trailing empty days
// do.
func (s *StreakService) ComputeStreaks(ctx context.Context, userID int, lookbackDays int) (*model.StreakResult, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	today := s.now()
	from := today.AddDate(0, 0, -(lookbackDays - 1))
	rows, err := s.store.ListDailyProgress(ctx, userID,
		from.Format(store.DateLayout), today.Format(store.DateLayout))
	if err != nil {
		return nil, err
	}
	active := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.CompletedExercises > 0 {
			active[r.Date] = true
		}
	}

	// Oldest to newest boolean series over the whole window.
	days := make([]bool, lookbackDays)
	dates := make([]string, lookbackDays)
	for i := 0; i < lookbackDays; i++ {
		d := from.AddDate(0, 0, i).Format(store.DateLayout)
		dates[i] = d
		days[i] = active[d]
	}

	res := &model.StreakResult{}
	for i := lookbackDays - 1; i >= 0; i-- {
		if days[i] {
			res.LastWorkoutDate = &dates[i]
			break
		}
	}

	// Current streak, counting back from today with a one-day grace for an
	// empty today.
	start := lookbackDays - 1
	if !days[start] {
		start--
	}
	for i := start; i >= 0 && days[i]; i-- {
		res.CurrentStreak++
	}

	run := 0
	for _, has := range days {
		if has {
			run++
			if run > res.LongestStreak {
				res.LongestStreak = run
			}
		} else {
			run = 0
		}
	}
	return res, nil
}
