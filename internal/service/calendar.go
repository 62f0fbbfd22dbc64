package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"fittrack/internal/model"
	"fittrack/internal/store"
)

// CalendarService builds the month-grid view and rolling statistics from
// the daily snapshot history. Read-only.
type CalendarService struct {
	store store.Store
	now   func() time.Time
}

func NewCalendarService(st store.Store) *CalendarService {
	return &CalendarService{store: st, now: time.Now}
}

// BuildCalendar returns one cell per day, spanning full Sunday-to-Saturday
// weeks around the requested month. Cells from the adjacent months are
// flagged IsCurrentMonth=false.
func (s *CalendarService) BuildCalendar(ctx context.Context, userID, year int, month time.Month) ([]model.CalendarCell, error) {
	if month < time.January || month > time.December || year <= 0 {
		return nil, fmt.Errorf("month %d/%d: %w", year, month, store.ErrInvalidArgument)
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	rows, err := s.store.ListDailyProgress(ctx, userID,
		gridStart.Format(store.DateLayout), gridEnd.Format(store.DateLayout))
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]model.DailyProgress, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r
	}

	today := s.now().Format(store.DateLayout)
	var cells []model.CalendarCell
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		date := d.Format(store.DateLayout)
		cell := model.CalendarCell{
			Date:           date,
			IsToday:        date == today,
			IsCurrentMonth: d.Month() == month,
		}
		if p, ok := byDate[date]; ok {
			cell.Total = p.TotalExercises
			cell.Completed = p.CompletedExercises
			if p.TotalExercises > 0 {
				cell.Percentage = round2(float64(p.CompletedExercises) / float64(p.TotalExercises) * 100)
			}
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// BuildStats aggregates two windows ending at the reference date: the
// reference month so far, and the trailing 30 days. The windows share no
// state and are computed independently.
func (s *CalendarService) BuildStats(ctx context.Context, userID int, referenceDate string) (*model.StatsResult, error) {
	ref, err := time.ParseInLocation(store.DateLayout, referenceDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", referenceDate, store.ErrInvalidArgument)
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.Local)
	monthStats, err := s.windowStats(ctx, userID, monthStart, ref, ref.Day())
	if err != nil {
		return nil, err
	}
	rollingStats, err := s.windowStats(ctx, userID, ref.AddDate(0, 0, -29), ref, 30)
	if err != nil {
		return nil, err
	}
	return &model.StatsResult{CurrentMonth: *monthStats, RollingWindow: *rollingStats}, nil
}

func (s *CalendarService) windowStats(ctx context.Context, userID int, from, to time.Time, elapsedDays int) (*model.WindowStats, error) {
	rows, err := s.store.ListDailyProgress(ctx, userID,
		from.Format(store.DateLayout), to.Format(store.DateLayout))
	if err != nil {
		return nil, err
	}

	st := &model.WindowStats{}
	for _, r := range rows {
		st.TotalExercises += r.TotalExercises
		st.CompletedExercises += r.CompletedExercises
		if r.CompletedExercises > 0 {
			st.WorkoutDays++
		}
	}
	if st.TotalExercises > 0 {
		st.CompletionRate = round2(float64(st.CompletedExercises) / float64(st.TotalExercises) * 100)
	}
	if st.WorkoutDays > 0 && elapsedDays > 0 {
		st.WorkoutsPerWeek = round2(float64(st.WorkoutDays) / (float64(elapsedDays) / 7))
	}
	return st, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
