package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fittrack/internal/model"
)

// Mem is an in-memory Store used as a test double. It applies the same
// key constraints the MySQL schema enforces.
type Mem struct {
	mu        sync.Mutex
	users     map[int]model.User
	workouts  map[int]model.Workout
	exercises map[int]model.Exercise
	progress  map[int]model.DailyProgress
	nextID    int
}

func NewMem() *Mem {
	return &Mem{
		users:     make(map[int]model.User),
		workouts:  make(map[int]model.Workout),
		exercises: make(map[int]model.Exercise),
		progress:  make(map[int]model.DailyProgress),
	}
}

func (m *Mem) id() int {
	m.nextID++
	return m.nextID
}

func (m *Mem) CreateUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return fmt.Errorf("user %q: %w", u.Username, ErrAlreadyExists)
		}
	}
	u.ID = m.id()
	m.users[u.ID] = *u
	return nil
}

func (m *Mem) GetUser(_ context.Context, id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return &u, nil
}

func (m *Mem) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

func (m *Mem) CreateWorkout(_ context.Context, w *model.Workout) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.workouts {
		if existing.UserID == w.UserID && existing.DayKey == w.DayKey {
			return fmt.Errorf("workout for %s: %w", w.DayKey, ErrAlreadyExists)
		}
	}
	w.ID = m.id()
	for i := range w.Exercises {
		w.Exercises[i].ID = m.id()
		w.Exercises[i].WorkoutID = w.ID
		m.exercises[w.Exercises[i].ID] = w.Exercises[i]
	}
	stored := *w
	stored.Exercises = nil
	m.workouts[w.ID] = stored
	return nil
}

func (m *Mem) GetWorkout(_ context.Context, id int) (*model.Workout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.workouts[id]
	if !ok {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	w.Exercises = m.workoutExercises(id)
	return &w, nil
}

func (m *Mem) GetWorkoutByUserDay(_ context.Context, userID int, dayKey string) (*model.Workout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.workouts {
		if w.UserID == userID && w.DayKey == dayKey {
			w.Exercises = m.workoutExercises(w.ID)
			return &w, nil
		}
	}
	return nil, fmt.Errorf("workout %d/%s: %w", userID, dayKey, ErrNotFound)
}

func (m *Mem) ListWorkouts(_ context.Context, userID int) ([]model.Workout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ws []model.Workout
	for _, w := range m.workouts {
		if w.UserID == userID {
			w.Exercises = m.workoutExercises(w.ID)
			ws = append(ws, w)
		}
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i].DayKey < ws[j].DayKey })
	return ws, nil
}

func (m *Mem) SetWorkoutCompletion(_ context.Context, id int, completed bool, completedAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.workouts[id]
	if !ok {
		return fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	w.Completed = completed
	w.CompletedAt = completedAt
	m.workouts[id] = w
	return nil
}

func (m *Mem) DeleteWorkout(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workouts[id]; !ok {
		return fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	for eid, e := range m.exercises {
		if e.WorkoutID == id {
			delete(m.exercises, eid)
		}
	}
	delete(m.workouts, id)
	return nil
}

func (m *Mem) GetExercise(_ context.Context, id int) (*model.Exercise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.exercises[id]
	if !ok {
		return nil, fmt.Errorf("exercise %d: %w", id, ErrNotFound)
	}
	return &e, nil
}

func (m *Mem) SetExerciseCompletion(_ context.Context, id int, completed bool, completedAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.exercises[id]
	if !ok {
		return fmt.Errorf("exercise %d: %w", id, ErrNotFound)
	}
	e.Completed = completed
	e.CompletedAt = completedAt
	m.exercises[id] = e
	return nil
}

func (m *Mem) CountWorkoutExercises(_ context.Context, workoutID int) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total, completed int
	for _, e := range m.exercises {
		if e.WorkoutID != workoutID {
			continue
		}
		total++
		if e.Completed {
			completed++
		}
	}
	return total, completed, nil
}

func (m *Mem) CountUserExercises(_ context.Context, userID int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for _, e := range m.exercises {
		if w, ok := m.workouts[e.WorkoutID]; ok && w.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *Mem) CountUserCompletedOn(_ context.Context, userID int, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for _, e := range m.exercises {
		w, ok := m.workouts[e.WorkoutID]
		if !ok || w.UserID != userID {
			continue
		}
		if e.Completed && e.CompletedAt != nil && e.CompletedAt.Format(DateLayout) == date {
			n++
		}
	}
	return n, nil
}

func (m *Mem) UpsertDailyProgress(_ context.Context, userID int, date string, total, completed int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.progress {
		if p.UserID == userID && p.Date == date {
			p.TotalExercises = total
			p.CompletedExercises = completed
			m.progress[id] = p
			return nil
		}
	}
	id := m.id()
	m.progress[id] = model.DailyProgress{
		ID: id, UserID: userID, Date: date,
		TotalExercises: total, CompletedExercises: completed,
	}
	return nil
}

func (m *Mem) GetDailyProgress(_ context.Context, userID int, date string) (*model.DailyProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.progress {
		if p.UserID == userID && p.Date == date {
			out := p
			return &out, nil
		}
	}
	return nil, fmt.Errorf("progress %d/%s: %w", userID, date, ErrNotFound)
}

func (m *Mem) ListDailyProgress(_ context.Context, userID int, from, to string) ([]model.DailyProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []model.DailyProgress
	for _, p := range m.progress {
		if p.UserID == userID && p.Date >= from && p.Date <= to {
			rows = append(rows, p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

// workoutExercises must be called with the lock held.
func (m *Mem) workoutExercises(workoutID int) []model.Exercise {
	var es []model.Exercise
	for _, e := range m.exercises {
		if e.WorkoutID == workoutID {
			es = append(es, e)
		}
	}
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })
	return es
}
