// Package memory implements the repositories on process memory. It backs
// STORAGE_DRIVER=memory and the service tests; data is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
)

type Store struct {
	mu         sync.RWMutex
	students   map[int]student.Student
	holidays   map[time.Time]struct{}
	schedules  map[time.Time][]schedule.Pair
	attendance map[attendance.Key]attendance.Record
}

func NewStore() *Store {
	return &Store{
		students:   make(map[int]student.Student),
		holidays:   make(map[time.Time]struct{}),
		schedules:  make(map[time.Time][]schedule.Pair),
		attendance: make(map[attendance.Key]attendance.Record),
	}
}

func dateKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Store) Students() student.StudentRepository         { return studentRepository{s} }
func (s *Store) Holidays() holiday.HolidayRepository         { return holidayRepository{s} }
func (s *Store) Schedules() schedule.ScheduleRepository      { return scheduleRepository{s} }
func (s *Store) Attendance() attendance.AttendanceRepository { return attendanceRepository{s} }

type studentRepository struct{ s *Store }

func (r studentRepository) List(ctx context.Context) ([]student.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]student.Student, 0, len(r.s.students))
	for _, st := range r.s.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r studentRepository) GetByID(ctx context.Context, id int) (student.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.students[id]
	if !ok {
		return student.Student{}, student.ErrStudentNotFound
	}
	return st, nil
}

func (r studentRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.students), nil
}

func (r studentRepository) CreateMany(ctx context.Context, students []student.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, st := range students {
		if _, exists := r.s.students[st.ID]; !exists {
			r.s.students[st.ID] = st
		}
	}
	return nil
}

type holidayRepository struct{ s *Store }

func (r holidayRepository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.holidays[dateKey(date)]
	return ok, nil
}

func (r holidayRepository) Set(ctx context.Context, date time.Time, isHoliday bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if isHoliday {
		r.s.holidays[dateKey(date)] = struct{}{}
	} else {
		delete(r.s.holidays, dateKey(date))
	}
	return nil
}

func (r holidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []holiday.Holiday
	for d := range r.s.holidays {
		if !d.Before(dateKey(from)) && d.Before(dateKey(to)) {
			out = append(out, holiday.Holiday{Date: d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type scheduleRepository struct{ s *Store }

func (r scheduleRepository) GetByDate(ctx context.Context, date time.Time) (schedule.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	pairs := append([]schedule.Pair(nil), r.s.schedules[dateKey(date)]...)
	return schedule.Schedule{Date: dateKey(date), Pairs: pairs}, nil
}

func (r scheduleRepository) Replace(ctx context.Context, sched schedule.Schedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dateKey(sched.Date)
	if len(sched.Pairs) == 0 {
		delete(r.s.schedules, key)
		return nil
	}
	pairs := append([]schedule.Pair(nil), sched.Pairs...)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Number < pairs[j].Number })
	r.s.schedules[key] = pairs
	return nil
}

type attendanceRepository struct{ s *Store }

func (r attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return r.list(func(rec attendance.Record) bool {
		return rec.Date.Equal(dateKey(date))
	}), nil
}

func (r attendanceRepository) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	return r.list(func(rec attendance.Record) bool {
		return !rec.Date.Before(dateKey(from)) && rec.Date.Before(dateKey(to))
	}), nil
}

func (r attendanceRepository) list(keep func(attendance.Record) bool) []attendance.Record {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []attendance.Record
	for _, rec := range r.s.attendance {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.PairNumber != b.PairNumber {
			return a.PairNumber < b.PairNumber
		}
		return a.StudentID < b.StudentID
	})
	return out
}

func (r attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec.Date = dateKey(rec.Date)
	r.s.attendance[rec.Key()] = rec
	return nil
}

func (r attendanceRepository) Delete(ctx context.Context, key attendance.Key) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key.Date = dateKey(key.Date)
	delete(r.s.attendance, key)
	return nil
}
