package client

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
)

type slot struct {
	pair      int
	studentID int
}

// DayView is everything needed to render one date: its eligibility, the
// schedule, the roster and the recorded absences.
type DayView struct {
	Day      workday.Day
	Schedule *schedule.ScheduleResponse
	Students []student.StudentResponse
	absences map[slot]attendance.AttendanceResponse
}

// LoadDay fetches a fresh view of date.
func (c *Client) LoadDay(ctx context.Context, date string, forceWorkday bool) (*DayView, error) {
	day, err := c.Day(ctx, date, forceWorkday)
	if err != nil {
		return nil, err
	}
	sched, err := c.Schedule(ctx, date)
	if err != nil {
		return nil, err
	}
	roster, err := c.Students(ctx)
	if err != nil {
		return nil, err
	}
	att, err := c.Attendance(ctx, date)
	if err != nil {
		return nil, err
	}

	view := &DayView{
		Day:      day,
		Schedule: sched.Schedule,
		Students: roster.Students,
		absences: make(map[slot]attendance.AttendanceResponse, len(att.Attendance)),
	}
	for _, rec := range att.Attendance {
		view.absences[slot{pair: rec.PairNumber, studentID: rec.StudentID}] = rec
	}
	return view, nil
}

// ActiveStudents lists the students shown in the attendance grid. Students
// on academic leave are left out.
func (v *DayView) ActiveStudents() []student.StudentResponse {
	out := make([]student.StudentResponse, 0, len(v.Students))
	for _, st := range v.Students {
		if st.Status != nil && *st.Status == string(student.StatusAcademicLeave) {
			continue
		}
		out = append(out, st)
	}
	return out
}

// Absence returns the recorded absence, if any, for a student in a pair.
func (v *DayView) Absence(pair, studentID int) (attendance.AttendanceResponse, bool) {
	rec, ok := v.absences[slot{pair: pair, studentID: studentID}]
	return rec, ok
}

// Editable reports whether schedule and attendance may be changed.
func (v *DayView) Editable() bool {
	return !v.Day.Blocked
}

// DayCache keeps the view of the currently open date. Opening a different
// date, or the same date with a different override, discards it.
type DayCache struct {
	client *Client

	mu    sync.Mutex
	date  string
	force bool
	view  *DayView
}

func NewDayCache(c *Client) *DayCache {
	return &DayCache{client: c}
}

func (d *DayCache) Open(ctx context.Context, date string, forceWorkday bool) (*DayView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.view != nil && d.date == date && d.force == forceWorkday {
		return d.view, nil
	}

	view, err := d.client.LoadDay(ctx, date, forceWorkday)
	if err != nil {
		d.view = nil
		return nil, err
	}
	d.date, d.force, d.view = date, forceWorkday, view
	return view, nil
}

// Invalidate drops the cached view so the next Open refetches. Callers use
// it after a write.
func (d *DayCache) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view = nil
}
