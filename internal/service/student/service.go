package student

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
)

type studentServiceImpl struct {
	studentRepo student.StudentRepository
}

func NewStudentService(studentRepo student.StudentRepository) student.StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// List implements student.StudentService.
func (s *studentServiceImpl) List(ctx context.Context) (student.ListStudentResponse, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return student.ListStudentResponse{}, err
	}

	resp := student.ListStudentResponse{Students: make([]student.StudentResponse, 0, len(students))}
	for _, st := range students {
		resp.Students = append(resp.Students, student.ToResponse(st))
	}
	return resp, nil
}

// Seed implements student.StudentService.
func (s *studentServiceImpl) Seed(ctx context.Context, roster []student.Student) (int, error) {
	count, err := s.studentRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		slog.DebugContext(ctx, "roster already seeded", slog.Int("students", count))
		return 0, nil
	}

	if err := s.studentRepo.CreateMany(ctx, roster); err != nil {
		return 0, fmt.Errorf("failed to seed roster: %w", err)
	}
	slog.InfoContext(ctx, "roster seeded", slog.Int("students", len(roster)))
	return len(roster), nil
}
