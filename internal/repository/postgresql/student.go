package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type studentRepository struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepository{db: db}
}

// List implements student.StudentRepository.
func (r *studentRepository) List(ctx context.Context) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, status, details FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}

	return students, nil
}

// GetByID implements student.StudentRepository.
func (r *studentRepository) GetByID(ctx context.Context, id int) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT id, name, status, details FROM students WHERE id = $1`, id)
	s, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by id: %w", err)
	}

	return s, nil
}

// Count implements student.StudentRepository.
func (r *studentRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// CreateMany implements student.StudentRepository.
func (r *studentRepository) CreateMany(ctx context.Context, students []student.Student) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)
		batch := &pgx.Batch{}
		for _, s := range students {
			var status *string
			if s.Status != nil {
				v := string(*s.Status)
				status = &v
			}
			batch.Queue(`
				INSERT INTO students (id, name, status, details)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO NOTHING
			`, s.ID, s.Name, status, s.Details)
		}
		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert students: %w", err)
		}
		return nil
	})
}

func scanStudent(row pgx.Row) (student.Student, error) {
	var (
		s      student.Student
		status *string
	)
	if err := row.Scan(&s.ID, &s.Name, &status, &s.Details); err != nil {
		return student.Student{}, err
	}
	if status != nil && *status != "" {
		st := student.Status(*status)
		s.Status = &st
	}
	return s, nil
}
