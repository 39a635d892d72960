package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `date, pair_number, student_id, reason, respectful, hours, comment`

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE date = $1
		ORDER BY pair_number, student_id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return collectRecords(rows)
}

// ListBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE date >= $1 AND date < $2
		ORDER BY date, pair_number, student_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance between dates: %w", err)
	}
	return collectRecords(rows)
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO attendance (`+attendanceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date, pair_number, student_id) DO UPDATE SET
			reason     = EXCLUDED.reason,
			respectful = EXCLUDED.respectful,
			hours      = EXCLUDED.hours,
			comment    = EXCLUDED.comment
	`, rec.Date, rec.PairNumber, rec.StudentID, rec.Reason, rec.Respectful, rec.Hours, rec.Comment)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, key attendance.Key) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		DELETE FROM attendance
		WHERE date = $1 AND pair_number = $2 AND student_id = $3
	`, key.Date, key.PairNumber, key.StudentID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.Date, &rec.PairNumber, &rec.StudentID,
			&rec.Reason, &rec.Respectful, &rec.Hours, &rec.Comment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}
