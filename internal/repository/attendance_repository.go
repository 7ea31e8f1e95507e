package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// AttendanceRepository persists daily attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, record *domain.AttendanceRecord) error
	ExistsForDate(ctx context.Context, employeeID int64, date time.Time) (bool, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error)
	ListAll(ctx context.Context) ([]domain.AttendanceWithEmployee, error)
	Update(ctx context.Context, id int64, description string, status domain.AttendanceStatus) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	CountForDate(ctx context.Context, date time.Time) (int64, error)
	CountForDateWithStatus(ctx context.Context, date time.Time, status domain.AttendanceStatus) (int64, error)
}

type attendanceRepository struct {
	db DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create inserts the record. A unique violation on the per-day index is
// returned as domain.ErrAlreadySubmitted; concurrent submissions race to
// this constraint and exactly one wins.
func (r *attendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	const query = `
        INSERT INTO attendance (employee_id, photo_file, description, status, attendance_date)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		record.EmployeeID,
		record.PhotoFile,
		record.Description,
		record.Status,
		record.Date,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return domain.ErrAlreadySubmitted
	}
	return err
}

func (r *attendanceRepository) ExistsForDate(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM attendance WHERE employee_id=$1 AND attendance_date=$2
        )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	const query = `
        SELECT id, employee_id, photo_file, description, status, attendance_date, created_at, updated_at
        FROM attendance WHERE employee_id=$1
        ORDER BY attendance_date DESC`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AttendanceRecord
	for rows.Next() {
		var record domain.AttendanceRecord
		if err := scanRecord(rows, &record); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (r *attendanceRepository) ListAll(ctx context.Context) ([]domain.AttendanceWithEmployee, error) {
	const query = `
        SELECT a.id, a.employee_id, a.photo_file, a.description, a.status, a.attendance_date,
               a.created_at, a.updated_at, e.username, e.employee_number, e.email
        FROM attendance a
        JOIN employees e ON a.employee_id = e.id
        ORDER BY a.attendance_date DESC, a.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AttendanceWithEmployee
	for rows.Next() {
		var row domain.AttendanceWithEmployee
		if err := rows.Scan(
			&row.ID,
			&row.EmployeeID,
			&row.PhotoFile,
			&row.Description,
			&row.Status,
			&row.Date,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.Username,
			&row.EmployeeNumber,
			&row.Email,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *attendanceRepository) Update(ctx context.Context, id int64, description string, status domain.AttendanceStatus) error {
	const query = `
        UPDATE attendance SET description=$1, status=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.db.Exec(ctx, query, description, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *attendanceRepository) CountForDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE attendance_date=$1`, date,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *attendanceRepository) CountForDateWithStatus(ctx context.Context, date time.Time, status domain.AttendanceStatus) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE attendance_date=$1 AND status=$2`, date, status,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanRecord(row pgx.Row, record *domain.AttendanceRecord) error {
	return row.Scan(
		&record.ID,
		&record.EmployeeID,
		&record.PhotoFile,
		&record.Description,
		&record.Status,
		&record.Date,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
}
