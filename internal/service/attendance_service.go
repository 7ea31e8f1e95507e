package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/storage"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// AttendanceService coordinates daily submissions and admin record
// operations.
type AttendanceService struct {
	records    repository.AttendanceRepository
	photos     *storage.PhotoStore
	dispatcher events.Dispatcher
	now        func() time.Time
}

// AttendanceDependencies bundles collaborators for the service.
type AttendanceDependencies struct {
	AttendanceRepo repository.AttendanceRepository
	Photos         *storage.PhotoStore
	Dispatcher     events.Dispatcher
}

// NewAttendanceService constructs the service.
func NewAttendanceService(deps AttendanceDependencies) *AttendanceService {
	return &AttendanceService{
		records:    deps.AttendanceRepo,
		photos:     deps.Photos,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// WithClock overrides the time source, used by tests.
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

// Today returns the current UTC calendar date.
func (s *AttendanceService) Today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CanSubmit reports whether the employee has no record yet for the date.
// It is a cheap pre-check only; the unique index on (employee_id,
// attendance_date) is what actually enforces the invariant.
func (s *AttendanceService) CanSubmit(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	exists, err := s.records.ExistsForDate(ctx, employeeID, date)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// Submit stores the photo and inserts today's record. A lost race with a
// concurrent submission surfaces as domain.ErrAlreadySubmitted from the
// insert, in which case the stored photo is cleaned up.
func (s *AttendanceService) Submit(ctx context.Context, employeeID int64, photo *multipart.FileHeader, description string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status must be Hadir or Izin", nil)
	}

	today := s.Today()
	ok, err := s.CanSubmit(ctx, employeeID, today)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadySubmitted
	}

	filename, err := s.photos.Save(employeeID, photo)
	if err != nil {
		return nil, err
	}

	record := &domain.AttendanceRecord{
		EmployeeID:  employeeID,
		PhotoFile:   filename,
		Description: description,
		Status:      status,
		Date:        today,
	}
	if err := s.records.Create(ctx, record); err != nil {
		_ = s.photos.Remove(filename)
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAttendanceSubmitted,
			Actor:     events.Actor{Role: domain.RoleEmployee, SubjectID: employeeID},
			Timestamp: s.now(),
			Payload: events.AttendanceSubmittedPayload{
				RecordID:   record.ID,
				EmployeeID: employeeID,
				Status:     record.Status,
				Date:       today.Format("2006-01-02"),
			},
		})
	}
	return record, nil
}

// ListForEmployee returns the employee's own records, newest first.
func (s *AttendanceService) ListForEmployee(ctx context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	return s.records.ListByEmployee(ctx, employeeID)
}

// ListAll returns every record joined with employee identity fields.
func (s *AttendanceService) ListAll(ctx context.Context) ([]domain.AttendanceWithEmployee, error) {
	return s.records.ListAll(ctx)
}

// UpdateRecord edits a record's description and status in place.
func (s *AttendanceService) UpdateRecord(ctx context.Context, adminID, id int64, description string, status domain.AttendanceStatus) error {
	if description == "" {
		return apperrors.NewValidationError("description is required", nil)
	}
	if !status.Valid() {
		return apperrors.NewValidationError("status must be Hadir or Izin", nil)
	}

	if err := s.records.Update(ctx, id, description, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("attendance record", map[string]any{"id": id})
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAttendanceUpdated,
			Actor:     events.Actor{Role: domain.RoleAdmin, SubjectID: adminID},
			Timestamp: s.now(),
			Payload:   events.AttendanceUpdatedPayload{RecordID: id, NewStatus: status},
		})
	}
	return nil
}

// DeleteRecord removes a record, returning the day to the unsubmitted
// state for that employee.
func (s *AttendanceService) DeleteRecord(ctx context.Context, adminID, id int64) error {
	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("attendance record", map[string]any{"id": id})
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAttendanceDeleted,
			Actor:     events.Actor{Role: domain.RoleAdmin, SubjectID: adminID},
			Timestamp: s.now(),
			Payload:   events.AttendanceDeletedPayload{RecordID: id},
		})
	}
	return nil
}

var exportHeader = []string{"Nama", "NIP", "Email", "Deskripsi", "Status", "Tanggal_Absensi"}

// ExportCSV writes all attendance joined with employee fields as CSV and
// returns the number of data rows written.
func (s *AttendanceService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.records.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return 0, err
	}
	for _, row := range rows {
		record := []string{
			row.Username,
			row.EmployeeNumber,
			row.Email,
			row.Description,
			string(row.Status),
			row.Date.Format("2006-01-02") + " " + row.CreatedAt.Format("15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return 0, err
		}
	}
	writer.Flush()
	return len(rows), writer.Error()
}

// ExportFilename names the CSV attachment for today's export.
func (s *AttendanceService) ExportFilename() string {
	return "attendance_data_" + s.Today().Format("2006-01-02") + ".csv"
}
