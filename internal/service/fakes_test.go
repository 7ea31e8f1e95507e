package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
)

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	admin.ID = int64(len(r.admins) + 1)
	r.admins[admin.Email] = admin
	return nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	admin, ok := r.admins[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*domain.Employee
	seq       int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]*domain.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	for _, existing := range r.employees {
		if existing.Email == employee.Email {
			return domain.ErrEmailTaken
		}
		if existing.EmployeeNumber == employee.EmployeeNumber {
			return domain.ErrEmployeeNumberTaken
		}
	}
	r.seq++
	employee.ID = r.seq
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	r.employees[employee.ID] = employee
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return employee, nil
}

func (r *fakeEmployeeRepo) GetByEmailAndNumber(_ context.Context, email, employeeNumber string) (*domain.Employee, error) {
	for _, employee := range r.employees {
		if employee.Email == email && employee.EmployeeNumber == employeeNumber {
			return employee, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) FindByEmailOrNumber(_ context.Context, email, employeeNumber string) (*domain.Employee, error) {
	for _, employee := range r.employees {
		if employee.Email == email || employee.EmployeeNumber == employeeNumber {
			return employee, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		result = append(result, *employee)
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	existing, ok := r.employees[employee.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Username = employee.Username
	existing.Email = employee.Email
	existing.EmployeeNumber = employee.EmployeeNumber
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) OtherWithEmailOrNumber(_ context.Context, id int64, email, employeeNumber string) (bool, error) {
	for _, employee := range r.employees {
		if employee.ID == id {
			continue
		}
		if employee.Email == email || employee.EmployeeNumber == employeeNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

type fakeInviteRepo struct {
	codes map[string]bool
}

func newFakeInviteRepo(active ...string) *fakeInviteRepo {
	codes := make(map[string]bool, len(active))
	for _, code := range active {
		codes[code] = true
	}
	return &fakeInviteRepo{codes: codes}
}

func (r *fakeInviteRepo) IsActive(_ context.Context, code string) (bool, error) {
	return r.codes[code], nil
}

type fakeAttendanceRepo struct {
	records   map[int64]*domain.AttendanceRecord
	employees map[int64]*domain.Employee
	seq       int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records:   make(map[int64]*domain.AttendanceRecord),
		employees: make(map[int64]*domain.Employee),
	}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, record *domain.AttendanceRecord) error {
	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID && existing.Date.Equal(record.Date) {
			return domain.ErrAlreadySubmitted
		}
	}
	r.seq++
	record.ID = r.seq
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[record.ID] = record
	return nil
}

func (r *fakeAttendanceRepo) ExistsForDate(_ context.Context, employeeID int64, date time.Time) (bool, error) {
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID int64) ([]domain.AttendanceRecord, error) {
	var result []domain.AttendanceRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) ListAll(_ context.Context) ([]domain.AttendanceWithEmployee, error) {
	var result []domain.AttendanceWithEmployee
	for _, record := range r.records {
		row := domain.AttendanceWithEmployee{AttendanceRecord: *record}
		if employee, ok := r.employees[record.EmployeeID]; ok {
			row.Username = employee.Username
			row.EmployeeNumber = employee.EmployeeNumber
			row.Email = employee.Email
		}
		result = append(result, row)
	}
	return result, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, id int64, description string, status domain.AttendanceStatus) error {
	record, ok := r.records[id]
	if !ok {
		return pgx.ErrNoRows
	}
	record.Description = description
	record.Status = status
	return nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.records, id)
	return nil
}

func (r *fakeAttendanceRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

func (r *fakeAttendanceRepo) CountForDate(_ context.Context, date time.Time) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.Date.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttendanceRepo) CountForDateWithStatus(_ context.Context, date time.Time, status domain.AttendanceStatus) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.Date.Equal(date) && record.Status == status {
			count++
		}
	}
	return count, nil
}
