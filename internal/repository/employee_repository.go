package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// EmployeeRepository handles persistence for employee accounts.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmailAndNumber(ctx context.Context, email, employeeNumber string) (*domain.Employee, error)
	FindByEmailOrNumber(ctx context.Context, email, employeeNumber string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	OtherWithEmailOrNumber(ctx context.Context, id int64, email, employeeNumber string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	db DB
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(db DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (email, username, employee_number, password_hash)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		employee.Email,
		employee.Username,
		employee.EmployeeNumber,
		employee.PasswordHash,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	return mapEmployeeUniqueViolation(err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT id, email, username, employee_number, password_hash, created_at, updated_at
        FROM employees WHERE id=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByEmailAndNumber(ctx context.Context, email, employeeNumber string) (*domain.Employee, error) {
	const query = `
        SELECT id, email, username, employee_number, password_hash, created_at, updated_at
        FROM employees WHERE email=$1 AND employee_number=$2`
	return r.scanOne(r.db.QueryRow(ctx, query, email, employeeNumber))
}

func (r *employeeRepository) FindByEmailOrNumber(ctx context.Context, email, employeeNumber string) (*domain.Employee, error) {
	const query = `
        SELECT id, email, username, employee_number, password_hash, created_at, updated_at
        FROM employees WHERE email=$1 OR employee_number=$2
        LIMIT 1`
	return r.scanOne(r.db.QueryRow(ctx, query, email, employeeNumber))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, email, username, employee_number, password_hash, created_at, updated_at
        FROM employees ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Email,
			&employee.Username,
			&employee.EmployeeNumber,
			&employee.PasswordHash,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	const query = `
        UPDATE employees SET username=$1, email=$2, employee_number=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.db.Exec(ctx, query,
		employee.Username,
		employee.Email,
		employee.EmployeeNumber,
		employee.ID,
	)
	if err != nil {
		return mapEmployeeUniqueViolation(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the employee; attendance rows cascade via FK.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// OtherWithEmailOrNumber reports whether another employee already uses
// the email or employee number.
func (r *employeeRepository) OtherWithEmailOrNumber(ctx context.Context, id int64, email, employeeNumber string) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM employees
            WHERE (email=$1 OR employee_number=$2) AND id != $3
        )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email, employeeNumber, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *employeeRepository) scanOne(row pgx.Row) (*domain.Employee, error) {
	var employee domain.Employee
	if err := row.Scan(
		&employee.ID,
		&employee.Email,
		&employee.Username,
		&employee.EmployeeNumber,
		&employee.PasswordHash,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func mapEmployeeUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "employees_email_key":
			return domain.ErrEmailTaken
		case "employees_employee_number_key":
			return domain.ErrEmployeeNumberTaken
		}
	}
	return err
}
