package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/domain"
)

func TestEmployeeCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	ctx := context.Background()
	now := time.Now()

	employee := &domain.Employee{
		Email:          "budi@example.com",
		Username:       "budi",
		EmployeeNumber: "NIP-001",
		PasswordHash:   "$2a$10$hash",
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO employees").
			WithArgs(employee.Email, employee.Username, employee.EmployeeNumber, employee.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(7), now, now))

		require.NoError(t, repo.Create(ctx, employee))
		assert.Equal(t, int64(7), employee.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO employees").
			WithArgs(employee.Email, employee.Username, employee.EmployeeNumber, employee.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

		assert.ErrorIs(t, repo.Create(ctx, employee), domain.ErrEmailTaken)
	})

	t.Run("duplicate employee number", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO employees").
			WithArgs(employee.Email, employee.Username, employee.EmployeeNumber, employee.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_employee_number_key"})

		assert.ErrorIs(t, repo.Create(ctx, employee), domain.ErrEmployeeNumberTaken)
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeGetByEmailAndNumber(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	ctx := context.Background()
	now := time.Now()

	columns := []string{"id", "email", "username", "employee_number", "password_hash", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, username").
			WithArgs("budi@example.com", "NIP-001").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(7), "budi@example.com", "budi", "NIP-001", "$2a$10$hash", now, now))

		employee, err := repo.GetByEmailAndNumber(ctx, "budi@example.com", "NIP-001")
		require.NoError(t, err)
		assert.Equal(t, int64(7), employee.ID)
		assert.Equal(t, "budi", employee.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, username").
			WithArgs("nobody@example.com", "NIP-999").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByEmailAndNumber(ctx, "nobody@example.com", "NIP-999")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeUpdateMapsUniqueViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	ctx := context.Background()

	employee := &domain.Employee{
		ID:             7,
		Email:          "budi@example.com",
		Username:       "budi",
		EmployeeNumber: "NIP-001",
	}

	mock.ExpectExec("UPDATE employees").
		WithArgs(employee.Username, employee.Email, employee.EmployeeNumber, employee.ID).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

	assert.ErrorIs(t, repo.Update(ctx, employee), domain.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeOtherWithEmailOrNumber(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("budi@example.com", "NIP-001", int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.OtherWithEmailOrNumber(ctx, 7, "budi@example.com", "NIP-001")
	require.NoError(t, err)
	assert.True(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeDeleteNoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 999), pgx.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
