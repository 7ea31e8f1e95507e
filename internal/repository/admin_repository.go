package repository

import (
	"context"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// AdminRepository defines persistence access for administrator accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type adminRepository struct {
	db DB
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(db DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
        INSERT INTO admins (email, password_hash)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		admin.Email,
		admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const query = `
        SELECT id, email, password_hash, created_at, updated_at
        FROM admins WHERE email=$1`

	var admin domain.Admin
	if err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}
