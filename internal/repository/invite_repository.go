package repository

import (
	"context"
)

// InviteRepository checks admin invite codes used to gate signup.
type InviteRepository interface {
	IsActive(ctx context.Context, code string) (bool, error)
}

type inviteRepository struct {
	db DB
}

// NewInviteRepository constructs the repository.
func NewInviteRepository(db DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) IsActive(ctx context.Context, code string) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM admin_codes WHERE code=$1 AND is_active=TRUE
        )`

	var active bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&active); err != nil {
		return false, err
	}
	return active, nil
}
