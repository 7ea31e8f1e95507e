package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/domain"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

func TestEmployeeUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	first := seedEmployee(t, repo, "budi@example.com", "rahasia123", "NIP-001")
	second := seedEmployee(t, repo, "siti@example.com", "rahasia123", "NIP-002")

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.Update(ctx, first.ID, "budi-baru", "budi@example.com", "NIP-001"))
		stored, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "budi-baru", stored.Username)
	})

	t.Run("email collides with another employee", func(t *testing.T) {
		err := svc.Update(ctx, first.ID, "budi", second.Email, "NIP-001")
		assert.ErrorIs(t, err, domain.ErrIdentityTaken)
	})

	t.Run("number collides with another employee", func(t *testing.T) {
		err := svc.Update(ctx, first.ID, "budi", "budi@example.com", second.EmployeeNumber)
		assert.ErrorIs(t, err, domain.ErrIdentityTaken)
	})

	t.Run("missing employee", func(t *testing.T) {
		err := svc.Update(ctx, 999, "x", "x@example.com", "NIP-999")
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, 404, domainErr.HTTPStatus)
	})
}

func TestEmployeeDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	employee := seedEmployee(t, repo, "budi@example.com", "rahasia123", "NIP-001")

	require.NoError(t, svc.Delete(ctx, employee.ID))
	_, err := repo.GetByID(ctx, employee.ID)
	assert.Error(t, err)

	delErr := svc.Delete(ctx, employee.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, delErr, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}
