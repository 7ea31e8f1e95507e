package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
)

const minPasswordLength = 6

// ErrPasswordTooShort rejects signup passwords under six characters.
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

// AuthService coordinates login and invite-gated signup flows.
type AuthService struct {
	admins     repository.AdminRepository
	employees  repository.EmployeeRepository
	invites    repository.InviteRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for the auth service.
type AuthDependencies struct {
	AdminRepo    repository.AdminRepository
	EmployeeRepo repository.EmployeeRepository
	InviteRepo   repository.InviteRepository
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		employees:  deps.EmployeeRepo,
		invites:    deps.InviteRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// LoginAdmin authenticates an administrator. Every failure cause maps to
// domain.ErrInvalidCredentials so callers cannot tell an unknown email
// from a wrong password.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, domain.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.GenerateToken(admin.ID, admin.Email, domain.RoleAdmin)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, exp, nil
}

// LoginEmployee authenticates an employee by the (email, employee number)
// pair plus password. Same single-failure contract as LoginAdmin.
func (s *AuthService) LoginEmployee(ctx context.Context, email, password, employeeNumber string) (*domain.Employee, string, time.Time, error) {
	employee, err := s.employees.GetByEmailAndNumber(ctx, email, employeeNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, domain.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.GenerateToken(employee.ID, employee.Email, domain.RoleEmployee)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return employee, token, exp, nil
}

// RegisterInput carries the signup form.
type RegisterInput struct {
	Email          string
	Username       string
	Password       string
	EmployeeNumber string
	AdminCode      string
}

// RegisterEmployee creates an employee account when the invite code is
// active and email/employee number are unused. The invite code is a
// standing shared secret and is not consumed.
func (s *AuthService) RegisterEmployee(ctx context.Context, input RegisterInput) (*domain.Employee, error) {
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	active, err := s.invites.IsActive(ctx, input.AdminCode)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, domain.ErrInvalidInviteCode
	}

	existing, err := s.employees.FindByEmailOrNumber(ctx, input.Email, input.EmployeeNumber)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		if existing.Email == input.Email {
			return nil, domain.ErrEmailTaken
		}
		return nil, domain.ErrEmployeeNumberTaken
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Email:          input.Email,
		Username:       input.Username,
		EmployeeNumber: input.EmployeeNumber,
		PasswordHash:   hash,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEmployeeRegistered,
			Actor:     events.Actor{Role: domain.RoleEmployee, SubjectID: employee.ID},
			Timestamp: time.Now(),
			Payload: events.EmployeeRegisteredPayload{
				EmployeeID:     employee.ID,
				EmployeeNumber: employee.EmployeeNumber,
			},
		})
	}
	return employee, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
