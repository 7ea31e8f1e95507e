package domain

import "errors"

var (
	// ErrInvalidCredentials is the single failure returned by every login
	// path. Unknown email, wrong password and wrong employee number all
	// collapse into it so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadySubmitted means an attendance record already exists for the
	// employee on that date.
	ErrAlreadySubmitted = errors.New("attendance already submitted today")

	// ErrInvalidInviteCode means no active invite code matched.
	ErrInvalidInviteCode = errors.New("invalid admin code")

	// ErrEmailTaken and ErrEmployeeNumberTaken report uniqueness conflicts
	// during signup or administrative edits.
	ErrEmailTaken          = errors.New("email already registered")
	ErrEmployeeNumberTaken = errors.New("employee number already registered")

	// ErrIdentityTaken reports that either the email or the employee number
	// is used by another employee, without saying which.
	ErrIdentityTaken = errors.New("email or employee number already in use")
)
