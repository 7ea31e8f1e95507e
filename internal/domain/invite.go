package domain

import "time"

// InviteCode gates employee self-registration. Codes are standing shared
// secrets: signup checks Active but does not consume the code.
type InviteCode struct {
	ID        int64
	Code      string
	Active    bool
	CreatedAt time.Time
}
