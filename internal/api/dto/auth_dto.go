package dto

// AdminLoginRequest payload for administrator login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmployeeLoginRequest payload for employee login.
type EmployeeLoginRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	EmployeeNumber string `json:"employee_number"`
}

// SignupRequest payload for invite-gated employee registration.
type SignupRequest struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	EmployeeNumber string `json:"employee_number"`
	AdminCode      string `json:"admin_code"`
}

// AdminView is the admin identity returned on login.
type AdminView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// EmployeeIdentityView is the employee identity returned on login.
type EmployeeIdentityView struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	EmployeeNumber string `json:"employee_number"`
}
