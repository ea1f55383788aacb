package models

import "time"

// Member is a plan member as returned by the members API. The password hash
// is kept on the repository record only and is never serialized.
type Member struct {
	ID         int        `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	EmployeeID string     `json:"employee_id,omitempty"`
	EmployerID *int       `json:"employer_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// MemberCreate is the registration payload.
type MemberCreate struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	EmployeeID string `json:"employee_id"`
	EmployerID *int   `json:"employer_id"`
	Password   string `json:"password" binding:"required"`
}

// MemberUpdate is a partial profile update; nil fields are left untouched.
type MemberUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// MemberLogin is the member login payload.
type MemberLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PensionInfo is the pension summary for one member.
type PensionInfo struct {
	MemberID               int       `json:"member_id"`
	TotalContributions     float64   `json:"total_contributions"`
	EmployerContributions  float64   `json:"employer_contributions"`
	MemberContributions    float64   `json:"member_contributions"`
	EstimatedAnnualPension float64   `json:"estimated_annual_pension"`
	YearsOfService         float64   `json:"years_of_service"`
	VestingStatus          string    `json:"vesting_status"`
	LastUpdated            time.Time `json:"last_updated"`
}
