package models

// User is a plan staff/portal account exposed by the auth endpoints.
// The credential hash lives in the auth service and never leaves it.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
	UserType  string `json:"user_type"` // member, employer, admin
}

// Token is the login response for the staff auth flow.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
