package dto

// LoginRequest credentials submitted by a client. Not persisted.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSummary minimal user data attached to a successful login.
type UserSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse outcome of a login attempt. Token is null on failure and an
// opaque timestamp-derived string on success; it is never verified afterward.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   *string      `json:"token"`
	User    *UserSummary `json:"user,omitempty"`
}
