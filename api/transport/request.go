package transport

// CreateUserRequest is the payload accepted by POST /api/v1/users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
