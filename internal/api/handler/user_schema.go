package handler

// The profile wrapper is an input-only convenience mirroring the dashboard's
// form layout; responses are flattened.

type profileRequest struct {
	Email string  `json:"email" validate:"required"`
	Phone *string `json:"phone"`
}

type createUserRequest struct {
	Name    string         `json:"name"    validate:"required"`
	Role    string         `json:"role"    validate:"required,oneof='admin' 'manager' 'team member'"`
	Profile profileRequest `json:"profile" validate:"required"`
}

// userResponse is the flattened user representation returned by the API.
type userResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}
