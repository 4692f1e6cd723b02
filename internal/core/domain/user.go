package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models the authenticated shopper or operator.
// Role always reflects the claim carried by the current bearer token;
// it is derived, never set independently.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}
