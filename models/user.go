package models

// User is the account record fetched from the platform API. Role is kept as
// the raw upstream string: an empty value means the response did not include
// a role at all (the session manager then falls back to the persisted one),
// while a non-empty unrecognized value is a real "unknown role" condition.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GoogleProfile is the pending profile of a first-time federated user. It is
// handed to the client during role selection and echoed back on completion,
// so no server-side pending state is kept.
type GoogleProfile struct {
	GoogleID  string `json:"googleId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
