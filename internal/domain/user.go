package domain

// User is a back-office operator account. Passwords are bcrypt hashes; the
// hash never leaves the process in API responses.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Active       bool   `json:"active"`
	CreatedOn    string `json:"created_on"`
}
