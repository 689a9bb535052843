package auth

// User is an operator account. Password holds the bcrypt hash, never the
// plain text. Role is OPERATOR for regular kitchen/counter staff; ADMIN is
// reserved for accounts promoted directly in the database.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
