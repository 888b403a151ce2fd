package model

import "golang.org/x/crypto/bcrypt"

// Role is the intrinsic role of an identity. It never changes after the
// identity is created; authorization decisions use the session's
// effective role instead.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User represents an identity in the directory. Seeded users keep their
// short dataset ids ("u1".."u5"); signed-up users get UUID ids.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	EmployeeID   string `json:"employee_id"`
	JobTitle     string `json:"job_title"`
	Department   string `json:"department"`
	PasswordHash string `json:"-"`
}

// SetPassword hashes and stores the user's password. Login never reads
// it back (mock trust boundary), so the hash only keeps plaintext out
// of the dataset.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}
