package domain

// UserRole distinguishes front-desk staff from administrators.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleFrontDesk UserRole = "FRONT_DESK"
)

// User is a front-desk operator account.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
}
