package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "cliente"
)

// Valid reports whether the role is one the login flow accepts. Rows with
// any other tipo value are rejected even when the credentials match.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

type User struct {
	ID       uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"usuario" gorm:"column:usuario;uniqueIndex;not null"`
	Password string `json:"pwd" gorm:"column:pwd;not null"`
	Role     Role   `json:"tipo" gorm:"column:tipo;not null"`
}

func (User) TableName() string { return "usuarios" }
