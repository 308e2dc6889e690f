package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDataEntry  Role = "data_entry"
	RoleReadOnlyL1 Role = "read_only_l1"
	RoleReadOnlyL2 Role = "read_only_l2"
	RoleReadOnlyL3 Role = "read_only_l3"
)

// Roles lists every user type accepted at signup.
var Roles = []Role{RoleAdmin, RoleDataEntry, RoleReadOnlyL1, RoleReadOnlyL2, RoleReadOnlyL3}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"size:255;not null;column:name"`
	CPFNo        string    `gorm:"size:64;not null;uniqueIndex:ux_users_cpf_no;column:cpf_no"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash"`
	UserType     Role      `gorm:"size:32;not null;column:user_type"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (User) TableName() string { return "users" }
