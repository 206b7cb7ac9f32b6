package entity

type MemberRole string

const (
	RoleStudent MemberRole = "STUDENT"
	RoleMember  MemberRole = "MEMBER"
	RoleTutor   MemberRole = "TUTOR"
	RoleAdmin   MemberRole = "ADMIN"
)

type User struct {
	Base
	FullName string     `db:"full_name"`
	Email    string     `db:"email"`
	Role     MemberRole `db:"role"`
	IsActive bool       `db:"is_active"`
}
