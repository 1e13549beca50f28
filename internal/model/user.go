package model

import (
	"strings"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleReviewer   Role = "reviewer"
	RoleStaff      Role = "staff"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// 主角色展示优先级，从高到低
var rolePriority = []Role{RoleAdmin, RoleInstructor, RoleStaff, RoleReviewer, RoleStudent}

func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleReviewer, RoleStaff, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Username string `gorm:"size:100;unique;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"size:100" json:"email"`
	// 逗号分隔的角色标签集合，只允许整词匹配，不做子串匹配
	Roles string `gorm:"size:255;default:'student'" json:"roles"`
}

func (User) TableName() string {
	return "users"
}

// RoleSet 返回去重后的角色标签，保持存储顺序
func (u *User) RoleSet() []Role {
	seen := make(map[Role]bool)
	var roles []Role
	for _, part := range strings.Split(u.Roles, ",") {
		tag := Role(strings.TrimSpace(part))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		roles = append(roles, tag)
	}
	return roles
}

func (u *User) HasRole(r Role) bool {
	for _, tag := range u.RoleSet() {
		if tag == r {
			return true
		}
	}
	return false
}

// AddRole 并集语义，重复添加不产生重复标签
func (u *User) AddRole(r Role) {
	if u.HasRole(r) {
		return
	}
	roles := append(u.RoleSet(), r)
	u.SetRoles(roles)
}

func (u *User) RemoveRole(r Role) {
	var roles []Role
	for _, tag := range u.RoleSet() {
		if tag != r {
			roles = append(roles, tag)
		}
	}
	u.SetRoles(roles)
}

func (u *User) SetRoles(roles []Role) {
	parts := make([]string, 0, len(roles))
	seen := make(map[Role]bool)
	for _, r := range roles {
		if seen[r] {
			continue
		}
		seen[r] = true
		parts = append(parts, string(r))
	}
	u.Roles = strings.Join(parts, ",")
}

// PrimaryRole 按优先级推导展示角色
func (u *User) PrimaryRole() Role {
	for _, r := range rolePriority {
		if u.HasRole(r) {
			return r
		}
	}
	return RoleStudent
}
