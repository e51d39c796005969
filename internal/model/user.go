package model

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('user','moderator','admin');default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// IsModerator 版主与管理员均可执行审核类操作
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}
