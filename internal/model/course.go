package model

type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalDenied   ApprovalState = "denied"
)

// ValidApprovalState 校验审核状态枚举值，接口边界拒绝其他取值
func ValidApprovalState(s string) bool {
	switch ApprovalState(s) {
	case ApprovalPending, ApprovalApproved, ApprovalDenied:
		return true
	}
	return false
}

// swagger:model Course
type Course struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Genre       string `gorm:"size:100;not null" json:"genre"`
	// Level 难度等级，1-5 的序数
	Level int `gorm:"not null" json:"level"`
	// PredictedTime 预计学时区间，如 "1-10"、"10-50"
	PredictedTime string `gorm:"size:50;not null" json:"predictedTime"`
	// CourseScore 当前评分均值，无评分时为 0（0 仅是"未评分"哨兵，不是合法分数）
	CourseScore float64       `gorm:"default:0" json:"courseScore"`
	CreatorID   uint          `gorm:"index;not null" json:"creatorId"`
	Creator     *User         `gorm:"foreignKey:CreatorID" json:"-"`
	Approved    ApprovalState `gorm:"type:enum('pending','approved','denied');default:'pending'" json:"approved"`
	Ratings     []Rating      `gorm:"foreignKey:CourseID" json:"ratings,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
