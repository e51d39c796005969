package model

// Enrollment 选课关系为集合语义，(user_id, course_id) 唯一，重复选课是幂等操作
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
