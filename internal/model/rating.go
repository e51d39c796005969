package model

// Rating 同一课程每个评分人至多一条记录，重复评分按 (course_id, rater_id) 覆盖
// swagger:model Rating
type Rating struct {
	BaseModel
	CourseID uint `gorm:"uniqueIndex:idx_course_rater;not null" json:"courseId"`
	RaterID  uint `gorm:"uniqueIndex:idx_course_rater;not null" json:"raterId"`
	Score    int  `gorm:"not null" json:"score"`
}

func (Rating) TableName() string {
	return "ratings"
}
