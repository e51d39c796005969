package repository

import (
	"course_share_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Add 集合语义的选课：重复选课静默忽略，不报错
func (r *EnrollmentRepository) Add(userID, courseID uint) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&model.Enrollment{UserID: userID, CourseID: courseID}).Error
}

// Remove 未选课时的退课同样是空操作
func (r *EnrollmentRepository) Remove(userID, courseID uint) error {
	return r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&model.Enrollment{}).Error
}

func (r *EnrollmentRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
