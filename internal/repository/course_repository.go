package repository

import (
	"course_share_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

// FindByIDWithCreator 带创建者信息的查询，用于详情页展示创建者用户名
func (r *CourseRepository) FindByIDWithCreator(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Creator").First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Creator").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByApproval(state model.ApprovalState) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Creator").
		Where("approved = ?", state).
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByCreator(creatorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Creator").
		Where("creator_id = ?", creatorID).
		Find(&courses).Error
	return courses, err
}

// FindVisibleTo 公开列表只含已通过课程；登录用户额外看到自己的全部课程
func (r *CourseRepository) FindVisibleTo(viewerID uint) ([]model.Course, error) {
	var courses []model.Course
	q := r.DB.Preload("Creator")
	if viewerID == 0 {
		q = q.Where("approved = ?", model.ApprovalApproved)
	} else {
		q = q.Where("approved = ? OR creator_id = ?", model.ApprovalApproved, viewerID)
	}
	err := q.Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindEnrolledBy(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Creator").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Find(&courses).Error
	return courses, err
}

// FindTopApproved 排行榜查询：已通过课程按均分降序
func (r *CourseRepository) FindTopApproved(limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("approved = ?", model.ApprovalApproved).
		Order("course_score DESC").
		Limit(limit).
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) UpdateApproval(id uint, state model.ApprovalState) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", id).
		Update("approved", state).Error
}

// Delete 课程与其评分、选课记录在同一事务内删除
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}
