package repository

import (
	"course_share_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

// ExistsByUsernameOrEmail 注册前的唯一性预检
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) FindByRole(role model.UserRole) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", role).Find(&users).Error
	return users, err
}

// DeleteCascade 删除用户及其名下课程、相关评分与选课记录，单事务内完成
func (r *UserRepository) DeleteCascade(userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var courseIDs []uint
		if err := tx.Model(&model.Course{}).
			Where("creator_id = ?", userID).
			Pluck("id", &courseIDs).Error; err != nil {
			return err
		}

		if len(courseIDs) > 0 {
			if err := tx.Where("course_id IN ?", courseIDs).Delete(&model.Rating{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id IN ?", courseIDs).Delete(&model.Enrollment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("creator_id = ?", userID).Delete(&model.Course{}).Error; err != nil {
				return err
			}
		}

		// 该用户在他人课程上的评分也要删除，且受影响课程的均分需要重算
		var ratedCourseIDs []uint
		if err := tx.Model(&model.Rating{}).
			Where("rater_id = ?", userID).
			Pluck("course_id", &ratedCourseIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("rater_id = ?", userID).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if len(ratedCourseIDs) > 0 {
			if err := tx.Model(&model.Course{}).
				Where("id IN ?", ratedCourseIDs).
				Update("course_score", gorm.Expr(
					"COALESCE((SELECT AVG(score) FROM ratings WHERE ratings.course_id = courses.id), 0)",
				)).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.User{}, userID).Error
	})
}
