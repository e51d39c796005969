package repository

import (
	"course_share_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) FindByCourse(courseID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.DB.Where("course_id = ?", courseID).Find(&ratings).Error
	return ratings, err
}

// Upsert 同一评分人对同一课程的重复评分就地覆盖，并在同事务内重算课程均分。
// 覆盖依赖 (course_id, rater_id) 唯一索引。
func (r *RatingRepository) Upsert(rating *model.Rating) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "rater_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).Create(rating).Error; err != nil {
			return err
		}

		return tx.Model(&model.Course{}).
			Where("id = ?", rating.CourseID).
			Update("course_score", gorm.Expr(
				"COALESCE((SELECT AVG(score) FROM ratings WHERE ratings.course_id = ?), 0)",
				rating.CourseID,
			)).Error
	})
}
