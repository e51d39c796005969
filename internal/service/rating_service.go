package service

import (
	"errors"

	"course_share_backend/internal/model"
	"course_share_backend/internal/util"
	"course_share_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type RatingService struct {
	RatingRepo RatingRepo
	CourseRepo CourseRepo
	Board      Invalidator
}

func NewRatingService(ratingRepo RatingRepo, courseRepo CourseRepo, board Invalidator) *RatingService {
	return &RatingService{
		RatingRepo: ratingRepo,
		CourseRepo: courseRepo,
		Board:      board,
	}
}

// Rate 提交或覆盖评分。分数限定 1-5，0 不是合法输入（它只作为"未评分"哨兵存在）。
// 评分写入与课程均分重算在同一事务内完成。
func (s *RatingService) Rate(courseID, raterID uint, score int) error {
	if score < 1 || score > 5 {
		return util.ErrInvalidScore
	}

	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	if err := s.RatingRepo.Upsert(&model.Rating{
		CourseID: courseID,
		RaterID:  raterID,
		Score:    score,
	}); err != nil {
		return err
	}

	monitoring.RatingCounter.Inc()
	s.Board.Invalidate()
	return nil
}

// RatingSummary 评分页附带信息：已有评分数与当前用户已打的分（0 表示未评分）。
func (s *RatingService) RatingSummary(courseID, viewerID uint) (count int, myScore int, err error) {
	ratings, err := s.RatingRepo.FindByCourse(courseID)
	if err != nil {
		return 0, 0, err
	}
	for _, r := range ratings {
		if r.RaterID == viewerID {
			myScore = r.Score
		}
	}
	return len(ratings), myScore, nil
}
