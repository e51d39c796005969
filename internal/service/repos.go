package service

import (
	"course_share_backend/internal/model"
)

// Repository 接口按消费方声明，repository 包的 gorm 实现满足它们，
// 测试中以内存 mock 替换。

type UserRepo interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	FindByRole(role model.UserRole) ([]model.User, error)
	DeleteCascade(userID uint) error
}

type CourseRepo interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByIDWithCreator(id uint) (*model.Course, error)
	FindAll() ([]model.Course, error)
	FindVisibleTo(viewerID uint) ([]model.Course, error)
	FindByApproval(state model.ApprovalState) ([]model.Course, error)
	FindByCreator(creatorID uint) ([]model.Course, error)
	FindEnrolledBy(userID uint) ([]model.Course, error)
	FindTopApproved(limit int) ([]model.Course, error)
	Update(course *model.Course) error
	UpdateApproval(id uint, state model.ApprovalState) error
	Delete(id uint) error
}

type RatingRepo interface {
	FindByCourse(courseID uint) ([]model.Rating, error)
	Upsert(rating *model.Rating) error
}

type EnrollmentRepo interface {
	Add(userID, courseID uint) error
	Remove(userID, courseID uint) error
	CountByUser(userID uint) (int64, error)
}

// Invalidator 是写路径对榜单缓存的唯一依赖，LeaderboardService 满足它
type Invalidator interface {
	Invalidate()
}
