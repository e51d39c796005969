package service

import (
	"errors"
	"time"

	"course_share_backend/internal/model"
	"course_share_backend/internal/util"

	"gorm.io/gorm"
)

// Profile 当前用户的个人资料
type Profile struct {
	UserID          uint     `json:"userId"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	MemberSince     string   `json:"memberSince"`
	CreatedCourses  int      `json:"createdCourses"`
	EnrolledCourses int64    `json:"enrolledCourses"`
	UserScore       *float64 `json:"userScore"`
}

// PublicProfile 按用户名查看的公开资料，附带其课程列表
type PublicProfile struct {
	Username       string       `json:"username"`
	MemberSince    time.Time    `json:"memberSince"`
	UserScore      *float64     `json:"userScore"`
	CreatedCourses []CourseView `json:"createdCourses"`
}

type UserService struct {
	UserRepo   UserRepo
	CourseRepo CourseRepo
	EnrollRepo EnrollmentRepo
	Board      Invalidator
}

func NewUserService(userRepo UserRepo, courseRepo CourseRepo, enrollRepo EnrollmentRepo, board Invalidator) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		CourseRepo: courseRepo,
		EnrollRepo: enrollRepo,
		Board:      board,
	}
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	courses, err := s.CourseRepo.FindByCreator(userID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		UserID:          user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Role:            string(user.Role),
		MemberSince:     user.CreatedAt.Format("2006-01-02"),
		CreatedCourses:  len(courses),
		EnrolledCourses: enrolled,
		UserScore:       ComputeUserScore(courses),
	}, nil
}

func (s *UserService) GetPublicProfile(username string) (*PublicProfile, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	courses, err := s.CourseRepo.FindByCreator(user.ID)
	if err != nil {
		return nil, err
	}

	// 公开页只展示已通过的课程，pending/denied 只有本人和版主能看到
	visible := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.Approved == model.ApprovalApproved {
			visible = append(visible, c)
		}
	}

	return &PublicProfile{
		Username:       user.Username,
		MemberSince:    user.CreatedAt,
		UserScore:      ComputeUserScore(courses),
		CreatedCourses: toCourseViews(visible),
	}, nil
}

// DeleteByUsername 版主级操作：级联删除用户及其全部课程、评分与选课记录。
// 被删用户的课程可能仍在榜单缓存里，删除后同样要让缓存失效
func (s *UserService) DeleteByUsername(username string) error {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	if err := s.UserRepo.DeleteCascade(user.ID); err != nil {
		return err
	}
	s.Board.Invalidate()
	return nil
}
