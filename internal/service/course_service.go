package service

import (
	"errors"

	"course_share_backend/internal/model"
	"course_share_backend/internal/util"

	"gorm.io/gorm"
)

// CourseView 课程的对外展示形态，创建者已解析为用户名
type CourseView struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Genre         string              `json:"genre"`
	Level         int                 `json:"level"`
	PredictedTime string              `json:"predictedTime"`
	CourseScore   float64             `json:"courseScore"`
	Creator       string              `json:"creator"`
	Approved      model.ApprovalState `json:"approved"`
}

func toCourseView(c *model.Course) CourseView {
	creator := "Unknown"
	if c.Creator != nil {
		creator = c.Creator.Username
	}
	return CourseView{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Genre:         c.Genre,
		Level:         c.Level,
		PredictedTime: c.PredictedTime,
		CourseScore:   c.CourseScore,
		Creator:       creator,
		Approved:      c.Approved,
	}
}

func toCourseViews(courses []model.Course) []CourseView {
	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		views = append(views, toCourseView(&courses[i]))
	}
	return views
}

type CourseInput struct {
	Title         string
	Description   string
	Genre         string
	Level         int
	PredictedTime string
}

type CourseService struct {
	CourseRepo CourseRepo
	EnrollRepo EnrollmentRepo
	Board      Invalidator
}

func NewCourseService(courseRepo CourseRepo, enrollRepo EnrollmentRepo, board Invalidator) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		EnrollRepo: enrollRepo,
		Board:      board,
	}
}

// Create 新课程一律从 pending 状态进入审核队列
func (s *CourseService) Create(creatorID uint, in CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:         in.Title,
		Description:   in.Description,
		Genre:         in.Genre,
		Level:         in.Level,
		PredictedTime: in.PredictedTime,
		CreatorID:     creatorID,
		Approved:      model.ApprovalPending,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Get 未通过审核的课程仅创建者与版主可见
func (s *CourseService) Get(id uint, viewerID uint, viewerIsModerator bool) (CourseView, error) {
	course, err := s.CourseRepo.FindByIDWithCreator(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CourseView{}, util.ErrCourseNotFound
		}
		return CourseView{}, err
	}

	if course.Approved != model.ApprovalApproved &&
		course.CreatorID != viewerID && !viewerIsModerator {
		return CourseView{}, util.ErrPermissionDenied
	}

	return toCourseView(course), nil
}

// List 游客只看到已通过课程；登录用户额外看到自己的；版主看到全部
func (s *CourseService) List(viewerID uint, viewerIsModerator bool) ([]CourseView, error) {
	var (
		courses []model.Course
		err     error
	)
	if viewerIsModerator {
		courses, err = s.CourseRepo.FindAll()
	} else {
		courses, err = s.CourseRepo.FindVisibleTo(viewerID)
	}
	if err != nil {
		return nil, err
	}
	return toCourseViews(courses), nil
}

// ListPending 审核队列，版主入口
func (s *CourseService) ListPending() ([]CourseView, error) {
	courses, err := s.CourseRepo.FindByApproval(model.ApprovalPending)
	if err != nil {
		return nil, err
	}
	return toCourseViews(courses), nil
}

func (s *CourseService) ListCreated(userID uint) ([]CourseView, error) {
	courses, err := s.CourseRepo.FindByCreator(userID)
	if err != nil {
		return nil, err
	}
	return toCourseViews(courses), nil
}

func (s *CourseService) ListEnrolled(userID uint) ([]CourseView, error) {
	courses, err := s.CourseRepo.FindEnrolledBy(userID)
	if err != nil {
		return nil, err
	}
	return toCourseViews(courses), nil
}

// Update 仅创建者可改；修改后回到 pending 重新审核
func (s *CourseService) Update(id, callerID uint, in CourseInput) error {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	if course.CreatorID != callerID {
		return util.ErrPermissionDenied
	}

	course.Title = in.Title
	course.Description = in.Description
	course.Genre = in.Genre
	course.Level = in.Level
	course.PredictedTime = in.PredictedTime
	course.Approved = model.ApprovalPending

	if err := s.CourseRepo.Update(course); err != nil {
		return err
	}
	s.Board.Invalidate()
	return nil
}

// Delete 创建者或版主可删
func (s *CourseService) Delete(id, callerID uint, callerIsModerator bool) error {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	if course.CreatorID != callerID && !callerIsModerator {
		return util.ErrPermissionDenied
	}

	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.Board.Invalidate()
	return nil
}

// SetApproval 审核状态流转，角色校验在路由层完成；合法值校验在接口边界完成
func (s *CourseService) SetApproval(id uint, state model.ApprovalState) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	if err := s.CourseRepo.UpdateApproval(id, state); err != nil {
		return err
	}
	s.Board.Invalidate()
	return nil
}

// Enroll 幂等选课：课程必须存在，重复选课是空操作
func (s *CourseService) Enroll(userID, courseID uint) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.EnrollRepo.Add(userID, courseID)
}

// Unenroll 未选课时退课同样成功返回
func (s *CourseService) Unenroll(userID, courseID uint) error {
	return s.EnrollRepo.Remove(userID, courseID)
}
