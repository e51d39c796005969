package service

import (
	"testing"

	"course_share_backend/internal/model"
	"course_share_backend/internal/util"
)

func newCourseFixture() (*memDB, *CourseService) {
	db := newMemDB()
	board := NewLeaderboardService(&mockCourseRepo{db: db}, &mockUserRepo{db: db}, nil)
	svc := NewCourseService(&mockCourseRepo{db: db}, &mockEnrollmentRepo{db: db}, board)
	return db, svc
}

func TestCourseCreateStartsPending(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)

	course, err := svc.Create(creator.ID, CourseInput{
		Title: "Go 入门", Description: "desc", Genre: "programming", Level: 2, PredictedTime: "10-50",
	})
	if err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}
	if course.Approved != model.ApprovalPending {
		t.Errorf("新课程应为 pending，实际 %s", course.Approved)
	}
	if course.CourseScore != 0 {
		t.Errorf("新课程均分应为哨兵 0，实际 %v", course.CourseScore)
	}
}

func TestCourseGetVisibility(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)
	other := seedUser(db, "other", model.RoleUser)
	pending := seedCourse(db, creator, "待审课程", model.ApprovalPending, 0)
	approved := seedCourse(db, creator, "已过课程", model.ApprovalApproved, 4.5)

	// 游客与无关用户看不到未通过课程
	if _, err := svc.Get(pending.ID, 0, false); err != util.ErrPermissionDenied {
		t.Errorf("游客访问 pending 课程应被拒绝，实际 %v", err)
	}
	if _, err := svc.Get(pending.ID, other.ID, false); err != util.ErrPermissionDenied {
		t.Errorf("无关用户访问 pending 课程应被拒绝，实际 %v", err)
	}

	// 创建者与版主可以
	if _, err := svc.Get(pending.ID, creator.ID, false); err != nil {
		t.Errorf("创建者访问自己的 pending 课程失败: %v", err)
	}
	if _, err := svc.Get(pending.ID, 0, true); err != nil {
		t.Errorf("版主访问 pending 课程失败: %v", err)
	}

	// 已通过课程对所有人可见，创建者解析为用户名
	view, err := svc.Get(approved.ID, 0, false)
	if err != nil {
		t.Fatalf("游客访问已通过课程失败: %v", err)
	}
	if view.Creator != "creator" {
		t.Errorf("创建者应解析为用户名，实际 %q", view.Creator)
	}

	if _, err := svc.Get(9999, 0, false); err != util.ErrCourseNotFound {
		t.Errorf("不存在的课程应返回 ErrCourseNotFound，实际 %v", err)
	}
}

func TestCourseListVisibility(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)
	other := seedUser(db, "other", model.RoleUser)
	seedCourse(db, creator, "待审", model.ApprovalPending, 0)
	seedCourse(db, creator, "已过", model.ApprovalApproved, 4)
	seedCourse(db, other, "他人待审", model.ApprovalDenied, 0)

	guest, err := svc.List(0, false)
	if err != nil {
		t.Fatalf("游客列表失败: %v", err)
	}
	if len(guest) != 1 || guest[0].Title != "已过" {
		t.Errorf("游客只应看到已通过课程，实际 %+v", guest)
	}

	own, err := svc.List(creator.ID, false)
	if err != nil {
		t.Fatalf("登录用户列表失败: %v", err)
	}
	if len(own) != 2 {
		t.Errorf("创建者应看到已通过课程加自己的课程，实际 %d 条", len(own))
	}

	mod, err := svc.List(0, true)
	if err != nil {
		t.Fatalf("版主列表失败: %v", err)
	}
	if len(mod) != 3 {
		t.Errorf("版主应看到全部课程，实际 %d 条", len(mod))
	}
}

func TestCourseUpdateRevertsToPending(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)
	other := seedUser(db, "other", model.RoleUser)
	course := seedCourse(db, creator, "已过", model.ApprovalApproved, 4)

	if err := svc.Update(course.ID, other.ID, CourseInput{Title: "改名"}); err != util.ErrPermissionDenied {
		t.Errorf("非创建者修改应被拒绝，实际 %v", err)
	}

	if err := svc.Update(course.ID, creator.ID, CourseInput{
		Title: "新标题", Description: "新描述", Genre: "math", Level: 5, PredictedTime: "50+",
	}); err != nil {
		t.Fatalf("创建者修改失败: %v", err)
	}

	updated := db.courses[course.ID]
	if updated.Title != "新标题" || updated.Genre != "math" {
		t.Errorf("字段未更新: %+v", updated)
	}
	if updated.Approved != model.ApprovalPending {
		t.Errorf("修改后课程应回到 pending 重新审核，实际 %s", updated.Approved)
	}
}

func TestCourseDeletePermissions(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)
	other := seedUser(db, "other", model.RoleUser)
	course := seedCourse(db, creator, "课程", model.ApprovalApproved, 4)

	if err := svc.Delete(course.ID, other.ID, false); err != util.ErrPermissionDenied {
		t.Errorf("无关用户删除应被拒绝，实际 %v", err)
	}

	// 版主可删，且评分与选课记录一并清除
	rater := seedUser(db, "rater", model.RoleUser)
	db.ratings = append(db.ratings, model.Rating{BaseModel: model.BaseModel{ID: 1}, CourseID: course.ID, RaterID: rater.ID, Score: 4})
	db.enrollments[[2]uint{rater.ID, course.ID}] = true

	if err := svc.Delete(course.ID, other.ID, true); err != nil {
		t.Fatalf("版主删除失败: %v", err)
	}
	if _, ok := db.courses[course.ID]; ok {
		t.Error("课程应已删除")
	}
	if len(db.ratings) != 0 {
		t.Errorf("课程评分应级联删除，剩余 %d 条", len(db.ratings))
	}
	if len(db.enrollments) != 0 {
		t.Errorf("选课记录应级联删除，剩余 %d 条", len(db.enrollments))
	}

	if err := svc.Delete(course.ID, creator.ID, false); err != util.ErrCourseNotFound {
		t.Errorf("删除不存在的课程应返回 ErrCourseNotFound，实际 %v", err)
	}
}

func TestCourseSetApproval(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)
	course := seedCourse(db, creator, "待审", model.ApprovalPending, 0)

	if err := svc.SetApproval(course.ID, model.ApprovalApproved); err != nil {
		t.Fatalf("审核通过失败: %v", err)
	}
	if db.courses[course.ID].Approved != model.ApprovalApproved {
		t.Errorf("课程应为 approved，实际 %s", db.courses[course.ID].Approved)
	}

	if err := svc.SetApproval(course.ID, model.ApprovalDenied); err != nil {
		t.Fatalf("驳回失败: %v", err)
	}
	if db.courses[course.ID].Approved != model.ApprovalDenied {
		t.Errorf("课程应为 denied，实际 %s", db.courses[course.ID].Approved)
	}

	if err := svc.SetApproval(9999, model.ApprovalApproved); err != util.ErrCourseNotFound {
		t.Errorf("审核不存在的课程应返回 ErrCourseNotFound，实际 %v", err)
	}
}

func TestEnrollIdempotent(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)
	student := seedUser(db, "student", model.RoleUser)
	course := seedCourse(db, creator, "课程", model.ApprovalApproved, 0)

	if err := svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("选课失败: %v", err)
	}
	if err := svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("重复选课应为空操作: %v", err)
	}
	if len(db.enrollments) != 1 {
		t.Errorf("选课集合应只有一条记录，实际 %d", len(db.enrollments))
	}

	if err := svc.Enroll(student.ID, 9999); err != util.ErrCourseNotFound {
		t.Errorf("选不存在的课程应返回 ErrCourseNotFound，实际 %v", err)
	}

	enrolled, err := svc.ListEnrolled(student.ID)
	if err != nil {
		t.Fatalf("已选列表失败: %v", err)
	}
	if len(enrolled) != 1 || enrolled[0].ID != course.ID {
		t.Errorf("已选列表不符: %+v", enrolled)
	}
}

func TestUnenrollMissingIsNoop(t *testing.T) {
	db, svc := newCourseFixture()
	student := seedUser(db, "student", model.RoleUser)

	if err := svc.Unenroll(student.ID, 42); err != nil {
		t.Errorf("退未选的课应成功返回，实际 %v", err)
	}
	if len(db.enrollments) != 0 {
		t.Errorf("选课集合应保持为空，实际 %d", len(db.enrollments))
	}
}

func TestListPendingAndCreated(t *testing.T) {
	db, svc := newCourseFixture()
	creator := seedUser(db, "creator", model.RoleUser)
	other := seedUser(db, "other", model.RoleUser)
	seedCourse(db, creator, "待审1", model.ApprovalPending, 0)
	seedCourse(db, other, "待审2", model.ApprovalPending, 0)
	seedCourse(db, creator, "已过", model.ApprovalApproved, 4)

	pending, err := svc.ListPending()
	if err != nil {
		t.Fatalf("审核队列失败: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("审核队列应有 2 条，实际 %d", len(pending))
	}

	created, err := svc.ListCreated(creator.ID)
	if err != nil {
		t.Fatalf("我的课程失败: %v", err)
	}
	if len(created) != 2 {
		t.Errorf("创建者应有 2 门课程（含待审），实际 %d", len(created))
	}
}
