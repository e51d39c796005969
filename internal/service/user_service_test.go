package service

import (
	"testing"

	"course_share_backend/internal/model"
	"course_share_backend/internal/util"
)

func newUserFixture() (*memDB, *UserService, *mockInvalidator) {
	db := newMemDB()
	board := &mockInvalidator{}
	svc := NewUserService(&mockUserRepo{db: db}, &mockCourseRepo{db: db}, &mockEnrollmentRepo{db: db}, board)
	return db, svc, board
}

func TestGetProfile(t *testing.T) {
	db, svc, _ := newUserFixture()
	user := seedUser(db, "alice", model.RoleUser)
	other := seedUser(db, "bob", model.RoleUser)

	seedCourse(db, user, "a", model.ApprovalApproved, 4)
	seedCourse(db, user, "b", model.ApprovalApproved, 5)
	seedCourse(db, user, "c", model.ApprovalPending, 0)
	enrolled := seedCourse(db, other, "d", model.ApprovalApproved, 3)
	db.enrollments[[2]uint{user.ID, enrolled.ID}] = true

	profile, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("查询个人资料失败: %v", err)
	}

	if profile.Username != "alice" || profile.Role != "user" {
		t.Errorf("基本信息不符: %+v", profile)
	}
	if profile.CreatedCourses != 3 {
		t.Errorf("创建课程数应为 3（含待审），实际 %d", profile.CreatedCourses)
	}
	if profile.EnrolledCourses != 1 {
		t.Errorf("已选课程数应为 1，实际 %d", profile.EnrolledCourses)
	}
	if profile.UserScore == nil || *profile.UserScore != 4.5 {
		t.Errorf("声誉分应为 4.5，实际 %v", fmtScore(profile.UserScore))
	}

	if _, err := svc.GetProfile(9999); err != util.ErrUserNotFound {
		t.Errorf("不存在的用户应返回 ErrUserNotFound，实际 %v", err)
	}
}

func TestGetPublicProfileHidesUnapproved(t *testing.T) {
	db, svc, _ := newUserFixture()
	user := seedUser(db, "alice", model.RoleUser)

	seedCourse(db, user, "公开课", model.ApprovalApproved, 4)
	seedCourse(db, user, "待审课", model.ApprovalPending, 0)
	seedCourse(db, user, "被拒课", model.ApprovalDenied, 0)

	profile, err := svc.GetPublicProfile("alice")
	if err != nil {
		t.Fatalf("查询公开资料失败: %v", err)
	}

	if len(profile.CreatedCourses) != 1 || profile.CreatedCourses[0].Title != "公开课" {
		t.Errorf("公开页只应展示已通过课程，实际 %+v", profile.CreatedCourses)
	}
	if profile.UserScore == nil || *profile.UserScore != 4 {
		t.Errorf("声誉分应为 4，实际 %v", fmtScore(profile.UserScore))
	}

	if _, err := svc.GetPublicProfile("nobody"); err != util.ErrUserNotFound {
		t.Errorf("不存在的用户名应返回 ErrUserNotFound，实际 %v", err)
	}
}

func TestDeleteByUsernameCascades(t *testing.T) {
	db, svc, board := newUserFixture()
	victim := seedUser(db, "victim", model.RoleUser)
	other := seedUser(db, "other", model.RoleUser)

	victimCourse := seedCourse(db, victim, "victim的课", model.ApprovalApproved, 0)
	otherCourse := seedCourse(db, other, "other的课", model.ApprovalApproved, 0)

	// other 给 victim 的课评分并选课；victim 给 other 的课评分并选课
	ratingRepo := &mockRatingRepo{db: db}
	ratingRepo.Upsert(&model.Rating{CourseID: victimCourse.ID, RaterID: other.ID, Score: 5})
	ratingRepo.Upsert(&model.Rating{CourseID: otherCourse.ID, RaterID: victim.ID, Score: 2})
	ratingRepo.Upsert(&model.Rating{CourseID: otherCourse.ID, RaterID: other.ID, Score: 4})
	db.enrollments[[2]uint{other.ID, victimCourse.ID}] = true
	db.enrollments[[2]uint{victim.ID, otherCourse.ID}] = true

	if err := svc.DeleteByUsername("victim"); err != nil {
		t.Fatalf("级联删除失败: %v", err)
	}

	if _, ok := db.users[victim.ID]; ok {
		t.Error("用户应已删除")
	}
	if _, ok := db.courses[victimCourse.ID]; ok {
		t.Error("用户创建的课程应级联删除")
	}
	for _, r := range db.ratings {
		if r.RaterID == victim.ID || r.CourseID == victimCourse.ID {
			t.Errorf("残留评分: %+v", r)
		}
	}
	for key := range db.enrollments {
		if key[0] == victim.ID || key[1] == victimCourse.ID {
			t.Errorf("残留选课记录: %v", key)
		}
	}

	// 被删用户在他人课程上的评分移除后，课程均分重算
	if got := db.courses[otherCourse.ID].CourseScore; got != 4 {
		t.Errorf("other 的课程均分应重算为 4，实际 %v", got)
	}

	// 级联删除会影响榜单，缓存必须失效
	if board.calls == 0 {
		t.Error("删除用户后应使榜单缓存失效")
	}

	if err := svc.DeleteByUsername("victim"); err != util.ErrUserNotFound {
		t.Errorf("重复删除应返回 ErrUserNotFound，实际 %v", err)
	}
}
