package service

import (
	"sort"

	"course_share_backend/internal/model"

	"gorm.io/gorm"
)

// 内存版仓储实现，行为对齐 repository 包的 gorm 实现：
// 评分覆盖写 + 均分重算、选课集合语义、删除级联。

type memDB struct {
	users        map[uint]*model.User
	courses      map[uint]*model.Course
	ratings      []model.Rating
	enrollments  map[[2]uint]bool // {userID, courseID}
	nextUserID   uint
	nextCourseID uint
	nextRatingID uint
}

func newMemDB() *memDB {
	return &memDB{
		users:       make(map[uint]*model.User),
		courses:     make(map[uint]*model.Course),
		enrollments: make(map[[2]uint]bool),
	}
}

func (db *memDB) recomputeScore(courseID uint) {
	course, ok := db.courses[courseID]
	if !ok {
		return
	}
	sum, n := 0, 0
	for _, r := range db.ratings {
		if r.CourseID == courseID {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		course.CourseScore = 0
	} else {
		course.CourseScore = float64(sum) / float64(n)
	}
}

// ── mockUserRepo ──

type mockUserRepo struct {
	db *memDB
}

func (m *mockUserRepo) Create(user *model.User) error {
	m.db.nextUserID++
	user.ID = m.db.nextUserID
	m.db.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(id uint) (*model.User, error) {
	if u, ok := m.db.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range m.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range m.db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range m.db.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) FindByRole(role model.UserRole) ([]model.User, error) {
	ids := make([]uint, 0, len(m.db.users))
	for id, u := range m.db.users {
		if u.Role == role {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *m.db.users[id])
	}
	return users, nil
}

func (m *mockUserRepo) DeleteCascade(userID uint) error {
	var courseIDs []uint
	for id, c := range m.db.courses {
		if c.CreatorID == userID {
			courseIDs = append(courseIDs, id)
		}
	}
	for _, id := range courseIDs {
		m.deleteCourse(id)
	}

	// 该用户打在他人课程上的评分
	var affected []uint
	kept := m.db.ratings[:0]
	for _, r := range m.db.ratings {
		if r.RaterID == userID {
			affected = append(affected, r.CourseID)
			continue
		}
		kept = append(kept, r)
	}
	m.db.ratings = kept
	for _, id := range affected {
		m.db.recomputeScore(id)
	}

	for key := range m.db.enrollments {
		if key[0] == userID {
			delete(m.db.enrollments, key)
		}
	}

	delete(m.db.users, userID)
	return nil
}

func (m *mockUserRepo) deleteCourse(courseID uint) {
	kept := m.db.ratings[:0]
	for _, r := range m.db.ratings {
		if r.CourseID != courseID {
			kept = append(kept, r)
		}
	}
	m.db.ratings = kept
	for key := range m.db.enrollments {
		if key[1] == courseID {
			delete(m.db.enrollments, key)
		}
	}
	delete(m.db.courses, courseID)
}

// ── mockCourseRepo ──

type mockCourseRepo struct {
	db *memDB
}

func (m *mockCourseRepo) Create(course *model.Course) error {
	m.db.nextCourseID++
	course.ID = m.db.nextCourseID
	if course.Creator == nil {
		if u, ok := m.db.users[course.CreatorID]; ok {
			course.Creator = u
		}
	}
	m.db.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) FindByID(id uint) (*model.Course, error) {
	if c, ok := m.db.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) FindByIDWithCreator(id uint) (*model.Course, error) {
	return m.FindByID(id)
}

func (m *mockCourseRepo) sorted() []model.Course {
	ids := make([]uint, 0, len(m.db.courses))
	for id := range m.db.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	courses := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		courses = append(courses, *m.db.courses[id])
	}
	return courses
}

func (m *mockCourseRepo) FindAll() ([]model.Course, error) {
	return m.sorted(), nil
}

func (m *mockCourseRepo) FindVisibleTo(viewerID uint) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.sorted() {
		if c.Approved == model.ApprovalApproved || (viewerID != 0 && c.CreatorID == viewerID) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) FindByApproval(state model.ApprovalState) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.sorted() {
		if c.Approved == state {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) FindByCreator(creatorID uint) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.sorted() {
		if c.CreatorID == creatorID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) FindEnrolledBy(userID uint) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.sorted() {
		if m.db.enrollments[[2]uint{userID, c.ID}] {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) FindTopApproved(limit int) ([]model.Course, error) {
	approved, _ := m.FindByApproval(model.ApprovalApproved)
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].CourseScore > approved[j].CourseScore
	})
	if len(approved) > limit {
		approved = approved[:limit]
	}
	return approved, nil
}

func (m *mockCourseRepo) Update(course *model.Course) error {
	if _, ok := m.db.courses[course.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.db.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) UpdateApproval(id uint, state model.ApprovalState) error {
	c, ok := m.db.courses[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Approved = state
	return nil
}

func (m *mockCourseRepo) Delete(id uint) error {
	(&mockUserRepo{db: m.db}).deleteCourse(id)
	return nil
}

// ── mockRatingRepo ──

type mockRatingRepo struct {
	db *memDB
}

func (m *mockRatingRepo) FindByCourse(courseID uint) ([]model.Rating, error) {
	var result []model.Rating
	for _, r := range m.db.ratings {
		if r.CourseID == courseID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRatingRepo) Upsert(rating *model.Rating) error {
	for i := range m.db.ratings {
		if m.db.ratings[i].CourseID == rating.CourseID && m.db.ratings[i].RaterID == rating.RaterID {
			m.db.ratings[i].Score = rating.Score
			m.db.recomputeScore(rating.CourseID)
			return nil
		}
	}
	m.db.nextRatingID++
	rating.ID = m.db.nextRatingID
	m.db.ratings = append(m.db.ratings, *rating)
	m.db.recomputeScore(rating.CourseID)
	return nil
}

// ── mockEnrollmentRepo ──

type mockEnrollmentRepo struct {
	db *memDB
}

func (m *mockEnrollmentRepo) Add(userID, courseID uint) error {
	m.db.enrollments[[2]uint{userID, courseID}] = true
	return nil
}

func (m *mockEnrollmentRepo) Remove(userID, courseID uint) error {
	delete(m.db.enrollments, [2]uint{userID, courseID})
	return nil
}

func (m *mockEnrollmentRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for key := range m.db.enrollments {
		if key[0] == userID {
			count++
		}
	}
	return count, nil
}

// ── mockInvalidator ──

// mockInvalidator 记录榜单缓存失效的调用次数
type mockInvalidator struct {
	calls int
}

func (m *mockInvalidator) Invalidate() {
	m.calls++
}

// ── 测试数据构造 ──

func seedUser(db *memDB, username string, role model.UserRole) *model.User {
	repo := &mockUserRepo{db: db}
	user := &model.User{
		Username: username,
		Email:    username + "@test.com",
		Password: "hashed",
		Role:     role,
	}
	repo.Create(user)
	return user
}

func seedCourse(db *memDB, creator *model.User, title string, state model.ApprovalState, score float64) *model.Course {
	repo := &mockCourseRepo{db: db}
	course := &model.Course{
		Title:         title,
		Description:   "desc",
		Genre:         "programming",
		Level:         3,
		PredictedTime: "10-50",
		CreatorID:     creator.ID,
		Creator:       creator,
		Approved:      state,
		CourseScore:   score,
	}
	repo.Create(course)
	return course
}
