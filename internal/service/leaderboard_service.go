package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"course_share_backend/internal/model"
	"course_share_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	homeCacheKey = "leaderboard:home"
	homeCacheTTL = 60 * time.Second
	topN         = 3
)

// CourseBrief 首页榜单里的课程条目
type CourseBrief struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	CourseScore float64 `json:"courseScore"`
}

// TopUser 榜单用户条目，UserScore 为统一口径的声誉分
type TopUser struct {
	Username       string   `json:"username"`
	UserScore      *float64 `json:"userScore"`
	CreatedCourses int      `json:"createdCourses"`
}

type HomeData struct {
	TopCourses []CourseBrief `json:"topCourses"`
	TopUsers   []TopUser     `json:"topUsers"`
}

type LeaderboardService struct {
	CourseRepo CourseRepo
	UserRepo   UserRepo
	Redis      *redis.Client
}

func NewLeaderboardService(courseRepo CourseRepo, userRepo UserRepo, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{
		CourseRepo: courseRepo,
		UserRepo:   userRepo,
		Redis:      rdb,
	}
}

// Home 首页榜单：已通过课程按均分取前3，普通用户按声誉分取前3。
// 结果在 Redis 缓存 60 秒，评分和审核写入时失效。
func (s *LeaderboardService) Home(ctx context.Context) (*HomeData, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, homeCacheKey).Bytes()
		if err == nil {
			var data HomeData
			if json.Unmarshal(cached, &data) == nil {
				return &data, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	topCourses, err := s.CourseRepo.FindTopApproved(topN)
	if err != nil {
		return nil, err
	}
	briefs := make([]CourseBrief, 0, len(topCourses))
	for _, c := range topCourses {
		briefs = append(briefs, CourseBrief{ID: c.ID, Title: c.Title, CourseScore: c.CourseScore})
	}

	topUsers, err := s.TopUsers(topN)
	if err != nil {
		return nil, err
	}

	data := &HomeData{TopCourses: briefs, TopUsers: topUsers}

	if s.Redis != nil {
		if raw, err := json.Marshal(data); err == nil {
			if err := s.Redis.Set(ctx, homeCacheKey, raw, homeCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return data, nil
}

// TopUsers 声誉榜：仅统计角色为 user 的账号，没有合格分数的用户不入榜。
// 排序使用稳定排序，同分保持底层集合的迭代顺序。
func (s *LeaderboardService) TopUsers(limit int) ([]TopUser, error) {
	users, err := s.UserRepo.FindByRole(model.RoleUser)
	if err != nil {
		return nil, err
	}

	ranked := make([]TopUser, 0, len(users))
	for _, u := range users {
		courses, err := s.CourseRepo.FindByCreator(u.ID)
		if err != nil {
			return nil, err
		}
		if len(courses) == 0 {
			continue
		}
		score := ComputeUserScore(courses)
		if score == nil {
			continue
		}
		ranked = append(ranked, TopUser{
			Username:       u.Username,
			UserScore:      score,
			CreatedCourses: len(courses),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].UserScore > *ranked[j].UserScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Invalidate 写路径调用，丢弃缓存的榜单
func (s *LeaderboardService) Invalidate() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), homeCacheKey).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}
