package service

import (
	"math"

	"course_share_backend/internal/model"
)

// CourseMean 课程评分均值，无评分时返回 0（0 是"未评分"哨兵，不会作为输入分数出现）
func CourseMean(ratings []model.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings))
}

// ComputeUserScore 用户声誉分的唯一口径：已通过课程中均分非零者取平均，
// 保留两位小数；没有符合条件的课程时返回 nil（前端显示 N/A）。
// 原系统在不同接口使用了三种互相矛盾的算法，这里统一为本函数，所有调用方共用。
func ComputeUserScore(courses []model.Course) *float64 {
	sum := 0.0
	n := 0
	for _, c := range courses {
		if c.Approved != model.ApprovalApproved {
			continue
		}
		if c.CourseScore == 0 {
			continue
		}
		sum += c.CourseScore
		n++
	}
	if n == 0 {
		return nil
	}
	score := Round2(sum / float64(n))
	return &score
}

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
