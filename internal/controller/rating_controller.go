package controller

import (
	"course_share_backend/internal/service"
	"course_share_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingService *service.RatingService
	CourseService *service.CourseService
}

func NewRatingController(ratingService *service.RatingService, courseService *service.CourseService) *RatingController {
	return &RatingController{
		RatingService: ratingService,
		CourseService: courseService,
	}
}

// swagger:model RateRequest
type RateRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// Rate godoc
// @Summary 提交评分
// @Description 分数1-5；同一用户重复评分覆盖旧评分，课程均分同步重算
// @Tags 评分
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body RateRequest true "评分"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "分数越界"
// @Failure 401 {object} util.Response "未登录"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id}/rate [post]
func (c *RatingController) Rate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := util.ParseID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req RateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.RatingService.Rate(id, claims.UserID, req.Score); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidScore):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

// GetForRating godoc
// @Summary 评分页课程数据
// @Description 评分页展示用的课程详情，创建者解析为用户名
// @Tags 评分
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "非法ID"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id}/rate [get]
func (c *RatingController) GetForRating(ctx *gin.Context) {
	id, ok := util.ParseID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	viewerID, isModerator := viewer(ctx)
	course, err := c.CourseService.Get(id, viewerID, isModerator)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	count, myScore, err := c.RatingService.RatingSummary(id, viewerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"course":      course,
		"ratingCount": count,
		"myScore":     myScore,
	})
}
