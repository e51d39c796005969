package controller

import (
	"course_share_backend/internal/service"
	"course_share_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	CourseService *service.CourseService
}

func NewEnrollmentController(courseService *service.CourseService) *EnrollmentController {
	return &EnrollmentController{CourseService: courseService}
}

// Enroll godoc
// @Summary 选课
// @Description 集合语义：重复选同一门课是空操作，不报错
// @Tags 选课
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "未登录"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/enroll/{id} [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
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

	if err := c.CourseService.Enroll(claims.UserID, id); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Enrolled successfully"})
}

// Unenroll godoc
// @Summary 退课
// @Description 未选该课时退课同样返回成功
// @Tags 选课
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "未登录"
// @Router /api/unenroll/{id} [post]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
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

	if err := c.CourseService.Unenroll(claims.UserID, id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}
