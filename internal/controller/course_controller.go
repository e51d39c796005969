package controller

import (
	"course_share_backend/internal/model"
	"course_share_backend/internal/service"
	"course_share_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// swagger:model CourseRequest
type CourseRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,max=100"`
	Difficulty  int    `json:"difficulty" binding:"required,min=1,max=5"`
	Length      string `json:"length" binding:"required,max=50"`
}

func (r *CourseRequest) toInput() service.CourseInput {
	return service.CourseInput{
		Title:         r.Title,
		Description:   r.Description,
		Genre:         r.Category,
		Level:         r.Difficulty,
		PredictedTime: r.Length,
	}
}

// viewer 从可选认证上下文提取访问者身份，游客返回 (0, false)
func viewer(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return 0, false
	}
	return claims.UserID, claims.Role == model.RoleModerator || claims.Role == model.RoleAdmin
}

// List godoc
// @Summary 课程列表
// @Description 游客仅见已通过课程；登录用户额外看到自己的；版主看到全部
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	viewerID, isModerator := viewer(ctx)
	courses, err := c.CourseService.List(viewerID, isModerator)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses})
}

// Get godoc
// @Summary 课程详情
// @Description 未过审课程仅创建者与版主可见
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseView} "成功"
// @Failure 400 {object} util.Response "非法ID"
// @Failure 403 {object} util.Response "无权查看"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
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
	util.Success(ctx, gin.H{"course": course})
}

// Create godoc
// @Summary 创建课程
// @Description 新课程进入 pending 状态等待审核
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 401 {object} util.Response "未登录"
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(claims.UserID, req.toInput())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"courseId": course.ID})
}

// Update godoc
// @Summary 编辑课程
// @Description 仅创建者可编辑；编辑后课程回到 pending 重新审核
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body CourseRequest true "课程信息"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "非创建者"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
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

	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.Update(id, claims.UserID, req.toInput()); err != nil {
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

	util.Success(ctx, gin.H{"message": "Course updated successfully"})
}

// Delete godoc
// @Summary 删除课程
// @Description 创建者本人或版主可删，课程的评分与选课记录一并删除
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权删除"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
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

	isModerator := claims.Role == model.RoleModerator || claims.Role == model.RoleAdmin
	if err := c.CourseService.Delete(id, claims.UserID, isModerator); err != nil {
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

	util.Success(ctx, gin.H{"message": "Course deleted"})
}

// swagger:model ApprovalRequest
type ApprovalRequest struct {
	Approved string `json:"approved" binding:"required"`
}

// Approve godoc
// @Summary 课程审核
// @Description 版主/管理员设置课程审核状态，合法值 pending/approved/denied
// @Tags 审核
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body ApprovalRequest true "审核状态"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "非法状态值"
// @Failure 403 {object} util.Response "非版主"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id}/approve [put]
func (c *CourseController) Approve(ctx *gin.Context) {
	id, ok := util.ParseID(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req ApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !model.ValidApprovalState(req.Approved) {
		util.BadRequest(ctx, util.ErrInvalidApproval.Error())
		return
	}

	if err := c.CourseService.SetApproval(id, model.ApprovalState(req.Approved)); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Course approval updated"})
}

// Approvals godoc
// @Summary 审核队列
// @Description 待审核课程列表，版主入口
// @Tags 审核
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/approvals [get]
func (c *CourseController) Approvals(ctx *gin.Context) {
	courses, err := c.CourseService.ListPending()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses})
}

// MyCourses godoc
// @Summary 我创建的课程
// @Description 未登录时返回空列表而非 401，与读接口的降级约定一致
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/mycourses [get]
func (c *CourseController) MyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Success(ctx, gin.H{"courses": []service.CourseView{}})
		return
	}

	courses, err := c.CourseService.ListCreated(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses})
}

// EnrolledCourses godoc
// @Summary 我选修的课程
// @Description 未登录时返回空列表
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/mycourses/enrolled [get]
func (c *CourseController) EnrolledCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Success(ctx, gin.H{"courses": []service.CourseView{}})
		return
	}

	courses, err := c.CourseService.ListEnrolled(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courses": courses})
}
