package controller

import (
	"course_share_backend/internal/service"
	"course_share_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// PublicProfile godoc
// @Summary 公开用户主页
// @Description 按用户名查看：注册时间、声誉分、已通过的课程
// @Tags 用户
// @Produce json
// @Param username path string true "用户名"
// @Success 200 {object} util.Response{data=service.PublicProfile} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/profile/{username} [get]
func (c *UserController) PublicProfile(ctx *gin.Context) {
	username := ctx.Param("username")

	profile, err := c.UserService.GetPublicProfile(username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 版主/管理员操作：级联删除该用户与其全部课程、评分、选课记录
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Param username path string true "用户名"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "非版主"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{username} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	username := ctx.Param("username")

	if err := c.UserService.DeleteByUsername(username); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "User and all their courses deleted"})
}
