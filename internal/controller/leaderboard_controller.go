package controller

import (
	"course_share_backend/internal/service"
	"course_share_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	Board *service.LeaderboardService
}

func NewLeaderboardController(board *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{Board: board}
}

// Home godoc
// @Summary 首页榜单
// @Description 已通过课程均分前3与用户声誉分前3，结果短暂缓存
// @Tags 榜单
// @Produce json
// @Success 200 {object} util.Response{data=service.HomeData} "成功"
// @Router /api/home [get]
func (c *LeaderboardController) Home(ctx *gin.Context) {
	data, err := c.Board.Home(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

// TopUsers godoc
// @Summary 用户声誉榜
// @Description 至多3名，按声誉分降序；无合格分数的用户不入榜
// @Tags 榜单
// @Produce json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/topusers [get]
func (c *LeaderboardController) TopUsers(ctx *gin.Context) {
	topUsers, err := c.Board.TopUsers(3)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"topUsers": topUsers})
}
