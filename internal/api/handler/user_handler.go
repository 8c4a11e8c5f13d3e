package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"peertest/internal/api/middleware"
	"peertest/internal/dto"
	"peertest/internal/service"
	"peertest/pkg/responses"
	"peertest/pkg/utils"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List 用户列表
// @Summary 获取全部用户
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.UserInfo
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, users)
}

// Get 按id查询用户
// @Summary 获取指定用户信息
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} dto.UserInfo
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的用户id")
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}

// Delete 删除用户
// @Summary 删除指定用户
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} responses.Response
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的用户id")
		return
	}

	if err := h.userService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "User deleted successfully", nil)
}

// Update 更新当前用户
// @Summary 更新当前用户信息
// @Description 更新邮箱/GitLab地址/GitLab Token/电话
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.UpdateUserRequest true "更新请求"
// @Success 200 {object} dto.UserInfo
// @Router /api/v1/users/me [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	user, err := h.userService.Update(middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}
