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

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create 创建(fork)项目
// @Summary fork项目并初始化测试项目
// @Description fork源项目, 创建配套测试项目与机器人Token, 同步同伴分支并记录提交配对
// @Tags 项目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateProjectRequest true "创建请求"
// @Success 200 {object} dto.ProjectInfo
// @Router /api/v1/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Project forked successfully", project)
}

// Retrieve 项目详情
// @Summary 检索项目及其测试项目
// @Tags 项目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目id"
// @Success 200 {object} dto.ProjectDetail
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) Retrieve(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的项目id")
		return
	}

	detail, err := h.projectService.Retrieve(middleware.CurrentUserID(c), projectID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, detail)
}

// List 项目列表
// @Summary 列出全部项目记录及远端详情
// @Tags 项目
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.ProjectDetail
// @Router /api/v1/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	details, err := h.projectService.List(middleware.CurrentUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, details)
}

// Update 更新项目
// @Summary 向项目分支提交内容并同步同伴分支
// @Tags 项目
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目id"
// @Param request body dto.UpdateProjectRequest true "更新请求"
// @Success 200 {object} responses.Response
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的项目id")
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.projectService.Update(middleware.CurrentUserID(c), projectID, &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Project updated successfully", nil)
}

// Delete 删除项目
// @Summary 删除项目及其测试项目
// @Description 先删远端两侧项目再删本地记录, 两侧远端都删除失败时保留本地记录
// @Tags 项目
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "项目id"
// @Success 200 {object} responses.Response
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.ErrorWithCode(c, 400, "无效的项目id")
		return
	}

	if err := h.projectService.Delete(middleware.CurrentUserID(c), projectID); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Project deleted successfully", nil)
}
