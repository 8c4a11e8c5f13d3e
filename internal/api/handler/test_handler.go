package handler

import (
	"github.com/gin-gonic/gin"

	"peertest/internal/api/middleware"
	"peertest/internal/dto"
	"peertest/internal/service"
	"peertest/pkg/responses"
	"peertest/pkg/utils"
)

type TestHandler struct {
	testService service.TestService
}

func NewTestHandler(testService service.TestService) *TestHandler {
	return &TestHandler{
		testService: testService,
	}
}

// Trigger 触发测试
// @Summary 在测试项目分支上触发一轮测试
// @Description 重新注入流水线文件产生新提交, 由远端CI执行
// @Tags 测试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.TriggerTestRequest true "触发请求"
// @Success 200 {object} core.PipelineLinkage
// @Router /api/v1/tests [post]
func (h *TestHandler) Trigger(c *gin.Context) {
	var req dto.TriggerTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	linkage, err := h.testService.Trigger(middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "test executed successfully", linkage)
}

// List 测试列表
// @Summary 列出测试项目的流水线
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Param testingproject_id query int true "测试项目id"
// @Param branchname query string false "分支名"
// @Success 200 {array} api.PipelineSummary
// @Router /api/v1/tests [get]
func (h *TestHandler) List(c *gin.Context) {
	var query dto.ListTestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	pipelines, err := h.testService.List(middleware.CurrentUserID(c), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "tests retrieved successfully", pipelines)
}

// Get 测试详情
// @Summary 流水线详情
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Param testingproject_id query int true "测试项目id"
// @Param pipeline_id query int true "流水线id"
// @Success 200 {object} api.PipelineSummary
// @Router /api/v1/tests/detail [get]
func (h *TestHandler) Get(c *gin.Context) {
	var query dto.GetTestQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	pipeline, err := h.testService.Get(middleware.CurrentUserID(c), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "test retrieved successfully", pipeline)
}
