package handler

import (
	"github.com/gin-gonic/gin"

	"peertest/internal/dto"
	"peertest/pkg/responses"
)

type StatusHandler struct {
	name    string
	version string
}

func NewStatusHandler(name, version string) *StatusHandler {
	return &StatusHandler{
		name:    name,
		version: version,
	}
}

// Status 服务状态
// @Summary 服务状态
// @Description 返回应用名称与版本, 用于探活
// @Tags 状态
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/v1/status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	responses.SuccessWithMessage(c, "Api is running", &dto.StatusResponse{
		Name:    h.name,
		Version: h.version,
	})
}
