package handler

import (
	"github.com/gin-gonic/gin"

	"peertest/pkg/responses"
)

// SyncTrigger 手动触发一轮全量分支同步的能力
type SyncTrigger interface {
	TriggerSync() error
}

type SyncHandler struct {
	trigger SyncTrigger
}

func NewSyncHandler(trigger SyncTrigger) *SyncHandler {
	return &SyncHandler{
		trigger: trigger,
	}
}

// Trigger 手动同步
// @Summary 手动触发一轮分支矩阵同步
// @Description 不等待定时任务, 立即对所有项目记录执行分支同步
// @Tags 同步
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response
// @Router /api/v1/sync [post]
func (h *SyncHandler) Trigger(c *gin.Context) {
	if err := h.trigger.TriggerSync(); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "branch synchronization completed", nil)
}
