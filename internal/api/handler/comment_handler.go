package handler

import (
	"github.com/gin-gonic/gin"

	"peertest/internal/api/middleware"
	"peertest/internal/dto"
	"peertest/internal/service"
	"peertest/pkg/responses"
	"peertest/pkg/utils"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// PostComment 发表评论
// @Summary 在提交上发表评论
// @Description 评论同时镜像到配对的测试项目提交
// @Tags 评论
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.PostCommentRequest true "评论请求"
// @Success 200 {object} responses.Response
// @Router /api/v1/comments [post]
func (h *CommentHandler) PostComment(c *gin.Context) {
	var req dto.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.commentService.PostComment(middleware.CurrentUserID(c), &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Comment added successfully!", nil)
}

// ListComments 评论列表
// @Summary 列出提交上的普通评论
// @Description 过滤掉带星号评分的条目
// @Tags 评论
// @Produce json
// @Security ApiKeyAuth
// @Param project_id query int true "项目id"
// @Param commit_id query string true "提交id"
// @Success 200 {array} api.CommentSummary
// @Router /api/v1/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	var query dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	comments, err := h.commentService.ListComments(middleware.CurrentUserID(c), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "comments found", comments)
}

// PostReview 发表评分评论
// @Summary 在提交上发表带星级的评审
// @Description 评分1~5编码为星号前缀, 同样镜像到测试项目
// @Tags 评审
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.PostReviewRequest true "评审请求"
// @Success 200 {object} responses.Response
// @Router /api/v1/reviews [post]
func (h *CommentHandler) PostReview(c *gin.Context) {
	var req dto.PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	if err := h.commentService.PostReview(middleware.CurrentUserID(c), &req); err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "Review added successfully!", nil)
}

// ListReviews 评审列表
// @Summary 列出提交上的评分评论
// @Tags 评审
// @Produce json
// @Security ApiKeyAuth
// @Param project_id query int true "项目id"
// @Param commit_id query string true "提交id"
// @Success 200 {array} api.CommentSummary
// @Router /api/v1/reviews [get]
func (h *CommentHandler) ListReviews(c *gin.Context) {
	var query dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, 400, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	reviews, err := h.commentService.ListReviews(middleware.CurrentUserID(c), &query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.SuccessWithMessage(c, "reviews retrieved successfully", reviews)
}
