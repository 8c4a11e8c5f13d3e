package dto

// PostCommentRequest 发表评论请求
type PostCommentRequest struct {
	ProjectID   int    `json:"project_id" binding:"required"`
	CommitID    string `json:"commit_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required"`
}

// PostReviewRequest 发表评分评论请求
type PostReviewRequest struct {
	ProjectID   int    `json:"project_id" binding:"required"`
	CommitID    string `json:"commit_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
}

// ListCommentsQuery 评论列表查询参数
type ListCommentsQuery struct {
	ProjectID int    `form:"project_id" binding:"required"`
	CommitID  string `form:"commit_id" binding:"required"`
}
