package service

import (
	"peertest/internal/core"
	"peertest/internal/dto"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/git/api"
	"peertest/internal/repository"
	"peertest/pkg/constants"
	pkgErrors "peertest/pkg/responses"
)

type CommentService interface {
	PostComment(userID int64, req *dto.PostCommentRequest) error
	PostReview(userID int64, req *dto.PostReviewRequest) error
	ListComments(userID int64, query *dto.ListCommentsQuery) ([]api.CommentSummary, error)
	ListReviews(userID int64, query *dto.ListCommentsQuery) ([]api.CommentSummary, error)
}

type commentService struct {
	cfg         *config.Config
	engine      *core.Engine
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	cfg *config.Config,
	engine *core.Engine,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		cfg:         cfg,
		engine:      engine,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// PostComment 发表评论并镜像到测试项目
// 评论文本追加 [ci skip], 避免提交评论触发流水线动作
func (s *commentService) PostComment(userID int64, req *dto.PostCommentRequest) error {
	baseURL, view, err := s.commentContext(userID, req.ProjectID)
	if err != nil {
		return err
	}
	return s.engine.CommentOnCommit(baseURL, view, req.CommitID, req.CommentText+constants.CISkipSuffix)
}

// PostReview 发表评分评论: 1~5个星号前缀编码评分
func (s *commentService) PostReview(userID int64, req *dto.PostReviewRequest) error {
	text, err := core.FormatReview(req.Rating, req.CommentText)
	if err != nil {
		return err
	}

	baseURL, view, err := s.commentContext(userID, req.ProjectID)
	if err != nil {
		return err
	}
	return s.engine.CommentOnCommit(baseURL, view, req.CommitID, text+constants.CISkipSuffix)
}

// ListComments 列出提交上的普通评论, 用项目自己的机器人Token拉取
func (s *commentService) ListComments(userID int64, query *dto.ListCommentsQuery) ([]api.CommentSummary, error) {
	baseURL, view, err := s.commentContext(userID, query.ProjectID)
	if err != nil {
		return nil, err
	}
	return s.engine.ListCommitComments(baseURL, view.AccessToken, view.ID, query.CommitID)
}

// ListReviews 列出提交上的评分评论
func (s *commentService) ListReviews(userID int64, query *dto.ListCommentsQuery) ([]api.CommentSummary, error) {
	baseURL, view, err := s.commentContext(userID, query.ProjectID)
	if err != nil {
		return nil, err
	}
	return s.engine.ListCommitReviews(baseURL, view.AccessToken, view.ID, query.CommitID)
}

// commentContext 组装评论操作的上下文: 用户的GitLab地址 + 解密后的项目视图
func (s *commentService) commentContext(userID int64, projectID int) (string, core.ProjectView, error) {
	baseURL, _, _, err := resolveGitlabIdentity(s.cfg, s.userRepo, userID)
	if err != nil {
		return "", core.ProjectView{}, err
	}
	record, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return "", core.ProjectView{}, err
	}
	view, err := decryptProjectView(s.cfg, record)
	if err != nil {
		return "", core.ProjectView{}, pkgErrors.Wrap(pkgErrors.CodeInternalError, "解密项目记录失败", err)
	}
	return baseURL, view, nil
}
