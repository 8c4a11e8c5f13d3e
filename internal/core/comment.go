package core

import (
	"fmt"
	"strings"

	"peertest/internal/pkg/git/api"
	"peertest/pkg/constants"
	pkgErrors "peertest/pkg/responses"
)

// CommentOnCommit 把评论同时镜像到fork项目与测试项目的配对提交上
// commitID必须已在项目的提交配对表里, 否则不发起任何远端调用直接失败;
// 镜像非原子: 原项目评论成功后测试项目失败时不回滚, 整体上报失败
func (e *Engine) CommentOnCommit(baseURL string, project ProjectView, commitID, text string) error {
	glt, err := e.session(baseURL, project.TestingProject.AccessToken)
	if err != nil {
		return err
	}
	if _, err := glt.GetProject(project.TestingProject.ID); err != nil {
		return pkgErrors.WrapOf(ErrRemote, fmt.Errorf("获取测试项目失败: %w", err))
	}

	glm, err := e.session(baseURL, project.AccessToken)
	if err != nil {
		return err
	}
	if _, err := glm.GetProject(project.ID); err != nil {
		return pkgErrors.WrapOf(ErrRemote, fmt.Errorf("获取主项目失败: %w", err))
	}

	for _, link := range project.Commits {
		if link.CommitID != commitID {
			continue
		}
		if err := glm.PostCommitComment(project.ID, commitID, text); err != nil {
			return pkgErrors.WrapOf(ErrRemote, err)
		}
		if err := glt.PostCommitComment(project.TestingProject.ID, link.TestingCommitID, text); err != nil {
			return pkgErrors.WrapOf(ErrRemote, err)
		}
		return nil
	}
	return ErrCommitNotLinked
}

// FormatReview 组装评分评论文本: 星号前缀 + 空格 + 正文
// 评分超出1..5直接拒绝, 不发起远端调用
func FormatReview(rating int, text string) (string, error) {
	if rating < constants.RatingMin || rating > constants.RatingMax {
		return "", ErrInvalidRating
	}
	return fmt.Sprintf("%s %s", strings.Repeat(constants.StarGlyph, rating), text), nil
}

// IsReview 文本是否带星号评分
func IsReview(note string) bool {
	return strings.Contains(note, constants.StarGlyph)
}

// ListCommitComments 列出提交上的普通评论(不含星号的)
func (e *Engine) ListCommitComments(baseURL, token string, projectID int, commitID string) ([]api.CommentSummary, error) {
	comments, err := e.fetchComments(baseURL, token, projectID, commitID)
	if err != nil {
		return nil, err
	}
	result := make([]api.CommentSummary, 0, len(comments))
	for _, c := range comments {
		if !IsReview(c.Note) {
			result = append(result, c)
		}
	}
	return result, nil
}

// ListCommitReviews 列出提交上的评分评论(含星号的)
func (e *Engine) ListCommitReviews(baseURL, token string, projectID int, commitID string) ([]api.CommentSummary, error) {
	comments, err := e.fetchComments(baseURL, token, projectID, commitID)
	if err != nil {
		return nil, err
	}
	result := make([]api.CommentSummary, 0, len(comments))
	for _, c := range comments {
		if IsReview(c.Note) {
			result = append(result, c)
		}
	}
	return result, nil
}

// fetchComments 拉取提交的完整远端评论列表, 评论/评分的区分在本地过滤
func (e *Engine) fetchComments(baseURL, token string, projectID int, commitID string) ([]api.CommentSummary, error) {
	gl, err := e.session(baseURL, token)
	if err != nil {
		return nil, err
	}
	comments, err := gl.ListCommitComments(projectID, commitID)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}
	return comments, nil
}
