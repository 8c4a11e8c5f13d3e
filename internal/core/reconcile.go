package core

import (
	"go.uber.org/zap"

	"peertest/internal/pkg/git/api"
	"peertest/internal/pkg/logger"
)

// ReconcileLatestCommits 交叉引用fork项目与测试项目的最新提交
// 两侧各自独立取分支最新提交, 分支不存在或无提交时降级到项目默认分支;
// 默认分支也没有提交时该侧记空串。绝不向上抛错, 空值是合法输出
func (e *Engine) ReconcileLatestCommits(gl api.Gateway, testingProjectID, forkedProjectID int, forkedBranch, testingBranch string) CommitLink {
	return CommitLink{
		CommitID:        e.latestCommit(gl, forkedProjectID, forkedBranch),
		TestingCommitID: e.latestCommit(gl, testingProjectID, testingBranch),
	}
}

// latestCommit 某分支最新提交id, 带默认分支降级
func (e *Engine) latestCommit(gl api.Gateway, projectID int, branch string) string {
	commits, err := gl.ListCommits(projectID, branch, 1)
	if err == nil && len(commits) > 0 {
		return commits[0].ID
	}

	project, perr := gl.GetProject(projectID)
	if perr != nil {
		logger.Warn("获取项目默认分支失败", zap.Int("project_id", projectID), zap.Error(perr))
		return ""
	}
	logger.Info("分支无提交, 降级到默认分支",
		zap.Int("project_id", projectID),
		zap.String("branch", branch),
		zap.String("default_branch", project.DefaultBranch))

	commits, err = gl.ListCommits(projectID, project.DefaultBranch, 1)
	if err != nil || len(commits) == 0 {
		return ""
	}
	return commits[0].ID
}
