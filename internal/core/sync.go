package core

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"peertest/internal/pkg/git/api"
	"peertest/internal/pkg/logger"
	"peertest/pkg/constants"
	pkgErrors "peertest/pkg/responses"
)

// 同步时在已存在分支上重提交的固定目录
var syncFolders = []string{"src", "test"}

// Synchronize 同步所有fork项目的测试分支
// 对每个命名空间在forkers之内的项目: 按 用户×槽位 的全叉积计算期望分支集,
// 缺失的从main建出并用原项目文件播种, 已存在的重提交src/test目录内容,
// 两种路径最后都重新注入流水线文件
// 返回 项目id -> 本次产生的提交id列表
func (e *Engine) Synchronize(baseURL string, projects []ProjectView, actingUsername string, forkers []string) (map[int][]string, error) {
	result := make(map[int][]string, len(projects))

	for _, project := range projects {
		commits := []string{}
		if lo.Contains(forkers, project.Namespace) {
			ids, err := e.syncProject(baseURL, project, actingUsername, forkers)
			if err != nil {
				return nil, err
			}
			commits = ids
		}
		result[project.ID] = commits
	}
	return result, nil
}

// syncProject 同步单个项目的测试分支矩阵
func (e *Engine) syncProject(baseURL string, project ProjectView, actingUsername string, forkers []string) ([]string, error) {
	glt, err := e.session(baseURL, project.TestingProject.AccessToken)
	if err != nil {
		return nil, err
	}

	// n个fork用户产生n²个期望分支: 每个用户在每个槽位各占一个
	expected := expectedBranches(forkers)

	branches, err := glt.ListBranches(project.TestingProject.ID)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}
	existing := lo.FilterMap(branches, func(b api.BranchSummary, _ int) (string, bool) {
		return b.Name, !lo.Contains(e.cfg.ReservedBranches, b.Name)
	})

	testingProject, err := glt.GetProject(project.TestingProject.ID)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}

	var commits []string
	for _, branchName := range expected {
		var ids []string
		if !lo.Contains(existing, branchName) {
			ids = e.seedBranch(baseURL, glt, project, branchName)
		} else {
			ids = e.refreshBranch(glt, project.TestingProject.ID, testingProject.Name, branchName, actingUsername)
		}
		commits = append(commits, ids...)

		e.InjectPipelineFiles(baseURL, branchName, project.TestingProject.AccessToken, project.TestingProject.ID)
	}
	return commits, nil
}

// seedBranch 从main建出新分支并用原项目的参考分支文件播种
// 非test路径的文件原样写入; test路径不复制真实内容, 统一落一个固定占位文件
func (e *Engine) seedBranch(baseURL string, glt api.Gateway, project ProjectView, branchName string) []string {
	if err := glt.CreateBranch(project.TestingProject.ID, branchName, constants.ReservedBranch); err != nil {
		// 并发同步可能抢先建出同名分支, 记录后继续走播种
		logger.Warn("创建分支失败",
			zap.Int("project_id", project.TestingProject.ID),
			zap.String("branch", branchName),
			zap.Error(err))
	}

	// 用原项目自己的Token读取参考分支
	glp, err := e.session(baseURL, project.AccessToken)
	if err != nil {
		logger.Warn("播种分支失败: 原项目认证错误", zap.Int("project_id", project.ID), zap.Error(err))
		return nil
	}
	branches, err := glp.ListBranches(project.ID)
	if err != nil || len(branches) == 0 {
		logger.Warn("播种分支失败: 原项目无可用分支", zap.Int("project_id", project.ID), zap.Error(err))
		return nil
	}
	refBranch := branches[0].Name

	files, err := e.filesInBranch(glp, project.ID, refBranch, "")
	if err != nil {
		logger.Warn("播种分支失败: 枚举文件错误", zap.Int("project_id", project.ID), zap.Error(err))
		return nil
	}

	var commits []string
	for _, file := range files {
		var commitID string
		var commitErr error
		if !strings.HasPrefix(file.Path, "test") {
			commitID, commitErr = e.CommitToBranch(glt, project.TestingProject.ID, branchName,
				file.Path, fmt.Sprintf("Initialised file: %s in %s", file.Path, branchName), file.Content)
		} else {
			// 策略: 不复制真实测试内容, 只落固定占位文件
			commitID, commitErr = e.CommitToBranch(glt, project.TestingProject.ID, branchName,
				constants.TestPlaceholderPath, fmt.Sprintf("Add %s", constants.TestPlaceholderPath), constants.TestPlaceholderBody)
		}
		if commitErr != nil {
			logger.Warn("播种文件提交失败",
				zap.String("branch", branchName),
				zap.String("path", file.Path),
				zap.Error(commitErr))
			continue
		}
		commits = append(commits, commitID)
	}
	return commits
}

// refreshBranch 重提交已存在分支上src与test目录的当前内容
// 操作者用户名不在测试项目名里时, test目录也按src处理
func (e *Engine) refreshBranch(glt api.Gateway, testingProjectID int, testingProjectName, branchName, actingUsername string) []string {
	var commits []string
	for _, folder := range syncFolders {
		if !strings.Contains(testingProjectName, actingUsername) {
			folder = "src"
		}

		files, err := e.filesInBranch(glt, testingProjectID, branchName, folder)
		if err != nil {
			logger.Warn("更新分支失败: 枚举文件错误",
				zap.Int("project_id", testingProjectID),
				zap.String("branch", branchName),
				zap.String("folder", folder),
				zap.Error(err))
			continue
		}
		for _, file := range files {
			commitID, err := e.CommitToBranch(glt, testingProjectID, branchName,
				file.Path, fmt.Sprintf("Updated file: %s in %s", file.Path, branchName), file.Content)
			if err != nil {
				logger.Warn("更新文件提交失败",
					zap.String("branch", branchName),
					zap.String("path", file.Path),
					zap.Error(err))
				continue
			}
			commits = append(commits, commitID)
		}
	}
	return commits
}

// expectedBranches 期望分支名全集: 每个用户名与 [0,n) 的每个槽位拼接, n为用户数
func expectedBranches(forkers []string) []string {
	return lo.FlatMap(forkers, func(user string, _ int) []string {
		names := make([]string, 0, len(forkers))
		for i := range forkers {
			names = append(names, fmt.Sprintf("%sp%d", user, i))
		}
		return names
	})
}
