package dto

import (
	"peertest/internal/core"
	"peertest/internal/pkg/git/api"
)

// CreateProjectRequest 创建(fork)项目请求
type CreateProjectRequest struct {
	ProjectID      int    `json:"projectid" binding:"required"`
	NewProjectName string `json:"new_project_name" binding:"required"`
}

// UpdateProjectRequest 更新项目请求: 向指定分支提交文件并触发同步
type UpdateProjectRequest struct {
	BranchName    string `json:"branch_name" binding:"required"`
	FilePath      string `json:"file_path" binding:"required"`
	CommitMessage string `json:"commit_message" binding:"required"`
	Content       string `json:"content" binding:"required"`
}

// ProjectInfo 项目记录响应
type ProjectInfo struct {
	ID                int                     `json:"id"`
	GitlabURL         string                  `json:"gitlaburl"`
	OriginalProjectID int                     `json:"original_project_id"`
	Namespace         string                  `json:"namespace"`
	Members           []api.MemberSummary     `json:"members"`
	Branches          []api.BranchSummary     `json:"branches"`
	Commits           []core.CommitLink       `json:"commits"`
	TestingProject    core.TestingProjectView `json:"testingproject"`
}

// BranchDetail 分支及其目录结构
type BranchDetail struct {
	Name  string                 `json:"name"`
	Files map[string]interface{} `json:"files"`
}

// ProjectDetail 远端视角的项目详情, 用于列表与检索
type ProjectDetail struct {
	Project        *api.ProjectInfo    `json:"project"`
	Branches       []BranchDetail      `json:"branches"`
	Commits        []api.CommitSummary `json:"commits"`
	TestingProject *ProjectDetail      `json:"testingproject,omitempty"`
}

// StatusResponse 服务状态响应
type StatusResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
