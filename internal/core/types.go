package core

import (
	"peertest/internal/pkg/git/api"
)

// TestingProjectView 配套测试项目视图
type TestingProjectView struct {
	ID          int    `json:"id"`
	AccessToken string `json:"gitlabaccesstoken"`
}

// CommitLink fork项目提交与测试项目提交的配对
type CommitLink struct {
	CommitID        string `json:"commit_id"`
	TestingCommitID string `json:"testing_commit_id"` // 对应侧无提交时为空串
}

// ProjectView 编排层消费的项目视图, 由服务层从持久化记录组装
// AccessToken为明文Token, 解密在进入编排层之前完成
type ProjectView struct {
	ID             int                `json:"id"`
	Namespace      string             `json:"namespace"`
	AccessToken    string             `json:"gitlabaccesstoken"`
	TestingProject TestingProjectView `json:"testingproject"`
	Commits        []CommitLink       `json:"commits"`
}

// ProvisionResult Fork+配套项目创建的完整结果
type ProvisionResult struct {
	ID                int                 `json:"id"`
	OriginalProjectID int                 `json:"original_project_id"`
	Namespace         string              `json:"namespace"`
	AccessToken       string              `json:"gitlabaccesstoken"`
	Members           []api.MemberSummary `json:"members"`
	Branches          []api.BranchSummary `json:"branches"`
	TestingProject    TestingProjectView  `json:"testingproject"`
}

// PipelineLinkage 流水线文件注入结果
type PipelineLinkage struct {
	CommitID  string `json:"id"`
	Branch    string `json:"branch"`
	BotToken  string `json:"peerbottoken"`
	ProjectID int    `json:"project_id"`
}
