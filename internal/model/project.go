package model

import (
	"time"

	"gorm.io/datatypes"

	"peertest/internal/core"
	"peertest/internal/pkg/git/api"
)

// Project 本地项目记录, 主键直接使用GitLab项目id
// members/branches/commits是读取时刷新的非权威快照; commits只增不改,
// 新的提交配对追加在已有配对之后
// AccessToken与TestingProject里的Token均为AES加密存储
type Project struct {
	ID                int                                         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	GitlabURL         string                                      `gorm:"size:255;not null" json:"gitlaburl"`
	OriginalProjectID int                                         `gorm:"not null;index" json:"original_project_id"`
	Namespace         string                                      `gorm:"size:255;not null;index" json:"namespace"`
	AccessToken       string                                      `gorm:"size:512;not null" json:"-"`
	Members           datatypes.JSONType[[]api.MemberSummary]     `json:"members"`
	Branches          datatypes.JSONType[[]api.BranchSummary]     `json:"branches"`
	Commits           datatypes.JSONType[[]core.CommitLink]       `json:"commits"`
	TestingProject    datatypes.JSONType[core.TestingProjectView] `json:"testingproject"`
	CreatedAt         time.Time                                   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time                                   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}

// AppendCommitLinks 追加新的提交配对, 已有配对保持不变
func (p *Project) AppendCommitLinks(links ...core.CommitLink) {
	merged := append(p.Commits.Data(), links...)
	p.Commits = datatypes.NewJSONType(merged)
}
