package api

import "time"

// UserInfo GitLab用户信息
type UserInfo struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	State     string `json:"state"`
	AvatarURL string `json:"avatar_url"`
	WebURL    string `json:"web_url"`
}

// GroupSummary 用户组摘要
type GroupSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// ProjectInfo 项目信息
type ProjectInfo struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Path          string `json:"path"`
	Namespace     string `json:"namespace"`
	Owner         string `json:"owner"` // 所有者用户名, fork列表时有值
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Visibility    string `json:"visibility"`
	WebURL        string `json:"web_url"`
}

// MemberSummary 项目成员摘要
type MemberSummary struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	AccessLevel int    `json:"access_level"`
}

// BranchSummary 分支摘要
type BranchSummary struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// CommitSummary 提交摘要
type CommitSummary struct {
	ID         string     `json:"id"`
	ShortID    string     `json:"short_id"`
	Message    string     `json:"message"`
	AuthorName string     `json:"author_name"`
	CreatedAt  *time.Time `json:"created_at"`
}

// CommentSummary 提交评论摘要
type CommentSummary struct {
	Note   string `json:"note"`
	Author string `json:"author"`
}

// PipelineSummary 流水线摘要
type PipelineSummary struct {
	ID        int        `json:"id"`
	Status    string     `json:"status"`
	Ref       string     `json:"ref"`
	SHA       string     `json:"sha"`
	WebURL    string     `json:"web_url"`
	CreatedAt *time.Time `json:"created_at"`
}

// TreeItem 仓库目录树条目
type TreeItem struct {
	Path string `json:"path"`
	Type string `json:"type"` // blob 或 tree
}

// RepoFile 仓库文件与内容
type RepoFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FileAction 提交动作类型
type FileAction string

const (
	FileCreate FileAction = "create"
	FileUpdate FileAction = "update"
)

// CommitAction 单个提交动作
type CommitAction struct {
	Action   FileAction `json:"action"`
	FilePath string     `json:"file_path"`
	Content  string     `json:"content"`
}

// TokenSpec 项目访问Token申请参数
type TokenSpec struct {
	Name      string    `json:"name"`
	Scopes    []string  `json:"scopes"`
	ExpiresAt time.Time `json:"expires_at"`
}
