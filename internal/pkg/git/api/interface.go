package api

import "errors"

// ErrNotFound 远端资源不存在(文件/项目/分支)
// 网关实现把404收敛为该错误, 上层用它判断 create/update 语义
var ErrNotFound = errors.New("gitlab: resource not found")

// Gateway GitLab能力网关
// 每个实例绑定一个 (baseURL, token) 会话; 编排层按需用不同Token重建会话
type Gateway interface {
	// CurrentUser 已认证用户信息, 同时作为Token有效性探测
	CurrentUser() (*UserInfo, error)

	// ListGroups 当前用户可见的用户组
	ListGroups() ([]GroupSummary, error)

	// GetProject 获取项目
	GetProject(projectID int) (*ProjectInfo, error)

	// SearchProjects 按名称搜索可见项目
	SearchProjects(name string) ([]ProjectInfo, error)

	// CreateProject 建新项目
	CreateProject(name, description, visibility string) (*ProjectInfo, error)

	// ForkProject 把项目fork到指定命名空间; name/path/namespace为空时使用远端默认值
	ForkProject(projectID int, name, path, namespace string) (*ProjectInfo, error)

	// DeleteProject 删除项目
	DeleteProject(projectID int) error

	// ListMembers 项目成员
	ListMembers(projectID int) ([]MemberSummary, error)

	// ListForks 项目的fork列表(Owner字段为fork所有者用户名)
	ListForks(projectID int) ([]ProjectInfo, error)

	// ListBranches 项目分支
	ListBranches(projectID int) ([]BranchSummary, error)

	// CreateBranch 从ref创建分支
	CreateBranch(projectID int, name, ref string) error

	// GetFile 读取某分支上的文件内容; 不存在时返回 ErrNotFound
	GetFile(projectID int, path, ref string) (string, error)

	// ListTree 列出目录树, recursive时展开全部子目录
	ListTree(projectID int, ref, path string, recursive bool) ([]TreeItem, error)

	// CreateCommit 提交一组文件动作, 返回新提交id
	CreateCommit(projectID int, branch, message string, actions []CommitAction) (string, error)

	// ListCommits 按ref列提交, 最新在前, limit限制数量
	ListCommits(projectID int, ref string, limit int) ([]CommitSummary, error)

	// PostCommitComment 在提交上发评论
	PostCommitComment(projectID int, sha, note string) error

	// ListCommitComments 列出提交上的评论
	ListCommitComments(projectID int, sha string) ([]CommentSummary, error)

	// CreateProjectAccessToken 创建项目访问Token, 返回Token明文
	CreateProjectAccessToken(projectID int, spec TokenSpec) (string, error)

	// ListPipelines 项目流水线列表
	ListPipelines(projectID int) ([]PipelineSummary, error)

	// GetPipeline 流水线详情
	GetPipeline(projectID, pipelineID int) (*PipelineSummary, error)
}

// Connector 会话工厂: 用 (baseURL, token) 建立已认证的网关会话
// 编排层在一次同步里需要反复切换身份, 通过它而不是具体实现建会话
type Connector func(baseURL, token string) (Gateway, error)
