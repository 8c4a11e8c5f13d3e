package gitlab

import (
	"net/http"
	"time"

	"github.com/xanzy/go-gitlab"

	"peertest/internal/pkg/git/api"
	pkgErrors "peertest/pkg/responses"
)

// Provider GitLab网关实现, 绑定单个 (baseURL, token) 会话
type Provider struct {
	client *gitlab.Client
}

// NewProvider 建立GitLab会话
func NewProvider(baseURL, token string, timeout time.Duration) (*Provider, error) {
	if baseURL == "" {
		return nil, pkgErrors.New(pkgErrors.CodeBadRequest, "GitLab地址不能为空")
	}

	client, err := gitlab.NewClient(token,
		gitlab.WithBaseURL(baseURL),
		gitlab.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeRemoteError, "创建GitLab客户端失败", err)
	}

	return &Provider{client: client}, nil
}

// Connect 返回绑定超时的会话工厂, 供编排层按Token切换身份
func Connect(timeout time.Duration) api.Connector {
	return func(baseURL, token string) (api.Gateway, error) {
		p, err := NewProvider(baseURL, token, timeout)
		if err != nil {
			return nil, err
		}
		// 认证探测, 无效Token在这里暴露而不是在第一次业务调用时
		if _, err := p.CurrentUser(); err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
		}
		return p, nil
	}
}

// CurrentUser 已认证用户信息
func (p *Provider) CurrentUser() (*api.UserInfo, error) {
	user, resp, err := p.client.Users.CurrentUser()
	if err != nil {
		return nil, remoteError(resp, err)
	}

	return &api.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		State:     user.State,
		AvatarURL: user.AvatarURL,
		WebURL:    user.WebURL,
	}, nil
}

// ListGroups 当前用户可见的用户组
func (p *Provider) ListGroups() ([]api.GroupSummary, error) {
	groups, resp, err := p.client.Groups.ListGroups(&gitlab.ListGroupsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.GroupSummary, 0, len(groups))
	for _, g := range groups {
		result = append(result, api.GroupSummary{ID: g.ID, Name: g.Name, Path: g.Path})
	}
	return result, nil
}

// GetProject 获取项目
func (p *Provider) GetProject(projectID int) (*api.ProjectInfo, error) {
	project, resp, err := p.client.Projects.GetProject(projectID, &gitlab.GetProjectOptions{})
	if err != nil {
		return nil, remoteError(resp, err)
	}
	return toProjectInfo(project), nil
}

// SearchProjects 按名称搜索可见项目
func (p *Provider) SearchProjects(name string) ([]api.ProjectInfo, error) {
	projects, resp, err := p.client.Projects.ListProjects(&gitlab.ListProjectsOptions{
		Search:      gitlab.Ptr(name),
		ListOptions: gitlab.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.ProjectInfo, 0, len(projects))
	for _, project := range projects {
		result = append(result, *toProjectInfo(project))
	}
	return result, nil
}

// CreateProject 建新项目
func (p *Provider) CreateProject(name, description, visibility string) (*api.ProjectInfo, error) {
	opt := &gitlab.CreateProjectOptions{
		Name:        gitlab.Ptr(name),
		Description: gitlab.Ptr(description),
	}
	if visibility != "" {
		opt.Visibility = gitlab.Ptr(gitlab.VisibilityValue(visibility))
	}

	project, resp, err := p.client.Projects.CreateProject(opt)
	if err != nil {
		return nil, remoteError(resp, err)
	}
	return toProjectInfo(project), nil
}

// ForkProject fork项目到指定命名空间
func (p *Provider) ForkProject(projectID int, name, path, namespace string) (*api.ProjectInfo, error) {
	opt := &gitlab.ForkProjectOptions{}
	if name != "" {
		opt.Name = gitlab.Ptr(name)
	}
	if path != "" {
		opt.Path = gitlab.Ptr(path)
	}
	if namespace != "" {
		opt.NamespacePath = gitlab.Ptr(namespace)
	}

	forked, resp, err := p.client.Projects.ForkProject(projectID, opt)
	if err != nil {
		return nil, remoteError(resp, err)
	}

	// fork是异步的, 重新GET拿到完整属性
	project, resp, err := p.client.Projects.GetProject(forked.ID, &gitlab.GetProjectOptions{})
	if err != nil {
		return nil, remoteError(resp, err)
	}
	return toProjectInfo(project), nil
}

// DeleteProject 删除项目
func (p *Provider) DeleteProject(projectID int) error {
	resp, err := p.client.Projects.DeleteProject(projectID, nil)
	if err != nil {
		return remoteError(resp, err)
	}
	return nil
}

// ListMembers 项目成员
func (p *Provider) ListMembers(projectID int) ([]api.MemberSummary, error) {
	members, resp, err := p.client.ProjectMembers.ListAllProjectMembers(projectID, &gitlab.ListProjectMembersOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.MemberSummary, 0, len(members))
	for _, m := range members {
		result = append(result, api.MemberSummary{
			ID:          m.ID,
			Username:    m.Username,
			Name:        m.Name,
			AccessLevel: int(m.AccessLevel),
		})
	}
	return result, nil
}

// ListForks 项目的fork列表
func (p *Provider) ListForks(projectID int) ([]api.ProjectInfo, error) {
	forks, resp, err := p.client.Projects.ListProjectForks(projectID, &gitlab.ListProjectsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.ProjectInfo, 0, len(forks))
	for _, fork := range forks {
		info := toProjectInfo(fork)
		if fork.Owner != nil {
			info.Owner = fork.Owner.Username
		}
		result = append(result, *info)
	}
	return result, nil
}

// ListBranches 项目分支
func (p *Provider) ListBranches(projectID int) ([]api.BranchSummary, error) {
	branches, resp, err := p.client.Branches.ListBranches(projectID, &gitlab.ListBranchesOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.BranchSummary, 0, len(branches))
	for _, b := range branches {
		result = append(result, api.BranchSummary{Name: b.Name, Default: b.Default})
	}
	return result, nil
}

// CreateBranch 从ref创建分支
func (p *Provider) CreateBranch(projectID int, name, ref string) error {
	_, resp, err := p.client.Branches.CreateBranch(projectID, &gitlab.CreateBranchOptions{
		Branch: gitlab.Ptr(name),
		Ref:    gitlab.Ptr(ref),
	})
	if err != nil {
		return remoteError(resp, err)
	}
	return nil
}

// GetFile 读取分支上的文件内容
func (p *Provider) GetFile(projectID int, path, ref string) (string, error) {
	raw, resp, err := p.client.RepositoryFiles.GetRawFile(projectID, path, &gitlab.GetRawFileOptions{
		Ref: gitlab.Ptr(ref),
	})
	if err != nil {
		return "", remoteError(resp, err)
	}
	return string(raw), nil
}

// ListTree 列出目录树
func (p *Provider) ListTree(projectID int, ref, path string, recursive bool) ([]api.TreeItem, error) {
	opt := &gitlab.ListTreeOptions{
		Ref:         gitlab.Ptr(ref),
		Recursive:   gitlab.Ptr(recursive),
		ListOptions: gitlab.ListOptions{PerPage: 100},
	}
	if path != "" {
		opt.Path = gitlab.Ptr(path)
	}

	var result []api.TreeItem
	for {
		nodes, resp, err := p.client.Repositories.ListTree(projectID, opt)
		if err != nil {
			return nil, remoteError(resp, err)
		}
		for _, node := range nodes {
			result = append(result, api.TreeItem{Path: node.Path, Type: node.Type})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return result, nil
}

// CreateCommit 提交一组文件动作
func (p *Provider) CreateCommit(projectID int, branch, message string, actions []api.CommitAction) (string, error) {
	commitActions := make([]*gitlab.CommitActionOptions, 0, len(actions))
	for _, a := range actions {
		commitActions = append(commitActions, &gitlab.CommitActionOptions{
			Action:   gitlab.Ptr(gitlab.FileActionValue(a.Action)),
			FilePath: gitlab.Ptr(a.FilePath),
			Content:  gitlab.Ptr(a.Content),
		})
	}

	commit, resp, err := p.client.Commits.CreateCommit(projectID, &gitlab.CreateCommitOptions{
		Branch:        gitlab.Ptr(branch),
		CommitMessage: gitlab.Ptr(message),
		Actions:       commitActions,
	})
	if err != nil {
		return "", remoteError(resp, err)
	}
	return commit.ID, nil
}

// ListCommits 按ref列提交, 最新在前
func (p *Provider) ListCommits(projectID int, ref string, limit int) ([]api.CommitSummary, error) {
	opt := &gitlab.ListCommitsOptions{
		ListOptions: gitlab.ListOptions{Page: 1, PerPage: limit},
	}
	if ref != "" {
		opt.RefName = gitlab.Ptr(ref)
	}

	commits, resp, err := p.client.Commits.ListCommits(projectID, opt)
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.CommitSummary, 0, len(commits))
	for _, c := range commits {
		result = append(result, api.CommitSummary{
			ID:         c.ID,
			ShortID:    c.ShortID,
			Message:    c.Message,
			AuthorName: c.AuthorName,
			CreatedAt:  c.CreatedAt,
		})
	}
	return result, nil
}

// PostCommitComment 在提交上发评论
func (p *Provider) PostCommitComment(projectID int, sha, note string) error {
	_, resp, err := p.client.Commits.PostCommitComment(projectID, sha, &gitlab.PostCommitCommentOptions{
		Note: gitlab.Ptr(note),
	})
	if err != nil {
		return remoteError(resp, err)
	}
	return nil
}

// ListCommitComments 列出提交上的评论
func (p *Provider) ListCommitComments(projectID int, sha string) ([]api.CommentSummary, error) {
	comments, resp, err := p.client.Commits.GetCommitComments(projectID, sha, &gitlab.GetCommitCommentsOptions{
		PerPage: 100,
	})
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.CommentSummary, 0, len(comments))
	for _, c := range comments {
		result = append(result, api.CommentSummary{
			Note:   c.Note,
			Author: c.Author.Username,
		})
	}
	return result, nil
}

// CreateProjectAccessToken 创建项目访问Token
func (p *Provider) CreateProjectAccessToken(projectID int, spec api.TokenSpec) (string, error) {
	expires := gitlab.ISOTime(spec.ExpiresAt)
	token, resp, err := p.client.ProjectAccessTokens.CreateProjectAccessToken(projectID, &gitlab.CreateProjectAccessTokenOptions{
		Name:        gitlab.Ptr(spec.Name),
		Scopes:      gitlab.Ptr(spec.Scopes),
		ExpiresAt:   &expires,
		AccessLevel: gitlab.Ptr(gitlab.MaintainerPermissions),
	})
	if err != nil {
		return "", remoteError(resp, err)
	}
	return token.Token, nil
}

// ListPipelines 项目流水线列表
func (p *Provider) ListPipelines(projectID int) ([]api.PipelineSummary, error) {
	pipelines, resp, err := p.client.Pipelines.ListProjectPipelines(projectID, &gitlab.ListProjectPipelinesOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, remoteError(resp, err)
	}

	result := make([]api.PipelineSummary, 0, len(pipelines))
	for _, pl := range pipelines {
		result = append(result, api.PipelineSummary{
			ID:        pl.ID,
			Status:    pl.Status,
			Ref:       pl.Ref,
			SHA:       pl.SHA,
			WebURL:    pl.WebURL,
			CreatedAt: pl.CreatedAt,
		})
	}
	return result, nil
}

// GetPipeline 流水线详情
func (p *Provider) GetPipeline(projectID, pipelineID int) (*api.PipelineSummary, error) {
	pl, resp, err := p.client.Pipelines.GetPipeline(projectID, pipelineID)
	if err != nil {
		return nil, remoteError(resp, err)
	}

	return &api.PipelineSummary{
		ID:        pl.ID,
		Status:    pl.Status,
		Ref:       pl.Ref,
		SHA:       pl.SHA,
		WebURL:    pl.WebURL,
		CreatedAt: pl.CreatedAt,
	}, nil
}

// toProjectInfo 转换go-gitlab项目对象
func toProjectInfo(project *gitlab.Project) *api.ProjectInfo {
	info := &api.ProjectInfo{
		ID:            project.ID,
		Name:          project.Name,
		Path:          project.Path,
		Description:   project.Description,
		DefaultBranch: project.DefaultBranch,
		Visibility:    string(project.Visibility),
		WebURL:        project.WebURL,
	}
	if project.Namespace != nil {
		info.Namespace = project.Namespace.Path
	}
	return info
}

// remoteError 把远端404收敛为 api.ErrNotFound, 其余保留原始错误
func remoteError(resp *gitlab.Response, err error) error {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return api.ErrNotFound
	}
	return err
}
