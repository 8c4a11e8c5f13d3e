package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"peertest/internal/pkg/git/api"
)

// recordedCommit 一次CreateCommit调用的快照
type recordedCommit struct {
	ProjectID int
	Branch    string
	Message   string
	Actions   []api.CommitAction
}

// mockProject 内存中的项目状态
type mockProject struct {
	info     api.ProjectInfo
	members  []api.MemberSummary
	branches []string                     // 按创建顺序
	files    map[string]map[string]string // 分支 -> 路径 -> 内容
	commits  map[string][]string          // 分支 -> 提交id, 最新在前
	comments map[string][]api.CommentSummary
}

// MockGateway 模拟GitLab网关, 全部状态在内存中
type MockGateway struct {
	mu sync.Mutex

	user     *api.UserInfo
	projects map[int]*mockProject
	nextID   int

	commitLog    []recordedCommit // 所有CreateCommit调用
	commentCalls int              // PostCommitComment调用次数
	tokenCalls   []api.TokenSpec

	commentError    error // PostCommitComment 是否返回错误
	branchListError error // ListBranches 是否返回错误
}

func NewMockGateway(username string) *MockGateway {
	return &MockGateway{
		user:     &api.UserInfo{ID: 1, Username: username, Name: username},
		projects: make(map[int]*mockProject),
		nextID:   100,
	}
}

// === 配置方法 ===

func (m *MockGateway) SetCommentError(err error) *MockGateway {
	m.commentError = err
	return m
}

func (m *MockGateway) SetBranchListError(err error) *MockGateway {
	m.branchListError = err
	return m
}

// AddProject 预置一个项目, files为 分支->路径->内容
func (m *MockGateway) AddProject(id int, name, namespace string, files map[string]map[string]string) *MockGateway {
	p := &mockProject{
		info: api.ProjectInfo{
			ID: id, Name: name, Path: strings.ToLower(name),
			Namespace: namespace, DefaultBranch: "main",
		},
		files:    make(map[string]map[string]string),
		commits:  make(map[string][]string),
		comments: make(map[string][]api.CommentSummary),
	}
	for branch, content := range files {
		p.branches = append(p.branches, branch)
		copied := make(map[string]string, len(content))
		for path, body := range content {
			copied[path] = body
		}
		p.files[branch] = copied
	}
	sort.Strings(p.branches)
	m.projects[id] = p
	return m
}

// AddCommits 预置某分支的提交id, 最新在前
func (m *MockGateway) AddCommits(projectID int, branch string, ids ...string) *MockGateway {
	m.projects[projectID].commits[branch] = ids
	return m
}

// Connector 不区分Token的会话工厂, 所有会话共享同一份状态
func (m *MockGateway) Connector() api.Connector {
	return func(baseURL, token string) (api.Gateway, error) {
		return m, nil
	}
}

// CommitMessages 按顺序返回提交消息
func (m *MockGateway) CommitMessages() []string {
	msgs := make([]string, 0, len(m.commitLog))
	for _, c := range m.commitLog {
		msgs = append(msgs, c.Message)
	}
	return msgs
}

// BranchFiles 某分支当前的文件表
func (m *MockGateway) BranchFiles(projectID int, branch string) map[string]string {
	return m.projects[projectID].files[branch]
}

// CommentCalls 远端评论接口调用次数
func (m *MockGateway) CommentCalls() int {
	return m.commentCalls
}

// === 接口实现 ===

func (m *MockGateway) CurrentUser() (*api.UserInfo, error) {
	return m.user, nil
}

func (m *MockGateway) ListGroups() ([]api.GroupSummary, error) {
	return nil, nil
}

func (m *MockGateway) GetProject(projectID int) (*api.ProjectInfo, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return nil, api.ErrNotFound
	}
	info := p.info
	return &info, nil
}

func (m *MockGateway) SearchProjects(name string) ([]api.ProjectInfo, error) {
	var result []api.ProjectInfo
	for _, p := range m.projects {
		if strings.Contains(p.info.Name, name) {
			result = append(result, p.info)
		}
	}
	return result, nil
}

func (m *MockGateway) CreateProject(name, description, visibility string) (*api.ProjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	m.AddProject(id, name, m.user.Username, map[string]map[string]string{"main": {}})
	m.projects[id].info.Visibility = visibility
	m.projects[id].info.Description = description
	info := m.projects[id].info
	return &info, nil
}

func (m *MockGateway) ForkProject(projectID int, name, path, namespace string) (*api.ProjectInfo, error) {
	src, ok := m.projects[projectID]
	if !ok {
		return nil, api.ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	forkName := name
	if forkName == "" {
		forkName = src.info.Name
	}
	m.AddProject(id, forkName, namespace, src.files)
	info := m.projects[id].info
	return &info, nil
}

func (m *MockGateway) DeleteProject(projectID int) error {
	if _, ok := m.projects[projectID]; !ok {
		return api.ErrNotFound
	}
	delete(m.projects, projectID)
	return nil
}

func (m *MockGateway) ListMembers(projectID int) ([]api.MemberSummary, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return nil, api.ErrNotFound
	}
	return p.members, nil
}

func (m *MockGateway) ListForks(projectID int) ([]api.ProjectInfo, error) {
	return nil, nil
}

func (m *MockGateway) ListBranches(projectID int) ([]api.BranchSummary, error) {
	if m.branchListError != nil {
		return nil, m.branchListError
	}
	p, ok := m.projects[projectID]
	if !ok {
		return nil, api.ErrNotFound
	}
	result := make([]api.BranchSummary, 0, len(p.branches))
	for _, name := range p.branches {
		result = append(result, api.BranchSummary{Name: name, Default: name == p.info.DefaultBranch})
	}
	return result, nil
}

func (m *MockGateway) CreateBranch(projectID int, name, ref string) error {
	p, ok := m.projects[projectID]
	if !ok {
		return api.ErrNotFound
	}
	base, ok := p.files[ref]
	if !ok {
		return api.ErrNotFound
	}
	copied := make(map[string]string, len(base))
	for path, body := range base {
		copied[path] = body
	}
	p.files[name] = copied
	p.branches = append(p.branches, name)
	return nil
}

func (m *MockGateway) GetFile(projectID int, path, ref string) (string, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return "", api.ErrNotFound
	}
	content, ok := p.files[ref][path]
	if !ok {
		return "", api.ErrNotFound
	}
	return content, nil
}

// ListTree 从扁平路径表推导一层目录结构
func (m *MockGateway) ListTree(projectID int, ref, path string, recursive bool) ([]api.TreeItem, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return nil, api.ErrNotFound
	}

	prefix := ""
	if path != "" {
		prefix = path + "/"
	}
	seen := make(map[string]bool)
	var items []api.TreeItem
	for filePath := range p.files[ref] {
		if !strings.HasPrefix(filePath, prefix) {
			continue
		}
		rest := strings.TrimPrefix(filePath, prefix)
		if idx := strings.Index(rest, "/"); idx >= 0 {
			dir := prefix + rest[:idx]
			if !seen[dir] {
				seen[dir] = true
				items = append(items, api.TreeItem{Path: dir, Type: "tree"})
			}
		} else {
			items = append(items, api.TreeItem{Path: filePath, Type: "blob"})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, nil
}

func (m *MockGateway) CreateCommit(projectID int, branch, message string, actions []api.CommitAction) (string, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return "", api.ErrNotFound
	}
	if _, ok := p.files[branch]; !ok {
		return "", fmt.Errorf("branch %s not found", branch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range actions {
		p.files[branch][a.FilePath] = a.Content
	}
	m.nextID++
	commitID := fmt.Sprintf("c%d", m.nextID)
	p.commits[branch] = append([]string{commitID}, p.commits[branch]...)
	m.commitLog = append(m.commitLog, recordedCommit{
		ProjectID: projectID, Branch: branch, Message: message, Actions: actions,
	})
	return commitID, nil
}

func (m *MockGateway) ListCommits(projectID int, ref string, limit int) ([]api.CommitSummary, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return nil, api.ErrNotFound
	}
	ids := p.commits[ref]
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	result := make([]api.CommitSummary, 0, len(ids))
	for _, id := range ids {
		result = append(result, api.CommitSummary{ID: id})
	}
	return result, nil
}

func (m *MockGateway) PostCommitComment(projectID int, sha, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentCalls++
	if m.commentError != nil {
		return m.commentError
	}
	p, ok := m.projects[projectID]
	if !ok {
		return api.ErrNotFound
	}
	p.comments[sha] = append(p.comments[sha], api.CommentSummary{Note: note, Author: m.user.Username})
	return nil
}

func (m *MockGateway) ListCommitComments(projectID int, sha string) ([]api.CommentSummary, error) {
	p, ok := m.projects[projectID]
	if !ok {
		return nil, api.ErrNotFound
	}
	return p.comments[sha], nil
}

func (m *MockGateway) CreateProjectAccessToken(projectID int, spec api.TokenSpec) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenCalls = append(m.tokenCalls, spec)
	return fmt.Sprintf("glpat-mock-%d", len(m.tokenCalls)), nil
}

func (m *MockGateway) ListPipelines(projectID int) ([]api.PipelineSummary, error) {
	return nil, nil
}

func (m *MockGateway) GetPipeline(projectID, pipelineID int) (*api.PipelineSummary, error) {
	return &api.PipelineSummary{ID: pipelineID, Status: "success"}, nil
}
