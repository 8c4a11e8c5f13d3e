package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"peertest/internal/core"
	"peertest/internal/dto"
	"peertest/internal/model"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/crypto"
	"peertest/internal/pkg/git/api"
	"peertest/internal/pkg/logger"
	"peertest/internal/repository"
	"peertest/pkg/constants"
	pkgErrors "peertest/pkg/responses"
)

// unittestTemplate 更新项目时追加到提交内容末尾的单测骨架
const unittestTemplate = `
import unittest
from src.main import hello_world

class TestMain(unittest.TestCase):
    def test_hello_world(self):
        self.assertEqual(hello_world(), 'Hello, World!')

if __name__ == '__main__':
    unittest.main()
`

type ProjectService interface {
	Create(userID int64, req *dto.CreateProjectRequest) (*dto.ProjectInfo, error)
	Retrieve(userID int64, projectID int) (*dto.ProjectDetail, error)
	List(userID int64) ([]*dto.ProjectDetail, error)
	Update(userID int64, projectID int, req *dto.UpdateProjectRequest) error
	Delete(userID int64, projectID int) error
	SynchronizeAll() error
}

type projectService struct {
	cfg         *config.Config
	engine      *core.Engine
	connect     api.Connector
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

func NewProjectService(
	cfg *config.Config,
	engine *core.Engine,
	connect api.Connector,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
) ProjectService {
	return &projectService{
		cfg:         cfg,
		engine:      engine,
		connect:     connect,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create fork项目并完成全套初始化
// fork+配套测试项目 -> 对当前所有fork用户同步分支 -> 交叉记录最新提交 -> 落库
func (s *projectService) Create(userID int64, req *dto.CreateProjectRequest) (*dto.ProjectInfo, error) {
	baseURL, token, username, err := s.gitlabIdentity(userID)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.ForkAndProvision(baseURL, token, req.ProjectID, req.NewProjectName)
	if err != nil {
		return nil, err
	}

	gl, err := s.connect(baseURL, token)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
	}
	forkers, err := s.forkedUsernames(gl, req.ProjectID)
	if err != nil {
		logger.Warn("获取fork用户列表失败", zap.Int("project_id", req.ProjectID), zap.Error(err))
	}

	// 新项目连同同一GitLab实例下已有的项目一起同步
	views, err := s.projectViews(baseURL)
	if err != nil {
		return nil, err
	}
	newView := core.ProjectView{
		ID:             result.ID,
		Namespace:      result.Namespace,
		AccessToken:    result.AccessToken,
		TestingProject: result.TestingProject,
	}
	views = append(views, newView)

	if _, err := s.engine.Synchronize(baseURL, views, username, forkers); err != nil {
		return nil, err
	}

	link := s.engine.ReconcileLatestCommits(gl, result.TestingProject.ID, result.ID,
		constants.ReservedBranch, username+"p0")

	record, err := s.toModel(result, baseURL, link)
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(record); err != nil {
		return nil, err
	}

	return &dto.ProjectInfo{
		ID:                result.ID,
		GitlabURL:         baseURL,
		OriginalProjectID: result.OriginalProjectID,
		Namespace:         result.Namespace,
		Members:           result.Members,
		Branches:          result.Branches,
		Commits:           []core.CommitLink{link},
		TestingProject:    result.TestingProject,
	}, nil
}

// Retrieve 远端视角检索项目及其配套测试项目
// 测试项目紧随主项目创建, 按相邻id探测: 先试 id+1, 失败再试 id-1 并交换角色
func (s *projectService) Retrieve(userID int64, projectID int) (*dto.ProjectDetail, error) {
	baseURL, token, _, err := s.gitlabIdentity(userID)
	if err != nil {
		return nil, err
	}
	gl, err := s.connect(baseURL, token)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
	}

	detail, err := s.buildProjectDetail(gl, projectID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, err
	}

	if testing, err := s.buildProjectDetail(gl, projectID+1); err == nil {
		detail.TestingProject = testing
		return detail, nil
	}
	if main, err := s.buildProjectDetail(gl, projectID-1); err == nil {
		main.TestingProject = detail
		return main, nil
	}
	return nil, pkgErrors.New(pkgErrors.CodeNotFound, "测试项目不存在")
}

// List 列出全部项目记录, 每条都带远端分支结构与提交
func (s *projectService) List(userID int64) ([]*dto.ProjectDetail, error) {
	baseURL, token, _, err := s.gitlabIdentity(userID)
	if err != nil {
		return nil, err
	}
	gl, err := s.connect(baseURL, token)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
	}

	records, err := s.projectRepo.List()
	if err != nil {
		return nil, err
	}

	details := make([]*dto.ProjectDetail, 0, len(records))
	for _, record := range records {
		detail, err := s.buildProjectDetail(gl, record.ID)
		if err != nil {
			logger.Warn("拉取项目详情失败", zap.Int("project_id", record.ID), zap.Error(err))
			continue
		}
		if testing, err := s.buildProjectDetail(gl, record.TestingProject.Data().ID); err == nil {
			detail.TestingProject = testing
		} else {
			logger.Warn("拉取测试项目详情失败",
				zap.Int("project_id", record.TestingProject.Data().ID),
				zap.Error(err))
		}
		details = append(details, detail)
	}
	return details, nil
}

// Update 向项目分支提交文件内容并向全矩阵传播
// 提交消息追加 [ci skip] 防递归, 内容末尾追加固定单测骨架,
// 之后重新同步所有同伴分支, 并把新产生的提交配对追加进记录
func (s *projectService) Update(userID int64, projectID int, req *dto.UpdateProjectRequest) error {
	baseURL, token, username, err := s.gitlabIdentity(userID)
	if err != nil {
		return err
	}
	record, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}

	gl, err := s.connect(baseURL, token)
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
	}

	message := req.CommitMessage + constants.CISkipSuffix
	content := req.Content + unittestTemplate
	commitID, err := s.engine.CommitToBranch(gl, projectID, req.BranchName, req.FilePath, message, content)
	if err != nil {
		return err
	}

	forkers, err := s.forkedUsernames(gl, record.OriginalProjectID)
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeRemoteError, "获取fork用户列表失败", err)
	}

	views, err := s.projectViews(baseURL)
	if err != nil {
		return err
	}
	pcommits, err := s.engine.Synchronize(baseURL, views, username, forkers)
	if err != nil {
		return err
	}

	// 本项目新产生的测试提交与这次源提交配对, 追加进记录
	var links []core.CommitLink
	for _, testingCommitID := range pcommits[projectID] {
		links = append(links, core.CommitLink{CommitID: commitID, TestingCommitID: testingCommitID})
	}
	if len(links) > 0 {
		record.AppendCommitLinks(links...)
		if err := s.projectRepo.Update(record); err != nil {
			return err
		}
	}
	return nil
}

// Delete 删除项目: 先删远端主项目和测试项目, 再删本地记录
// 只有两侧远端删除都失败时才阻止本地删除
func (s *projectService) Delete(userID int64, projectID int) error {
	baseURL, token, _, err := s.gitlabIdentity(userID)
	if err != nil {
		return err
	}
	record, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}

	gl, err := s.connect(baseURL, token)
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
	}

	mainErr := gl.DeleteProject(record.ID)
	if mainErr != nil {
		logger.Warn("删除主项目失败", zap.Int("project_id", record.ID), zap.Error(mainErr))
	}
	testingErr := gl.DeleteProject(record.TestingProject.Data().ID)
	if testingErr != nil {
		logger.Warn("删除测试项目失败",
			zap.Int("project_id", record.TestingProject.Data().ID),
			zap.Error(testingErr))
	}
	if mainErr != nil && testingErr != nil {
		return pkgErrors.New(pkgErrors.CodeForbidden, "远端项目删除失败")
	}

	return s.projectRepo.Delete(projectID)
}

// SynchronizeAll 对所有记录执行一轮分支同步, 供定时任务调用
// 以各项目自己的机器人Token列fork用户, 操作者取项目命名空间
func (s *projectService) SynchronizeAll() error {
	records, err := s.projectRepo.List()
	if err != nil {
		return err
	}

	// 按GitLab实例分组, 每组一起同步
	byURL := make(map[string][]*model.Project)
	for _, record := range records {
		byURL[record.GitlabURL] = append(byURL[record.GitlabURL], record)
	}

	for baseURL, group := range byURL {
		views, err := s.projectViews(baseURL)
		if err != nil {
			return err
		}
		for _, record := range group {
			accessToken, err := crypto.Decrypt(s.cfg.Crypto.AESKey, record.AccessToken)
			if err != nil {
				logger.Error("解密项目Token失败", zap.Int("project_id", record.ID), zap.Error(err))
				continue
			}
			gl, err := s.connect(baseURL, accessToken)
			if err != nil {
				logger.Warn("定时同步认证失败", zap.Int("project_id", record.ID), zap.Error(err))
				continue
			}
			forkers, err := s.forkedUsernames(gl, record.OriginalProjectID)
			if err != nil {
				logger.Warn("定时同步获取fork用户失败", zap.Int("project_id", record.ID), zap.Error(err))
				continue
			}
			if _, err := s.engine.Synchronize(baseURL, views, record.Namespace, forkers); err != nil {
				logger.Warn("定时同步失败", zap.Int("project_id", record.ID), zap.Error(err))
			}
		}
	}
	return nil
}

func (s *projectService) gitlabIdentity(userID int64) (string, string, string, error) {
	return resolveGitlabIdentity(s.cfg, s.userRepo, userID)
}

// projectViews 把同一GitLab实例下的全部记录解密为编排层视图
func (s *projectService) projectViews(baseURL string) ([]core.ProjectView, error) {
	records, err := s.projectRepo.List()
	if err != nil {
		return nil, err
	}

	views := make([]core.ProjectView, 0, len(records))
	for _, record := range records {
		if record.GitlabURL != baseURL {
			continue
		}
		view, err := s.toView(record)
		if err != nil {
			logger.Error("解密项目记录失败", zap.Int("project_id", record.ID), zap.Error(err))
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *projectService) toView(record *model.Project) (core.ProjectView, error) {
	return decryptProjectView(s.cfg, record)
}

// toModel 配置结果转落库模型, 两个Token均加密
func (s *projectService) toModel(result *core.ProvisionResult, baseURL string, link core.CommitLink) (*model.Project, error) {
	accessToken, err := crypto.Encrypt(s.cfg.Crypto.AESKey, result.AccessToken)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "加密项目Token失败", err)
	}
	testingToken, err := crypto.Encrypt(s.cfg.Crypto.AESKey, result.TestingProject.AccessToken)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "加密测试项目Token失败", err)
	}

	return &model.Project{
		ID:                result.ID,
		GitlabURL:         baseURL,
		OriginalProjectID: result.OriginalProjectID,
		Namespace:         result.Namespace,
		AccessToken:       accessToken,
		Members:           datatypes.NewJSONType(result.Members),
		Branches:          datatypes.NewJSONType(result.Branches),
		Commits:           datatypes.NewJSONType([]core.CommitLink{link}),
		TestingProject: datatypes.NewJSONType(core.TestingProjectView{
			ID:          result.TestingProject.ID,
			AccessToken: testingToken,
		}),
	}, nil
}

// forkedUsernames 原项目的fork所有者用户名
func (s *projectService) forkedUsernames(gl api.Gateway, originalProjectID int) ([]string, error) {
	forks, err := gl.ListForks(originalProjectID)
	if err != nil {
		return nil, err
	}
	usernames := make([]string, 0, len(forks))
	for _, fork := range forks {
		if fork.Owner != "" {
			usernames = append(usernames, fork.Owner)
		}
	}
	return usernames, nil
}

// buildProjectDetail 拉取项目的远端详情: 各分支目录结构 + 提交列表
func (s *projectService) buildProjectDetail(gl api.Gateway, projectID int) (*dto.ProjectDetail, error) {
	info, err := gl.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	branches, err := gl.ListBranches(projectID)
	if err != nil {
		return nil, err
	}
	branchDetails := make([]dto.BranchDetail, 0, len(branches))
	for _, branch := range branches {
		tree, err := gl.ListTree(projectID, branch.Name, "", true)
		if err != nil {
			logger.Warn("拉取分支目录树失败",
				zap.Int("project_id", projectID),
				zap.String("branch", branch.Name),
				zap.Error(err))
			continue
		}
		branchDetails = append(branchDetails, dto.BranchDetail{
			Name:  branch.Name,
			Files: folderStructure(tree),
		})
	}

	commits, err := gl.ListCommits(projectID, "", 20)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectDetail{
		Project:  info,
		Branches: branchDetails,
		Commits:  commits,
	}, nil
}

// folderStructure 把扁平路径列表折叠成嵌套目录结构
func folderStructure(items []api.TreeItem) map[string]interface{} {
	root := make(map[string]interface{})
	for _, item := range items {
		parts := strings.Split(item.Path, "/")
		current := root
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]interface{})
			if !ok {
				next = make(map[string]interface{})
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = item
	}
	return root
}
