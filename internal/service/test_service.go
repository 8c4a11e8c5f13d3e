package service

import (
	"fmt"

	"peertest/internal/core"
	"peertest/internal/dto"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/git/api"
	"peertest/internal/repository"
	pkgErrors "peertest/pkg/responses"
)

type TestService interface {
	Trigger(userID int64, req *dto.TriggerTestRequest) (*core.PipelineLinkage, error)
	List(userID int64, query *dto.ListTestsQuery) ([]api.PipelineSummary, error)
	Get(userID int64, query *dto.GetTestQuery) (*api.PipelineSummary, error)
}

type testService struct {
	cfg      *config.Config
	engine   *core.Engine
	connect  api.Connector
	userRepo repository.UserRepository
}

func NewTestService(
	cfg *config.Config,
	engine *core.Engine,
	connect api.Connector,
	userRepo repository.UserRepository,
) TestService {
	return &testService{
		cfg:      cfg,
		engine:   engine,
		connect:  connect,
		userRepo: userRepo,
	}
}

// Trigger 在测试项目的指定分支上重新注入流水线文件以触发一轮测试
// 分支必须已存在; 注入失败时上报而不是静默
func (s *testService) Trigger(userID int64, req *dto.TriggerTestRequest) (*core.PipelineLinkage, error) {
	baseURL, token, _, err := resolveGitlabIdentity(s.cfg, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	gl, err := s.connect(baseURL, token)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
	}

	branches, err := gl.ListBranches(req.TestingProjectID)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeRemoteError, "获取分支列表失败", err)
	}
	found := false
	for _, branch := range branches {
		if branch.Name == req.BranchName {
			found = true
			break
		}
	}
	if !found {
		return nil, pkgErrors.WrapOf(core.ErrBranchNotFound, fmt.Errorf("分支名: %s", req.BranchName))
	}

	linkage := s.engine.InjectPipelineFiles(baseURL, req.BranchName, token, req.TestingProjectID)
	if linkage == nil {
		return nil, pkgErrors.New(pkgErrors.CodeRemoteError, "触发测试失败")
	}
	return linkage, nil
}

// List 列出测试项目的流水线
func (s *testService) List(userID int64, query *dto.ListTestsQuery) ([]api.PipelineSummary, error) {
	gl, err := s.userSession(userID)
	if err != nil {
		return nil, err
	}
	pipelines, err := gl.ListPipelines(query.TestingProjectID)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeRemoteError, "获取流水线列表失败", err)
	}
	if query.BranchName == "" {
		return pipelines, nil
	}

	filtered := make([]api.PipelineSummary, 0, len(pipelines))
	for _, p := range pipelines {
		if p.Ref == query.BranchName {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Get 流水线详情
func (s *testService) Get(userID int64, query *dto.GetTestQuery) (*api.PipelineSummary, error) {
	gl, err := s.userSession(userID)
	if err != nil {
		return nil, err
	}
	pipeline, err := gl.GetPipeline(query.TestingProjectID, query.PipelineID)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeRemoteError, "获取流水线失败", err)
	}
	return pipeline, nil
}

func (s *testService) userSession(userID int64) (api.Gateway, error) {
	baseURL, token, _, err := resolveGitlabIdentity(s.cfg, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	gl, err := s.connect(baseURL, token)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab认证失败", err)
	}
	return gl, nil
}
