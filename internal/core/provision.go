package core

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"peertest/internal/pkg/git/api"
	"peertest/internal/pkg/logger"
	pkgErrors "peertest/pkg/responses"
)

// ForkAndProvision fork项目并创建配套测试项目
// 流程: 解析命名空间 -> 重名预检 -> fork -> fork项目建Token -> 建测试项目及Token
// 远端操作非事务性: 中途失败不回滚已产生的远端资源, 只上报首个失败
func (e *Engine) ForkAndProvision(baseURL, userToken string, sourceProjectID int, newProjectName string) (*ProvisionResult, error) {
	gl, err := e.session(baseURL, userToken)
	if err != nil {
		return nil, err
	}

	user, err := gl.CurrentUser()
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrAuth, err)
	}
	namespace := user.Username

	// 重名预检, 命中则不发起fork
	if newProjectName != "" {
		exists, err := e.projectExists(gl, newProjectName, namespace)
		if err != nil {
			logger.Warn("检查项目是否存在失败",
				zap.String("namespace", namespace),
				zap.String("name", newProjectName),
				zap.Error(err))
		}
		if exists {
			return nil, ErrDuplicateProject
		}
	}

	var path string
	if newProjectName != "" {
		path = strings.ToLower(newProjectName)
	}
	forked, err := gl.ForkProject(sourceProjectID, newProjectName, path, namespace)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrForkFailed, err)
	}
	logger.Info("Fork项目成功",
		zap.Int("source", sourceProjectID),
		zap.Int("forked", forked.ID),
		zap.String("namespace", namespace))

	accessToken, err := e.createBotToken(gl, forked.ID)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}

	// 配套测试项目创建失败则整个操作失败
	testing, err := e.provisionTestingProject(gl, namespace)
	if err != nil {
		return nil, err
	}

	members, err := gl.ListMembers(forked.ID)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}
	branches, err := gl.ListBranches(forked.ID)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}

	return &ProvisionResult{
		ID:                forked.ID,
		OriginalProjectID: sourceProjectID,
		Namespace:         namespace,
		AccessToken:       accessToken,
		Members:           members,
		Branches:          branches,
		TestingProject:    *testing,
	}, nil
}

// provisionTestingProject 创建私有测试项目并配发机器人Token
func (e *Engine) provisionTestingProject(gl api.Gateway, namespace string) (*TestingProjectView, error) {
	project, err := gl.CreateProject(namespace+e.cfg.TestingSuffix, "This is the testing project", "private")
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}

	token, err := e.createBotToken(gl, project.ID)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrRemote, err)
	}

	logger.Info("创建测试项目成功", zap.Int("id", project.ID), zap.String("namespace", namespace))
	return &TestingProjectView{ID: project.ID, AccessToken: token}, nil
}

// createBotToken 在项目上创建机器人访问Token, 有效期以月为单位从当前时间起算
func (e *Engine) createBotToken(gl api.Gateway, projectID int) (string, error) {
	return gl.CreateProjectAccessToken(projectID, api.TokenSpec{
		Name:      e.cfg.BotName,
		Scopes:    e.cfg.BotScopes,
		ExpiresAt: time.Now().AddDate(0, e.cfg.TokenTTLMonths, 0),
	})
}

// projectExists 目标命名空间下是否已有同名项目
func (e *Engine) projectExists(gl api.Gateway, name, namespace string) (bool, error) {
	projects, err := gl.SearchProjects(name)
	if err != nil {
		return false, err
	}
	for _, p := range projects {
		if p.Namespace == namespace && p.Name == name {
			return true, nil
		}
	}
	return false, nil
}
