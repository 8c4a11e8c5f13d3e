package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"peertest/internal/pkg/git/api"
	"peertest/internal/pkg/logger"
	"peertest/pkg/constants"
)

// InjectPipelineFiles 向分支注入固定的三个流水线文件
// 三个文件合并为一次多动作提交; 任一文件需要create时提交消息带 [ci skip] 防止递归触发流水线
// 尽力而为: 任何失败只记日志并返回nil, 调用方必须容忍nil
func (e *Engine) InjectPipelineFiles(baseURL, branch, botToken string, projectID int) *PipelineLinkage {
	gl, err := e.session(baseURL, botToken)
	if err != nil {
		logger.Warn("注入流水线文件失败: 认证错误",
			zap.Int("project_id", projectID),
			zap.String("branch", branch),
			zap.Error(err))
		return nil
	}

	files, err := e.pipelineFiles()
	if err != nil {
		logger.Warn("注入流水线文件失败: 读取模板错误", zap.Error(err))
		return nil
	}

	var actions []api.CommitAction
	anyCreate := false
	for _, file := range files {
		action := api.FileUpdate
		if _, err := gl.GetFile(projectID, file.Path, branch); err != nil {
			if !errors.Is(err, api.ErrNotFound) {
				logger.Warn("注入流水线文件失败: 探测文件错误",
					zap.Int("project_id", projectID),
					zap.String("path", file.Path),
					zap.Error(err))
				return nil
			}
			action = api.FileCreate
			anyCreate = true
		}
		actions = append(actions, api.CommitAction{
			Action:   action,
			FilePath: file.Path,
			Content:  file.Content,
		})
	}

	message := fmt.Sprintf("running tests on %s branch", branch)
	if anyCreate {
		message = fmt.Sprintf("init tests on %s branch", branch) + constants.CISkipSuffix
	}

	commitID, err := gl.CreateCommit(projectID, branch, message, actions)
	if err != nil {
		logger.Warn("注入流水线文件失败: 提交错误",
			zap.Int("project_id", projectID),
			zap.String("branch", branch),
			zap.Error(err))
		return nil
	}

	return &PipelineLinkage{
		CommitID:  commitID,
		Branch:    branch,
		BotToken:  botToken,
		ProjectID: projectID,
	}
}

// pipelineFiles 按固定顺序组装流水线文件: 空.env, 检测脚本, CI定义
// 模板从配置目录读取, CI YAML先做一次解析校验再下发
func (e *Engine) pipelineFiles() ([]api.RepoFile, error) {
	script, err := os.ReadFile(filepath.Join(e.cfg.PipelineTplDir, constants.PipelineScriptFile))
	if err != nil {
		return nil, fmt.Errorf("读取检测脚本模板失败: %w", err)
	}

	ciYaml, err := os.ReadFile(filepath.Join(e.cfg.PipelineTplDir, constants.PipelineYamlFile))
	if err != nil {
		return nil, fmt.Errorf("读取CI模板失败: %w", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(ciYaml, &doc); err != nil {
		return nil, fmt.Errorf("CI模板不是合法YAML: %w", err)
	}

	return []api.RepoFile{
		{Path: constants.PipelineEnvFile, Content: ""},
		{Path: constants.PipelineScriptFile, Content: string(script)},
		{Path: constants.PipelineYamlFile, Content: string(ciYaml)},
	}, nil
}
