package core

import (
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/git/api"
	pkgErrors "peertest/pkg/responses"
)

// Engine GitLab同步编排引擎
// 所有远端操作通过Connector按Token建会话, 引擎自身无进程级可变状态
type Engine struct {
	connect api.Connector
	cfg     config.GitLabConfig
}

// NewEngine 创建编排引擎
func NewEngine(connect api.Connector, cfg config.GitLabConfig) *Engine {
	return &Engine{
		connect: connect,
		cfg:     cfg,
	}
}

// session 建立已认证会话, 认证失败收敛为 ErrAuth
func (e *Engine) session(baseURL, token string) (api.Gateway, error) {
	gl, err := e.connect(baseURL, token)
	if err != nil {
		return nil, pkgErrors.WrapOf(ErrAuth, err)
	}
	return gl, nil
}
