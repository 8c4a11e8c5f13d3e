package service

import (
	"peertest/internal/core"
	"peertest/internal/model"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/crypto"
	"peertest/internal/repository"
	pkgErrors "peertest/pkg/responses"
)

// resolveGitlabIdentity 取用户的GitLab会话三元组(地址, 明文Token, 用户名)
func resolveGitlabIdentity(cfg *config.Config, userRepo repository.UserRepository, userID int64) (string, string, string, error) {
	user, err := userRepo.FindByID(userID)
	if err != nil {
		return "", "", "", err
	}
	token, err := crypto.Decrypt(cfg.Crypto.AESKey, user.GitlabUserToken)
	if err != nil {
		return "", "", "", pkgErrors.Wrap(pkgErrors.CodeInternalError, "解密Token失败", err)
	}
	return user.GitlabURL, token, user.Username, nil
}

// decryptProjectView 项目记录转编排层视图, 两个Token就地解密
func decryptProjectView(cfg *config.Config, record *model.Project) (core.ProjectView, error) {
	accessToken, err := crypto.Decrypt(cfg.Crypto.AESKey, record.AccessToken)
	if err != nil {
		return core.ProjectView{}, err
	}
	testing := record.TestingProject.Data()
	testingToken, err := crypto.Decrypt(cfg.Crypto.AESKey, testing.AccessToken)
	if err != nil {
		return core.ProjectView{}, err
	}
	return core.ProjectView{
		ID:          record.ID,
		Namespace:   record.Namespace,
		AccessToken: accessToken,
		TestingProject: core.TestingProjectView{
			ID:          testing.ID,
			AccessToken: testingToken,
		},
		Commits: record.Commits.Data(),
	}, nil
}
