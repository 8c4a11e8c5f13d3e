package service

import (
	"errors"
	"strings"

	"gorm.io/datatypes"

	"peertest/internal/dto"
	"peertest/internal/model"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/crypto"
	"peertest/internal/pkg/git/api"
	"peertest/internal/pkg/jwt"
	"peertest/internal/repository"
	"peertest/pkg/constants"
	pkgErrors "peertest/pkg/responses"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserInfo, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	VerifyToken(token string) (*dto.UserInfo, error)
	VerifyGitlabUser(userID int64) (*dto.UserInfo, error)
	ResetPassword(req *dto.ResetPasswordRequest) error
}

type authService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	connect  api.Connector
}

func NewAuthService(cfg *config.Config, userRepo repository.UserRepository, connect api.Connector) AuthService {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		connect:  connect,
	}
}

// Register 注册用户
// 先用提交的GitLab Token建会话验证有效性, 同时拉取用户画像与用户组,
// Token加密后才落库
func (s *authService) Register(req *dto.RegisterRequest) (*dto.UserInfo, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, pkgErrors.ErrRecordExists
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, pkgErrors.ErrRecordExists
	}

	gl, err := s.connect(req.GitlabURL, req.GitlabUserToken)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab Token无效", err)
	}
	profile, err := gl.CurrentUser()
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "获取GitLab用户信息失败", err)
	}
	groups, err := gl.ListGroups()
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeRemoteError, "获取GitLab用户组失败", err)
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}
	encryptedToken, err := crypto.Encrypt(s.cfg.Crypto.AESKey, req.GitlabUserToken)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "Token加密失败", err)
	}

	user := &model.User{
		Username:        req.Username,
		Password:        hashed,
		Email:           req.Email,
		GitlabID:        profile.ID,
		GitlabURL:       req.GitlabURL,
		GitlabUserToken: encryptedToken,
		AvatarURL:       &profile.AvatarURL,
		WebURL:          &profile.WebURL,
		State:           &profile.State,
		IsActive:        true,
		Groups:          datatypes.NewJSONType(groups),
	}
	if names := splitName(profile.Name); names != nil {
		user.FirstName = &names[0]
		user.LastName = &names[1]
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, pkgErrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, pkgErrors.New(pkgErrors.CodeForbidden, "用户未激活")
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成AccessToken失败", err)
	}
	refreshToken, err := jwt.GenerateRefreshToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成RefreshToken失败", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.cfg.Auth.JWT.AccessTokenExpire,
		User:         toUserInfo(user),
	}, nil
}

func (s *authService) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != constants.JWTTypeRefresh {
		return nil, pkgErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成AccessToken失败", err)
	}
	newRefreshToken, err := jwt.GenerateRefreshToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成RefreshToken失败", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    s.cfg.Auth.JWT.AccessTokenExpire,
		User:         toUserInfo(user),
	}, nil
}

func (s *authService) VerifyToken(token string) (*dto.UserInfo, error) {
	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// VerifyGitlabUser 校验用户落库的GitLab Token在远端是否仍然有效
// 解密存储的Token重建会话, 用远端画像回填本地过期字段
func (s *authService) VerifyGitlabUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	token, err := crypto.Decrypt(s.cfg.Crypto.AESKey, user.GitlabUserToken)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "解密Token失败", err)
	}

	gl, err := s.connect(user.GitlabURL, token)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "GitLab Token已失效", err)
	}
	profile, err := gl.CurrentUser()
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "获取GitLab用户信息失败", err)
	}

	user.GitlabID = profile.ID
	user.AvatarURL = &profile.AvatarURL
	user.WebURL = &profile.WebURL
	user.State = &profile.State
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// ResetPassword 按邮箱重置密码, 两次输入必须一致
func (s *authService) ResetPassword(req *dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return pkgErrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return pkgErrors.New(pkgErrors.CodeBadRequest, "邮箱不存在")
		}
		return err
	}

	hashed, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}
	user.Password = hashed
	return s.userRepo.Update(user)
}

// splitName GitLab全名拆为[名, 姓]: 第一个词记为姓, 其余记为名
func splitName(name string) *[2]string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return nil
	}
	parts := [2]string{"", fields[0]}
	if len(fields) > 1 {
		parts[0] = strings.Join(fields[1:], " ")
	}
	return &parts
}
