package service

import (
	"peertest/internal/dto"
	"peertest/internal/model"
	"peertest/internal/pkg/config"
	"peertest/internal/pkg/crypto"
	"peertest/internal/repository"
	pkgErrors "peertest/pkg/responses"
)

type UserService interface {
	GetByID(id int64) (*dto.UserInfo, error)
	List() ([]*dto.UserInfo, error)
	Update(id int64, req *dto.UpdateUserRequest) (*dto.UserInfo, error)
	Delete(id int64) error
}

type userService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

func NewUserService(cfg *config.Config, userRepo repository.UserRepository) UserService {
	return &userService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (s *userService) GetByID(id int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *userService) List() ([]*dto.UserInfo, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	infos := make([]*dto.UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, toUserInfo(user))
	}
	return infos, nil
}

func (s *userService) Update(id int64, req *dto.UpdateUserRequest) (*dto.UserInfo, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.GitlabURL != "" {
		user.GitlabURL = req.GitlabURL
	}
	if req.GitlabUserToken != "" {
		encrypted, err := crypto.Encrypt(s.cfg.Crypto.AESKey, req.GitlabUserToken)
		if err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "Token加密失败", err)
		}
		user.GitlabUserToken = encrypted
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *userService) Delete(id int64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}

// toUserInfo 模型转响应
func toUserInfo(user *model.User) *dto.UserInfo {
	info := &dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		GitlabID:  user.GitlabID,
		GitlabURL: user.GitlabURL,
		Groups:    user.Groups.Data(),
	}
	if user.FirstName != nil {
		info.FirstName = *user.FirstName
	}
	if user.LastName != nil {
		info.LastName = *user.LastName
	}
	if user.AvatarURL != nil {
		info.AvatarURL = *user.AvatarURL
	}
	if user.WebURL != nil {
		info.WebURL = *user.WebURL
	}
	if user.State != nil {
		info.State = *user.State
	}
	return info
}
