package dto

import (
	"peertest/internal/pkg/git/api"
)

// UserInfo 用户信息
type UserInfo struct {
	ID        int64              `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	GitlabID  int                `json:"gitlabid"`
	GitlabURL string             `json:"gitlaburl"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	AvatarURL string             `json:"avatar_url"`
	WebURL    string             `json:"web_url"`
	State     string             `json:"state"`
	Groups    []api.GroupSummary `json:"groups"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Email           string `json:"email" binding:"omitempty,email"`
	GitlabURL       string `json:"gitlaburl" binding:"omitempty,url"`
	GitlabUserToken string `json:"gitlabusertoken"`
	PhoneNumber     string `json:"phonenumber"`
}
