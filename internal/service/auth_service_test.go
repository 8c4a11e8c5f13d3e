package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peertest/internal/dto"
	"peertest/internal/pkg/crypto"
	"peertest/internal/pkg/git/api"
	pkgErrors "peertest/pkg/responses"
)

func TestResetPassword(t *testing.T) {
	user := newTestUser(t, 1, "alice")
	hashed, err := crypto.HashPassword("oldpassword")
	require.NoError(t, err)
	user.Password = hashed

	repo := newFakeUserRepo(user)
	svc := NewAuthService(newTestConfig(), repo, nil)

	t.Run("两次密码不一致", func(t *testing.T) {
		err := svc.ResetPassword(&dto.ResetPasswordRequest{
			Email:           "alice@example.com",
			NewPassword:     "newpassword1",
			ConfirmPassword: "newpassword2",
		})
		assert.ErrorIs(t, err, pkgErrors.ErrPasswordMismatch)
		assert.True(t, crypto.CheckPassword("oldpassword", user.Password), "密码不能被改动")
	})

	t.Run("邮箱不存在", func(t *testing.T) {
		err := svc.ResetPassword(&dto.ResetPasswordRequest{
			Email:           "nobody@example.com",
			NewPassword:     "newpassword1",
			ConfirmPassword: "newpassword1",
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "邮箱不存在")
	})

	t.Run("重置成功", func(t *testing.T) {
		err := svc.ResetPassword(&dto.ResetPasswordRequest{
			Email:           "alice@example.com",
			NewPassword:     "newpassword1",
			ConfirmPassword: "newpassword1",
		})
		require.NoError(t, err)
		assert.True(t, crypto.CheckPassword("newpassword1", user.Password))
		assert.False(t, crypto.CheckPassword("oldpassword", user.Password))
	})
}

func TestVerifyGitlabUser(t *testing.T) {
	user := newTestUser(t, 1, "alice")
	repo := newFakeUserRepo(user)

	t.Run("Token有效时回填远端画像", func(t *testing.T) {
		gw := &stubGateway{user: &api.UserInfo{
			ID: 77, Username: "alice", Name: "Anders Alice",
			AvatarURL: "https://gitlab.example.com/avatar/alice",
			WebURL:    "https://gitlab.example.com/alice",
			State:     "active",
		}}
		svc := NewAuthService(newTestConfig(), repo, stubConnector(gw))

		info, err := svc.VerifyGitlabUser(1)
		require.NoError(t, err)
		assert.Equal(t, 77, info.GitlabID)
		assert.Equal(t, "active", info.State)
		assert.Equal(t, 77, user.GitlabID, "远端画像必须落库")
	})

	t.Run("Token失效时映射为认证错误", func(t *testing.T) {
		connect := func(baseURL, token string) (api.Gateway, error) {
			return nil, fmt.Errorf("401 unauthorized")
		}
		svc := NewAuthService(newTestConfig(), repo, connect)

		_, err := svc.VerifyGitlabUser(1)
		require.Error(t, err)
		assert.ErrorContains(t, err, "GitLab Token已失效")
	})

	t.Run("用户不存在", func(t *testing.T) {
		svc := NewAuthService(newTestConfig(), repo, nil)
		_, err := svc.VerifyGitlabUser(42)
		assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
	})
}
