package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "peertest/pkg/responses"
)

func TestUserListAndDelete(t *testing.T) {
	repo := newFakeUserRepo(
		newTestUser(t, 1, "alice"),
		newTestUser(t, 2, "bob"),
	)
	svc := NewUserService(newTestConfig(), repo)

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	require.NoError(t, svc.Delete(2))

	users, err = svc.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)

	// 重复删除同一用户
	assert.ErrorIs(t, svc.Delete(2), pkgErrors.ErrRecordNotFound)
}
