package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForkAndProvision(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "calculator", "origin", map[string]map[string]string{
			"main": {"src/main.go": "package main"},
		})
	e := newTestEngine(t, m)

	result, err := e.ForkAndProvision(testBaseURL, "user-token", 1, "mycalc")
	require.NoError(t, err)

	assert.Equal(t, 1, result.OriginalProjectID)
	assert.Equal(t, "alice", result.Namespace)
	assert.NotZero(t, result.ID)
	assert.NotEmpty(t, result.AccessToken)

	// 配套测试项目必须随fork一起建出, 且有自己的Token
	assert.NotZero(t, result.TestingProject.ID)
	assert.NotEmpty(t, result.TestingProject.AccessToken)
	assert.NotEqual(t, result.ID, result.TestingProject.ID)

	tp, err := m.GetProject(result.TestingProject.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicepeertesting", tp.Name)
	assert.Equal(t, "private", tp.Visibility)
}

func TestForkAndProvisionBotToken(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "calculator", "origin", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	_, err := e.ForkAndProvision(testBaseURL, "user-token", 1, "")
	require.NoError(t, err)

	// fork项目和测试项目各一个机器人Token, 同名同范围, 约11个月有效期
	require.Len(t, m.tokenCalls, 2)
	for _, spec := range m.tokenCalls {
		assert.Equal(t, "ptbot", spec.Name)
		assert.Equal(t, []string{"api"}, spec.Scopes)
		assert.WithinDuration(t, time.Now().AddDate(0, 11, 0), spec.ExpiresAt, time.Hour)
	}
}

func TestForkAndProvisionDuplicate(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "calculator", "origin", map[string]map[string]string{"main": {}}).
		AddProject(2, "mycalc", "alice", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	_, err := e.ForkAndProvision(testBaseURL, "user-token", 1, "mycalc")
	require.ErrorIs(t, err, ErrDuplicateProject)

	// 重名预检命中后不应该发起fork, 也不应该申请Token
	assert.Empty(t, m.tokenCalls)
}
