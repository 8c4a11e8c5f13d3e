package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkedProject() ProjectView {
	return ProjectView{
		ID: 1, Namespace: "alice", AccessToken: "tok-a",
		TestingProject: TestingProjectView{ID: 2, AccessToken: "tok-t"},
		Commits: []CommitLink{
			{CommitID: "abc", TestingCommitID: "def"},
		},
	}
}

func TestCommentOnCommitMirrorsBoth(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	require.NoError(t, e.CommentOnCommit(testBaseURL, linkedProject(), "abc", "looks good"))

	// 评论镜像到两侧: 主项目落在原提交, 测试项目落在配对提交
	main, err := m.ListCommitComments(1, "abc")
	require.NoError(t, err)
	require.Len(t, main, 1)
	assert.Equal(t, "looks good", main[0].Note)

	mirrored, err := m.ListCommitComments(2, "def")
	require.NoError(t, err)
	require.Len(t, mirrored, 1)
	assert.Equal(t, "looks good", mirrored[0].Note)
}

func TestCommentOnCommitNotLinked(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	err := e.CommentOnCommit(testBaseURL, linkedProject(), "unknown", "looks good")
	require.ErrorIs(t, err, ErrCommitNotLinked)

	// 未关联的提交不发起任何远端评论调用
	assert.Zero(t, m.CommentCalls())
}

func TestCommentOnCommitRemoteFailure(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}}).
		SetCommentError(errors.New("503 service unavailable"))
	e := newTestEngine(t, m)

	err := e.CommentOnCommit(testBaseURL, linkedProject(), "abc", "looks good")
	require.ErrorIs(t, err, ErrRemote)
}

func TestFormatReview(t *testing.T) {
	_, err := FormatReview(0, "bad")
	require.ErrorIs(t, err, ErrInvalidRating)
	_, err = FormatReview(6, "bad")
	require.ErrorIs(t, err, ErrInvalidRating)

	text, err := FormatReview(3, "nice work")
	require.NoError(t, err)
	assert.Equal(t, "⭐⭐⭐ nice work", text)
}

func TestListCommentsAndReviews(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	for _, note := range []string{"hello", "⭐⭐⭐ nice", "⭐ ok"} {
		require.NoError(t, m.PostCommitComment(1, "abc", note))
	}

	comments, err := e.ListCommitComments(testBaseURL, "tok-a", 1, "abc")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "hello", comments[0].Note)

	reviews, err := e.ListCommitReviews(testBaseURL, "tok-a", 1, "abc")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "⭐⭐⭐ nice", reviews[0].Note)
	assert.Equal(t, "⭐ ok", reviews[1].Note)
}
