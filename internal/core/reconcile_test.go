package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileLatestCommits(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}}).
		AddCommits(1, "alicep0", "f2", "f1").
		AddCommits(2, "alicep0", "t9", "t8")
	e := newTestEngine(t, m)

	link := e.ReconcileLatestCommits(m, 2, 1, "alicep0", "alicep0")
	assert.Equal(t, "f2", link.CommitID)
	assert.Equal(t, "t9", link.TestingCommitID)
}

func TestReconcileFallsBackToDefaultBranch(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}}).
		AddCommits(1, "main", "m7").
		AddCommits(2, "alicep0", "t9")
	e := newTestEngine(t, m)

	// fork侧分支无提交 → 降级到默认分支main
	link := e.ReconcileLatestCommits(m, 2, 1, "alicep0", "alicep0")
	assert.Equal(t, "m7", link.CommitID)
	assert.Equal(t, "t9", link.TestingCommitID)
}

func TestReconcileEmptyOnBothMisses(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}}).
		AddCommits(2, "alicep0", "t9")
	e := newTestEngine(t, m)

	// 分支和默认分支都没有提交: 该侧记空串, 不报错
	link := e.ReconcileLatestCommits(m, 2, 1, "alicep0", "alicep0")
	assert.Empty(t, link.CommitID)
	assert.Equal(t, "t9", link.TestingCommitID)
}
