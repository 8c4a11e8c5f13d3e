package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peertest/internal/pkg/config"
)

func TestInjectPipelineFilesFirstTime(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"alicep0": {}})
	e := newTestEngine(t, m)

	linkage := e.InjectPipelineFiles(testBaseURL, "alicep0", "tok-t", 2)
	require.NotNil(t, linkage)
	assert.Equal(t, "alicep0", linkage.Branch)
	assert.Equal(t, 2, linkage.ProjectID)
	assert.NotEmpty(t, linkage.CommitID)

	// 三个文件合并为一次提交, 首次注入带 [ci skip]
	require.Len(t, m.commitLog, 1)
	assert.Len(t, m.commitLog[0].Actions, 3)
	assert.Equal(t, "init tests on alicep0 branch [ci skip]", m.commitLog[0].Message)

	files := m.BranchFiles(2, "alicep0")
	assert.Equal(t, "", files[".env"])
	assert.NotEmpty(t, files["detect_and_test.sh"])
	assert.NotEmpty(t, files[".gitlab-ci.yml"])
}

func TestInjectPipelineFilesRerun(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"alicep0": {}})
	e := newTestEngine(t, m)

	require.NotNil(t, e.InjectPipelineFiles(testBaseURL, "alicep0", "tok-t", 2))
	linkage := e.InjectPipelineFiles(testBaseURL, "alicep0", "tok-t", 2)
	require.NotNil(t, linkage)

	// 文件已存在: 全部update, 提交消息不再带 [ci skip]
	require.Len(t, m.commitLog, 2)
	for _, action := range m.commitLog[1].Actions {
		assert.Equal(t, "update", string(action.Action))
	}
	assert.Equal(t, "running tests on alicep0 branch", m.commitLog[1].Message)
}

func TestInjectPipelineFilesMissingTemplates(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"alicep0": {}})
	e := NewEngine(m.Connector(), config.GitLabConfig{
		PipelineTplDir:   t.TempDir(), // 空目录, 没有模板
		TestingSuffix:    "peertesting",
		ReservedBranches: []string{"main"},
	})

	// 尽力而为: 模板缺失只返回nil, 不产生任何提交
	assert.Nil(t, e.InjectPipelineFiles(testBaseURL, "alicep0", "tok-t", 2))
	assert.Empty(t, m.commitLog)
}
