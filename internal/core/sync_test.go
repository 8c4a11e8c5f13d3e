package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedBranches(t *testing.T) {
	forkers := []string{"alice", "bob", "carol"}
	branches := expectedBranches(forkers)

	// n个用户 → n²个分支: 每个用户在每个槽位各一个
	require.Len(t, branches, 9)
	for _, user := range forkers {
		for i := 0; i < len(forkers); i++ {
			assert.Contains(t, branches, fmt.Sprintf("%sp%d", user, i))
		}
	}
}

func TestCommitToBranchCreateThenUpdate(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "calc", "alice", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	_, err := e.CommitToBranch(m, 1, "main", "src/app.go", "add", "v1")
	require.NoError(t, err)
	_, err = e.CommitToBranch(m, 1, "main", "src/app.go", "change", "v2")
	require.NoError(t, err)

	require.Len(t, m.commitLog, 2)
	assert.Equal(t, "create", string(m.commitLog[0].Actions[0].Action))
	assert.Equal(t, "update", string(m.commitLog[1].Actions[0].Action))
	assert.Equal(t, "v2", m.BranchFiles(1, "main")["src/app.go"])
}

func TestSynchronizeBranchListFailure(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{"main": {}}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}}).
		SetBranchListError(fmt.Errorf("503 service unavailable"))
	e := newTestEngine(t, m)

	project := ProjectView{
		ID: 1, Namespace: "alice", AccessToken: "tok-a",
		TestingProject: TestingProjectView{ID: 2, AccessToken: "tok-t"},
	}
	_, err := e.Synchronize(testBaseURL, []ProjectView{project}, "alice", []string{"alice"})
	require.Error(t, err)

	// 列分支失败属于远端错误, 不能误报为分支不存在, 且保留远端详情
	assert.ErrorIs(t, err, ErrRemote)
	assert.NotErrorIs(t, err, ErrBranchNotFound)
	assert.Contains(t, err.Error(), "503")
}

func TestSynchronizeSeedsNewBranch(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{
			"main": {
				"src/app.go":       "package app",
				"README.md":        "# calc",
				"test/test_app.py": "real test content",
			},
		}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	project := ProjectView{
		ID: 1, Namespace: "alice", AccessToken: "tok-a",
		TestingProject: TestingProjectView{ID: 2, AccessToken: "tok-t"},
	}
	result, err := e.Synchronize(testBaseURL, []ProjectView{project}, "alice", []string{"alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, result[1])

	files := m.BranchFiles(2, "alicep0")
	require.NotNil(t, files)

	// 非test路径原样复制
	assert.Equal(t, "package app", files["src/app.go"])
	assert.Equal(t, "# calc", files["README.md"])

	// test路径不复制真实内容, 只落固定占位文件
	assert.Equal(t, "init data", files["test/init.txt"])
	assert.NotContains(t, files, "test/test_app.py")

	// 播种完成后注入流水线文件
	assert.Contains(t, files, ".gitlab-ci.yml")
	assert.Contains(t, files, "detect_and_test.sh")
	assert.Contains(t, files, ".env")
}

func TestSynchronizeBranchMatrix(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{
			"main": {"src/app.go": "package app"},
		}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	project := ProjectView{
		ID: 1, Namespace: "alice", AccessToken: "tok-a",
		TestingProject: TestingProjectView{ID: 2, AccessToken: "tok-t"},
	}
	_, err := e.Synchronize(testBaseURL, []ProjectView{project}, "alice", []string{"alice", "bob"})
	require.NoError(t, err)

	branches, err := m.ListBranches(2)
	require.NoError(t, err)
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}

	// 2个fork用户 → 4个同步分支, main不参与
	assert.ElementsMatch(t, []string{"main", "alicep0", "alicep1", "bobp0", "bobp1"}, names)
}

func TestSynchronizeSkipsNonForkers(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "mallory", map[string]map[string]string{
			"main": {"src/app.go": "package app"},
		}).
		AddProject(2, "mallorypeertesting", "mallory", map[string]map[string]string{"main": {}})
	e := newTestEngine(t, m)

	project := ProjectView{
		ID: 1, Namespace: "mallory", AccessToken: "tok-a",
		TestingProject: TestingProjectView{ID: 2, AccessToken: "tok-t"},
	}
	result, err := e.Synchronize(testBaseURL, []ProjectView{project}, "alice", []string{"alice", "bob"})
	require.NoError(t, err)

	// 命名空间不在fork用户之列: 整个项目跳过, 返回空提交列表
	assert.Empty(t, result[1])
	assert.Empty(t, m.commitLog)
}

func TestSynchronizeRefreshesExistingBranch(t *testing.T) {
	m := NewMockGateway("alice").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{
			"main": {"src/app.go": "package app"},
		}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{
			"main": {},
			"alicep0": {
				"src/app.go":    "package app",
				"test/init.txt": "init data",
			},
		})
	e := newTestEngine(t, m)

	project := ProjectView{
		ID: 1, Namespace: "alice", AccessToken: "tok-a",
		TestingProject: TestingProjectView{ID: 2, AccessToken: "tok-t"},
	}
	result, err := e.Synchronize(testBaseURL, []ProjectView{project}, "alice", []string{"alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, result[1])

	messages := m.CommitMessages()
	assert.Contains(t, messages, "Updated file: src/app.go in alicep0")
	assert.Contains(t, messages, "Updated file: test/init.txt in alicep0")
}

func TestSynchronizeForcesSrcForOtherUsers(t *testing.T) {
	m := NewMockGateway("bob").
		AddProject(1, "mycalc", "alice", map[string]map[string]string{
			"main": {"src/app.go": "package app"},
		}).
		AddProject(2, "alicepeertesting", "alice", map[string]map[string]string{
			"main": {},
			"alicep0": {
				"src/app.go":    "package app",
				"test/init.txt": "init data",
			},
		})
	e := newTestEngine(t, m)

	project := ProjectView{
		ID: 1, Namespace: "alice", AccessToken: "tok-a",
		TestingProject: TestingProjectView{ID: 2, AccessToken: "tok-t"},
	}
	// 操作者bob不在测试项目名里: test目录按src处理, 不重提交test内容
	_, err := e.Synchronize(testBaseURL, []ProjectView{project}, "bob", []string{"alice"})
	require.NoError(t, err)

	messages := m.CommitMessages()
	assert.Contains(t, messages, "Updated file: src/app.go in alicep0")
	assert.NotContains(t, messages, "Updated file: test/init.txt in alicep0")
}
