package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"peertest/internal/core"
	"peertest/internal/model"
	"peertest/internal/pkg/git/api"
)

func TestFolderStructure(t *testing.T) {
	items := []api.TreeItem{
		{Path: "README.md", Type: "blob"},
		{Path: "src", Type: "tree"},
		{Path: "src/main.py", Type: "blob"},
		{Path: "src/lib/helpers.py", Type: "blob"},
		{Path: "test/test_app.py", Type: "blob"},
	}

	root := folderStructure(items)

	assert.Contains(t, root, "README.md")

	src, ok := root["src"].(map[string]interface{})
	require.True(t, ok, "src应是嵌套目录")
	assert.Contains(t, src, "main.py")

	lib, ok := src["lib"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, lib, "helpers.py")

	tests, ok := root["test"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, tests, "test_app.py")
}

func TestFolderStructureEmpty(t *testing.T) {
	root := folderStructure(nil)
	assert.Empty(t, root)
}

// 删除策略: 两侧远端都尝试删除, 只有两侧都失败才阻止本地记录删除
func TestDeleteRemoteFailurePolicy(t *testing.T) {
	const (
		mainID    = 10
		testingID = 11
	)

	cases := []struct {
		name       string
		deleteErrs map[int]error
		wantErr    bool
	}{
		{
			name:       "两侧远端删除都成功",
			deleteErrs: nil,
			wantErr:    false,
		},
		{
			name:       "仅主项目删除失败",
			deleteErrs: map[int]error{mainID: fmt.Errorf("403 forbidden")},
			wantErr:    false,
		},
		{
			name:       "仅测试项目删除失败",
			deleteErrs: map[int]error{testingID: api.ErrNotFound},
			wantErr:    false,
		},
		{
			name: "两侧远端删除都失败",
			deleteErrs: map[int]error{
				mainID:    fmt.Errorf("403 forbidden"),
				testingID: fmt.Errorf("403 forbidden"),
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := &model.Project{
				ID:        mainID,
				GitlabURL: "https://gitlab.example.com",
				Namespace: "alice",
				TestingProject: datatypes.NewJSONType(core.TestingProjectView{
					ID: testingID,
				}),
			}
			projectRepo := newFakeProjectRepo(record)
			userRepo := newFakeUserRepo(newTestUser(t, 1, "alice"))
			gw := &stubGateway{deleteErrs: tc.deleteErrs}

			svc := NewProjectService(newTestConfig(), nil, stubConnector(gw), projectRepo, userRepo)
			err := svc.Delete(1, mainID)

			// 不论结果如何, 两侧远端都必须尝试过删除
			assert.Equal(t, []int{mainID, testingID}, gw.deleteCalls)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, "远端项目删除失败")
				assert.Empty(t, projectRepo.deleted, "两侧都失败时本地记录必须保留")
			} else {
				require.NoError(t, err)
				assert.Equal(t, []int{mainID}, projectRepo.deleted)
			}
		})
	}
}
