package core

import (
	"errors"

	"peertest/internal/pkg/git/api"
	pkgErrors "peertest/pkg/responses"
)

// CommitToBranch 向分支提交单个文件
// 先探测文件是否存在决定 create/update, 再提交单动作commit, 返回新提交id
func (e *Engine) CommitToBranch(gl api.Gateway, projectID int, branch, path, message, content string) (string, error) {
	action := api.FileUpdate
	if _, err := gl.GetFile(projectID, path, branch); err != nil {
		if !errors.Is(err, api.ErrNotFound) {
			return "", pkgErrors.WrapOf(ErrCommitFailed, err)
		}
		action = api.FileCreate
	}

	commitID, err := gl.CreateCommit(projectID, branch, message, []api.CommitAction{
		{Action: action, FilePath: path, Content: content},
	})
	if err != nil {
		return "", pkgErrors.WrapOf(ErrCommitFailed, err)
	}
	return commitID, nil
}

// filesInBranch 收集某分支下指定目录(含子目录)的全部文件及内容
// 用待访问目录的工作队列展开, 避免和仓库目录深度绑定的递归
func (e *Engine) filesInBranch(gl api.Gateway, projectID int, branch, folder string) ([]api.RepoFile, error) {
	var files []api.RepoFile

	pending := []string{folder}
	for len(pending) > 0 {
		path := pending[0]
		pending = pending[1:]

		items, err := gl.ListTree(projectID, branch, path, false)
		if err != nil {
			return nil, pkgErrors.WrapOf(ErrRemote, err)
		}
		for _, item := range items {
			switch item.Type {
			case "blob":
				content, err := gl.GetFile(projectID, item.Path, branch)
				if err != nil {
					return nil, pkgErrors.WrapOf(ErrRemote, err)
				}
				files = append(files, api.RepoFile{Path: item.Path, Content: content})
			case "tree":
				pending = append(pending, item.Path)
			}
		}
	}
	return files, nil
}
