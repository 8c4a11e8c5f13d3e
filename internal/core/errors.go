package core

import (
	pkgErrors "peertest/pkg/responses"
)

// 编排层错误哨兵, 服务层用 errors.Is 识别后映射为统一响应
var (
	ErrAuth             = pkgErrors.New(pkgErrors.CodeAuthError, "GitLab认证失败")
	ErrDuplicateProject = pkgErrors.New(pkgErrors.CodeConflict, "目标命名空间下已存在同名项目")
	ErrForkFailed       = pkgErrors.New(pkgErrors.CodeRemoteError, "Fork项目失败")
	ErrBranchNotFound   = pkgErrors.New(pkgErrors.CodeNotFound, "分支不存在")
	ErrCommitFailed     = pkgErrors.New(pkgErrors.CodeRemoteError, "创建提交失败")
	ErrCommitNotLinked  = pkgErrors.New(pkgErrors.CodeNotFound, "提交未关联测试项目")
	ErrInvalidRating    = pkgErrors.New(pkgErrors.CodeBadRequest, "评分必须在1到5之间")
	ErrRemote           = pkgErrors.New(pkgErrors.CodeRemoteError, "GitLab远端调用失败")
	ErrInjectionFailed  = pkgErrors.New(pkgErrors.CodeRemoteError, "注入流水线文件失败")
)
