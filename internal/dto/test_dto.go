package dto

// TriggerTestRequest 触发测试请求: 在测试项目的指定分支上重新注入流水线文件
type TriggerTestRequest struct {
	TestingProjectID int    `json:"testingproject_id" binding:"required"`
	BranchName       string `json:"branchname" binding:"required"`
}

// ListTestsQuery 测试(流水线)列表查询参数
type ListTestsQuery struct {
	TestingProjectID int    `form:"testingproject_id" binding:"required"`
	BranchName       string `form:"branchname"`
}

// GetTestQuery 单条测试查询参数
type GetTestQuery struct {
	TestingProjectID int `form:"testingproject_id" binding:"required"`
	PipelineID       int `form:"pipeline_id" binding:"required"`
}
