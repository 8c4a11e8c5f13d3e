package constants

// GitLab同步相关固定值
const (
	// ReservedBranch 保留分支, 不参与同伴分支同步
	ReservedBranch = "main"

	// TestPlaceholderPath 新建分支上测试目录的占位文件
	TestPlaceholderPath = "test/init.txt"
	// TestPlaceholderBody 占位文件固定内容
	TestPlaceholderBody = "init data"

	// CISkipSuffix 阻止流水线递归触发的提交信息后缀
	CISkipSuffix = " [ci skip]"

	// StarGlyph 评审星级符号, 1~5个前缀表示评分
	StarGlyph = "⭐"
	RatingMin = 1
	RatingMax = 5
)

// CI注入的固定文件名
const (
	PipelineEnvFile    = ".env"
	PipelineScriptFile = "detect_and_test.sh"
	PipelineYamlFile   = ".gitlab-ci.yml"
)

// JWT 相关
const (
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// 状态
const (
	StatusEnabled  int8 = 1
	StatusDisabled int8 = 0
)
