package config

import (
	"fmt"

	"github.com/spf13/viper"
)

var GlobalConfig *Config

// Config 全局配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Crypto   CryptoConfig   `mapstructure:"crypto"`
	Log      LogConfig      `mapstructure:"log"`
	GitLab   GitLabConfig   `mapstructure:"gitlab"`
	Sync     SyncConfig     `mapstructure:"sync"`
	DB       interface{}    // 数据库连接,运行时注入
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	LogLevel        string `mapstructure:"log_level"`         // SQL日志级别: silent/error/warn/info
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret             string `mapstructure:"secret"`
	AccessTokenExpire  int    `mapstructure:"access_token_expire"`  // 秒
	RefreshTokenExpire int    `mapstructure:"refresh_token_expire"` // 秒
}

// CryptoConfig 加密配置
type CryptoConfig struct {
	AESKey string `mapstructure:"aes_key"` // 32字节
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, console
	Output     string `mapstructure:"output"` // stdout, file
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// GitLabConfig GitLab编排配置
// 机器人Token策略与流水线模板位置从这里注入, 不使用进程级全局变量
type GitLabConfig struct {
	BotName          string   `mapstructure:"bot_name"`          // 机器人Token名称
	BotScopes        []string `mapstructure:"bot_scopes"`        // Token授权范围
	TokenTTLMonths   int      `mapstructure:"token_ttl_months"`  // Token有效期(月)
	PipelineTplDir   string   `mapstructure:"pipeline_tpl_dir"`  // CI模板目录
	RequestTimeout   int      `mapstructure:"request_timeout"`   // 单次远端调用超时(秒)
	TestingSuffix    string   `mapstructure:"testing_suffix"`    // 测试项目名后缀
	ReservedBranches []string `mapstructure:"reserved_branches"` // 不参与同步的分支
}

// SyncConfig 分支同步定时任务配置
type SyncConfig struct {
	Enabled bool   `mapstructure:"enabled"` // 是否启用定时同步
	Cron    string `mapstructure:"cron"`    // Cron表达式
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// 设置配置文件路径
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// 读取环境变量
	v.AutomaticEnv()

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 解析配置
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	applyGitLabDefaults(&config.GitLab)

	// 设置全局配置
	GlobalConfig = config

	return config, nil
}

// applyGitLabDefaults 填充GitLab编排配置默认值
func applyGitLabDefaults(cfg *GitLabConfig) {
	if cfg.BotName == "" {
		cfg.BotName = "ptbot"
	}
	if len(cfg.BotScopes) == 0 {
		cfg.BotScopes = []string{"api"}
	}
	if cfg.TokenTTLMonths <= 0 {
		cfg.TokenTTLMonths = 11
	}
	if cfg.PipelineTplDir == "" {
		cfg.PipelineTplDir = "configs/pipeline"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30
	}
	if cfg.TestingSuffix == "" {
		cfg.TestingSuffix = "peertesting"
	}
	if len(cfg.ReservedBranches) == 0 {
		cfg.ReservedBranches = []string{"main"}
	}
}

// GetDSN 获取数据库DSN
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
