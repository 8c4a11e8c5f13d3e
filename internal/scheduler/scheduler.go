package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"peertest/internal/pkg/config"
	"peertest/internal/service"
)

// Scheduler 调度器
type Scheduler struct {
	cron       *cron.Cron
	logger     *zap.Logger
	projectSvc service.ProjectService
	entries    map[string]cron.EntryID
}

// NewScheduler 创建调度器
func NewScheduler(logger *zap.Logger, projectSvc service.ProjectService) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:       c,
		logger:     logger,
		projectSvc: projectSvc,
		entries:    make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.Config) error {
	log := s.logger.Sugar()

	if !cfg.Sync.Enabled {
		log.Info("未启用定时分支同步，调度器不启动")
		return nil
	}

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.Sync.Cron
	if cronExpr == "" {
		cronExpr = "0 */10 * * * *" // 默认: 每10分钟
		log.Warnf("未配置sync.cron，使用默认值: %s", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 分支矩阵同步")
		if err := s.projectSvc.SynchronizeAll(); err != nil {
			log.Errorf("分支矩阵同步任务执行失败: %v", err)
		}
	})
	if err != nil {
		log.Errorf("注册分支同步任务失败: cron=%v err=%v", cronExpr, err)
		return err
	}

	s.entries["branch_sync"] = entryID
	log.Infof("分支同步任务已注册: %s entry_id=%d", cronExpr, entryID)

	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器（等待正在执行的任务完成）
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// TriggerSync 手动触发一次分支同步
func (s *Scheduler) TriggerSync() error {
	s.logger.Info("手动触发分支矩阵同步")
	return s.projectSvc.SynchronizeAll()
}
