package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/verse-memo-bot/internal/config"
	"github.com/fachebot/verse-memo-bot/internal/logger"
	"github.com/fachebot/verse-memo-bot/internal/summarizer"
	"github.com/robfig/cron/v3"
)

// practiceNotifier 推送背诵摘要（便于测试注入 mock）
type practiceNotifier interface {
	Notify(ctx context.Context, content string) error
}

type Scheduler struct {
	cron     *cron.Cron
	notifier practiceNotifier
	options  summarizer.Options
	config   *config.Practice
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
}

// locUTC UTC 标准时间（UTC）
var locUTC = time.UTC

func NewScheduler(notifier practiceNotifier, options summarizer.Options, cfg *config.Practice) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(locUTC)),
		notifier: notifier,
		options:  options,
		config:   cfg,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	if s.config.Cron == "" {
		logger.Infof("[Scheduler] 未配置练习推送任务，调度器空转")
		return nil
	}

	// 注册每日练习推送任务
	_, err := s.cron.AddFunc(s.config.Cron, s.runPracticePush)
	if err != nil {
		return fmt.Errorf("注册练习推送任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，练习推送任务: %s", s.config.Cron)
	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// runPracticePush 执行练习推送任务（cron 触发）
func (s *Scheduler) runPracticePush() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	logger.Infof("[Scheduler] 开始执行练习推送任务")
	if err := s.pushPassages(ctx); err != nil {
		logger.Errorf("[Scheduler] 练习推送失败: %v", err)
		return
	}
	logger.Infof("[Scheduler] 练习推送任务完成")
}

// pushPassages 重新读取段落目录，逐个生成摘要并推送。
// 目录每次运行时重读，不保留任何跨次状态，漏跑无需恢复。
func (s *Scheduler) pushPassages(ctx context.Context) error {
	entries, err := os.ReadDir(s.config.PassageDir)
	if err != nil {
		return fmt.Errorf("读取段落目录失败: %w", err)
	}

	count := 0
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			logger.Infof("[Scheduler] 推送已取消")
			return nil
		default:
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		path := filepath.Join(s.config.PassageDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Errorf("[Scheduler] 读取段落文件失败, %s: %v", path, err)
			continue
		}

		summary := summarizer.Summarize(string(data), s.options)
		if strings.TrimSpace(summary) == "" {
			logger.Warnf("[Scheduler] 段落文件为空，跳过: %s", path)
			continue
		}

		title := strings.TrimSuffix(entry.Name(), ".txt")
		content := fmt.Sprintf("📖 %s\n%s", title, summary)
		if err := s.notifier.Notify(ctx, content); err != nil {
			logger.Errorf("[Scheduler] 推送段落摘要失败, %s: %v", title, err)
			continue
		}
		count++
	}

	logger.Infof("[Scheduler] 共推送 %d 个段落摘要", count)
	return nil
}
