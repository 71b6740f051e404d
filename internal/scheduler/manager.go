package scheduler

import (
	"log"
	"time"

	"github.com/sennkr/danmakuTool/internal/config"
	"github.com/sennkr/danmakuTool/internal/db"
	"github.com/sennkr/danmakuTool/internal/model"
	"github.com/sennkr/danmakuTool/internal/service"
)

// 同一条记录最多自动重试次数
const maxRetries = 3

type Manager struct {
	ticker *time.Ticker
	quit   chan struct{}
}

func NewManager() *Manager {
	interval := time.Duration(config.AppConfig.Scheduler.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Manager{
		ticker: time.NewTicker(interval),
		quit:   make(chan struct{}),
	}
}

func (m *Manager) Start() {
	log.Println("Scheduler started...")
	go func() {
		for {
			select {
			case <-m.ticker.C:
				m.RetryFailedImports()
			case <-m.quit:
				m.ticker.Stop()
				return
			}
		}
	}()
	// 立即执行一次
	go m.RetryFailedImports()
}

func (m *Manager) Stop() {
	close(m.quit)
	log.Println("Scheduler stopped.")
}

// RetryFailedImports 重试失败的导入（弹幕源超时等瞬态错误很常见）
func (m *Manager) RetryFailedImports() {
	var entries []model.ImportLog
	err := db.DB.
		Where("status = ? AND retry_count < ?", model.ImportStatusFailed, maxRetries).
		Find(&entries).Error
	if err != nil {
		log.Printf("Scheduler Error: Failed to fetch import logs: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	log.Printf("Scheduler: Retrying %d failed imports...", len(entries))
	svc := service.NewImportService()
	for i := range entries {
		entry := &entries[i]
		if err := svc.Retry(entry); err != nil {
			log.Printf("Scheduler: Retry for %q failed: %v", entry.Keyword, err)
		}
	}
}
