package worker

import (
	"log"

	"github.com/sennkr/danmakuTool/internal/event"
	"github.com/sennkr/danmakuTool/internal/service"
)

// StartWordsWorker 订阅识别词更新事件：丢弃旧的解析缓存并立即预热，
// 避免把解析成本留到下一次导入
func StartWordsWorker() {
	event.GlobalBus.Subscribe(event.EventWordsUpdated, func(e event.Event) {
		warningCount, _ := e.Payload.(int)
		if warningCount > 0 {
			log.Printf("Worker: 识别词配置更新, %d 条警告待修正", warningCount)
		}

		service.InvalidateWords()
		svc := service.NewWordsService()
		if _, err := svc.Matcher(); err != nil {
			log.Printf("Worker: 预热识别词缓存失败: %v", err)
		}
	})
}
