package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sennkr/danmakuTool/internal/db"
	"github.com/sennkr/danmakuTool/internal/event"
	"github.com/sennkr/danmakuTool/internal/model"
	"github.com/sennkr/danmakuTool/internal/words"
	"gorm.io/gorm"
)

// WordsService 负责识别词配置的读写与解析缓存
type WordsService struct{}

func NewWordsService() *WordsService {
	return &WordsService{}
}

// 进程内共享的解析缓存。首次使用时从数据库加载并解析一次，
// 保存新配置时整体替换，不做增量更新。
var (
	matcherMu     sync.RWMutex
	cachedMatcher *words.Matcher
)

// Matcher 返回当前生效的规则匹配器，必要时从数据库懒加载。
// 加载在互斥锁内完成，并发的首次调用只会解析一次。
func (s *WordsService) Matcher() (*words.Matcher, error) {
	matcherMu.RLock()
	m := cachedMatcher
	matcherMu.RUnlock()
	if m != nil {
		return m, nil
	}

	matcherMu.Lock()
	defer matcherMu.Unlock()
	if cachedMatcher != nil {
		return cachedMatcher, nil
	}

	content, _, err := s.Raw()
	if err != nil {
		return nil, err
	}
	m, warnings := words.Compile(content)
	for _, w := range warnings {
		log.Printf("识别词: %s", w)
	}
	cachedMatcher = m
	return m, nil
}

// Raw 返回当前保存的配置原文和更新时间。没有记录时返回空文本。
func (s *WordsService) Raw() (string, time.Time, error) {
	var cfg model.CustomWordConfig
	err := db.DB.Order("id").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", time.Time{}, nil
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("读取识别词配置失败: %w", err)
	}
	return cfg.Content, cfg.UpdatedAt, nil
}

// Replace 整体覆盖配置原文并重建解析缓存，返回新文本的解析警告
// 供操作者修正。并发保存按后写者生效处理。
func (s *WordsService) Replace(content string) ([]string, error) {
	var cfg model.CustomWordConfig
	err := db.DB.Order("id").First(&cfg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg = model.CustomWordConfig{Content: content}
		if err := db.DB.Create(&cfg).Error; err != nil {
			return nil, fmt.Errorf("保存识别词配置失败: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("读取识别词配置失败: %w", err)
	default:
		cfg.Content = content
		if err := db.DB.Save(&cfg).Error; err != nil {
			return nil, fmt.Errorf("保存识别词配置失败: %w", err)
		}
	}

	m, warnings := words.Compile(content)
	matcherMu.Lock()
	cachedMatcher = m
	matcherMu.Unlock()

	log.Printf("识别词: 配置已更新, %d 条规则, %d 条警告", len(m.Rules()), len(warnings))
	event.GlobalBus.Publish(event.EventWordsUpdated, len(warnings))
	return warnings, nil
}

// InvalidateWords 丢弃解析缓存，下次使用时重新从数据库加载
func InvalidateWords() {
	matcherMu.Lock()
	cachedMatcher = nil
	matcherMu.Unlock()
}
