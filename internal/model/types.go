package model

import (
	"gorm.io/gorm"
)

// CustomWordConfig 自定义识别词配置原文。整库只保留一条记录，
// 每次保存都是整体覆盖（没有增量修改）。
type CustomWordConfig struct {
	gorm.Model
	Content string // 多行规则文本，语法见 internal/words
}

// ImportLog 记录一次弹幕导入
type ImportLog struct {
	gorm.Model
	Keyword      string `json:"keyword"`       // 原始搜索关键字
	SearchWord   string `json:"search_word"`   // 预处理后实际发给弹幕源的关键字
	MatchedTitle string `json:"matched_title"` // 后处理之后的条目标题
	Provider     string `json:"provider"`      // 弹幕源名称
	Episode      int    `json:"episode"`       // 0 表示未指定
	Season       int    `json:"season"`        // 0 表示未指定
	TMDBID       int    `json:"tmdbid"`        // 元数据替换规则给出的 TMDB ID
	CommentCount int    `json:"comment_count"`
	RetryCount   int    `json:"retry_count"`
	Status       string `json:"status"` // "pending", "completed", "failed"
	ErrorMsg     string `json:"error_msg"`
}

// GlobalConfig 存储键值设置，用于在不改配置文件的情况下覆盖弹幕源参数。
// 值为空串等价于没有覆盖。
type GlobalConfig struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const (
	ConfigKeyProviderURL   = "danmaku_provider_url"
	ConfigKeyProviderName  = "danmaku_provider_name"
	ConfigKeyProviderProxy = "danmaku_provider_proxy"
)

const (
	ImportStatusPending   = "pending"
	ImportStatusCompleted = "completed"
	ImportStatusFailed    = "failed"
)
