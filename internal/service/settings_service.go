package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/sennkr/danmakuTool/internal/config"
	"github.com/sennkr/danmakuTool/internal/db"
	"github.com/sennkr/danmakuTool/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsService 读写数据库里的键值设置
type SettingsService struct{}

func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// Get 返回某个键的值，没有记录时返回空串
func (s *SettingsService) Get(key string) (string, error) {
	var cfg model.GlobalConfig
	err := db.DB.First(&cfg, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("读取设置 %q 失败: %w", key, err)
	}
	return cfg.Value, nil
}

// Set 写入某个键的值。写入空串即清除覆盖，回落到配置文件。
func (s *SettingsService) Set(key, value string) error {
	cfg := model.GlobalConfig{Key: key, Value: value}
	if err := db.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&cfg).Error; err != nil {
		return fmt.Errorf("保存设置 %q 失败: %w", key, err)
	}
	return nil
}

// ProviderSettings 返回生效的弹幕源参数：数据库覆盖优先，配置文件兜底。
// 读取设置失败按没有覆盖处理，只记日志。
func (s *SettingsService) ProviderSettings() (baseURL, name, proxy string) {
	cfg := config.AppConfig.Danmaku
	baseURL = s.override(model.ConfigKeyProviderURL, cfg.BaseURL)
	name = s.override(model.ConfigKeyProviderName, cfg.Name)
	proxy = s.override(model.ConfigKeyProviderProxy, "")
	return baseURL, name, proxy
}

func (s *SettingsService) override(key, fallback string) string {
	v, err := s.Get(key)
	if err != nil {
		log.Printf("设置: %v", err)
		return fallback
	}
	if v == "" {
		return fallback
	}
	return v
}
