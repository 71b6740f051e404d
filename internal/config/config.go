package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Danmaku   DanmakuConfig   `mapstructure:"danmaku"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug or release
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DanmakuConfig struct {
	BaseURL string `mapstructure:"base_url"` // 弹幕源 API 地址 (dandanplay 兼容)
	Name    string `mapstructure:"name"`     // 弹幕源名称，识别词规则里的 source 与之比较
	SaveDir string `mapstructure:"save_dir"` // 弹幕文件落盘目录
}

type SchedulerConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

var AppConfig *Config

func LoadConfig(configPath string) error {
	v := viper.New()

	// 默认值
	v.SetDefault("server.port", 8317)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.path", "data/danmaku.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("danmaku.base_url", "https://api.dandanplay.net")
	v.SetDefault("danmaku.name", "dandan")
	v.SetDefault("danmaku.save_dir", "data/danmaku")
	v.SetDefault("scheduler.interval_minutes", 30)

	// 配置文件路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}

	// 环境变量替换 (使用 DANMU_ 前缀)
	// 比如 DANMU_SERVER_PORT=9090
	v.SetEnvPrefix("DANMU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay, use defaults
		fmt.Println("Config file not found, using defaults")
	}

	AppConfig = &Config{}
	if err := v.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}
