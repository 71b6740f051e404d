package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if AppConfig == nil {
		t.Fatal("AppConfig is nil")
	}

	// Check defaults
	if AppConfig.Server.Port != 8317 {
		t.Errorf("Expected default port 8317, got %d", AppConfig.Server.Port)
	}
	if AppConfig.Server.Mode != "release" {
		t.Errorf("Expected default mode 'release', got %s", AppConfig.Server.Mode)
	}
	if AppConfig.Database.Path != "data/danmaku.db" {
		t.Errorf("Expected default db path 'data/danmaku.db', got %s", AppConfig.Database.Path)
	}
	if AppConfig.Danmaku.Name != "dandan" {
		t.Errorf("Expected default provider name 'dandan', got %s", AppConfig.Danmaku.Name)
	}
	if AppConfig.Scheduler.IntervalMinutes != 30 {
		t.Errorf("Expected default interval 30, got %d", AppConfig.Scheduler.IntervalMinutes)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	os.Setenv("DANMU_SERVER_PORT", "9999")
	defer os.Unsetenv("DANMU_SERVER_PORT")

	err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if AppConfig.Server.Port != 9999 {
		t.Errorf("Expected port 9999 from env, got %d", AppConfig.Server.Port)
	}
}
