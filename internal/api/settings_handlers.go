package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sennkr/danmakuTool/internal/model"
	"github.com/sennkr/danmakuTool/internal/service"
)

// GetSettingsHandler 返回当前生效的弹幕源参数（含数据库覆盖）
func GetSettingsHandler(c *gin.Context) {
	baseURL, name, proxy := service.NewSettingsService().ProviderSettings()
	c.JSON(http.StatusOK, gin.H{
		"provider_url":   baseURL,
		"provider_name":  name,
		"provider_proxy": proxy,
	})
}

// UpdateSettingsHandler 写入弹幕源参数覆盖。只更新请求里出现的字段，
// 传空串清除覆盖。
func UpdateSettingsHandler(c *gin.Context) {
	var req struct {
		ProviderURL   *string `json:"provider_url"`
		ProviderName  *string `json:"provider_name"`
		ProviderProxy *string `json:"provider_proxy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewSettingsService()
	for key, value := range map[string]*string{
		model.ConfigKeyProviderURL:   req.ProviderURL,
		model.ConfigKeyProviderName:  req.ProviderName,
		model.ConfigKeyProviderProxy: req.ProviderProxy,
	} {
		if value == nil {
			continue
		}
		if err := svc.Set(key, *value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
