package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sennkr/danmakuTool/internal/service"
)

// GetWordsHandler 返回识别词配置原文
func GetWordsHandler(c *gin.Context) {
	svc := service.NewWordsService()
	content, updatedAt, err := svc.Raw()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"content":    content,
		"updated_at": updatedAt,
	})
}

// UpdateWordsHandler 整体覆盖识别词配置，把解析警告返回给操作者
func UpdateWordsHandler(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewWordsService()
	warnings, err := svc.Replace(req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if warnings == nil {
		warnings = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"warnings": warnings,
	})
}

type testWordsRequest struct {
	Text       string `json:"text"`
	Episode    *int   `json:"episode"`
	Season     *int   `json:"season"`
	SourceName string `json:"source_name"`
}

// TestWordsHandler 把一条样例丢进三个入口试跑，供操作者调试规则。
// 不落库，不访问弹幕源。
func TestWordsHandler(c *gin.Context) {
	var req testWordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewWordsService()
	m, err := svc.Matcher()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	preText, preEp, preSeason, preChanged := m.PreprocessSearchKeyword(req.Text, req.Episode, req.Season)
	postText, postSeason, postChanged, postMeta := m.PostprocessTitle(req.Text, req.Season, req.SourceName)
	recText, recEp, recSeason, recChanged, recMeta := m.RecognizeTitle(req.Text, req.Episode, req.Season, req.SourceName)

	c.JSON(http.StatusOK, gin.H{
		"preprocess": gin.H{
			"text":    preText,
			"episode": preEp,
			"season":  preSeason,
			"changed": preChanged,
		},
		"postprocess": gin.H{
			"text":     postText,
			"season":   postSeason,
			"changed":  postChanged,
			"metadata": postMeta,
		},
		"recognize": gin.H{
			"text":     recText,
			"episode":  recEp,
			"season":   recSeason,
			"changed":  recChanged,
			"metadata": recMeta,
		},
	})
}
