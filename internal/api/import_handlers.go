package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sennkr/danmakuTool/internal/db"
	"github.com/sennkr/danmakuTool/internal/model"
	"github.com/sennkr/danmakuTool/internal/service"
)

// CreateImportHandler 对一个关键字触发一次弹幕导入。
// 同步执行，失败的记录会被调度器自动重试。
func CreateImportHandler(c *gin.Context) {
	var req struct {
		Keyword string `json:"keyword" binding:"required"`
		Episode int    `json:"episode"`
		Season  int    `json:"season"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewImportService()
	entry, err := svc.Run(req.Keyword, req.Episode, req.Season)
	if entry == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// 导入失败也返回记录本身，错误信息在 error_msg 字段里
	c.JSON(http.StatusOK, gin.H{"import": entry})
}

// ListImportsHandler 返回最近的导入记录
func ListImportsHandler(c *gin.Context) {
	var entries []model.ImportLog
	if err := db.DB.Order("id desc").Limit(50).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": entries})
}
