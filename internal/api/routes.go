package api

import (
	"github.com/gin-gonic/gin"
)

func InitRoutes(r *gin.Engine) {
	apiGroup := r.Group("/api")
	{
		// 识别词配置
		apiGroup.GET("/words", GetWordsHandler)
		apiGroup.PUT("/words", UpdateWordsHandler)
		apiGroup.POST("/words/test", TestWordsHandler)

		// 弹幕导入
		apiGroup.POST("/import", CreateImportHandler)
		apiGroup.GET("/imports", ListImportsHandler)

		// 弹幕源设置
		apiGroup.GET("/settings", GetSettingsHandler)
		apiGroup.PUT("/settings", UpdateSettingsHandler)
	}
}
