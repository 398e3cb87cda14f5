package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatgw/internal/model"
)

// ModelsHandler 模型列表处理器
type ModelsHandler struct{}

// NewModelsHandler 创建模型列表处理器
func NewModelsHandler() *ModelsHandler {
	return &ModelsHandler{}
}

// List 列出全部模型及其可配置参数
func (h *ModelsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, model.ListModelMetadata())
}
