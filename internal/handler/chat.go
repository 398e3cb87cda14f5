package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatgw/internal/model"
	"chatgw/internal/service"
)

// ChatHandler 对话处理器
type ChatHandler struct {
	svc *service.ChatService
}

// NewChatHandler 创建对话处理器
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat 对话接口
// 校验失败返回 400，供应商调用失败返回 502
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	if err := req.Normalize(); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    40002,
			Message: "Invalid chat request",
			Detail:  err.Error(),
		})
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), &req)
	if err != nil {
		if model.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{
				Code:    40002,
				Message: "Invalid chat request",
				Detail:  err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, model.ErrorResponse{
			Code:    50201,
			Message: "Provider call failed",
			Detail:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
