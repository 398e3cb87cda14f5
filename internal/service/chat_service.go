package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"chatgw/internal/model"
	"chatgw/internal/orchestrator"
)

// ChatService 对话服务 - 业务逻辑层
// 职责: 查能力表，交给编排器执行，整形归一化响应
type ChatService struct {
	orch orchestrator.Orchestrator
}

// NewChatService 创建对话服务
func NewChatService(orch orchestrator.Orchestrator) *ChatService {
	return &ChatService{orch: orch}
}

// Chat 处理对话请求
// 请求必须已经过 Normalize
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	messageCount := len(req.Messages)
	logger := log.With().Str("model", req.Model).Int("message_count", messageCount).Logger()
	logger.Info().Msg("chat request received")

	capability, ok := model.LookupCapability(req.Model)
	if !ok {
		return nil, model.NewBadRequest("Unsupported model: %s. Allowed models: %s",
			req.Model, model.AllowedModelList())
	}

	resp, err := s.orch.Run(ctx, req, capability, messageCount)
	if err != nil {
		if model.IsBadRequest(err) {
			return nil, err
		}
		logger.Error().Err(err).Str("provider", string(capability.Provider)).Msg("provider call failed")
		return nil, fmt.Errorf("provider %s: %w", capability.Provider, err)
	}

	return &model.ChatResponse{
		Message:         resp.Message,
		ResponseID:      resp.ResponseID,
		InputTokens:     resp.InputTokens,
		OutputTokens:    resp.OutputTokens,
		DurationSeconds: resp.DurationSeconds,
	}, nil
}
