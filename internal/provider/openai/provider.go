package openai

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"chatgw/internal/model"
	"chatgw/internal/provider"
)

// Provider OpenAI Responses API 适配器
type Provider struct {
	client *Client
}

// NewProvider 创建 OpenAI 适配器
func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// Invoke 转发请求到 Responses API 并整形响应
func (p *Provider) Invoke(ctx context.Context, req *model.ChatRequest, capability model.ModelCapability, messageCount int) (*provider.Response, error) {
	input := make([]InputMessage, 0, len(req.Messages))
	for i := range req.Messages {
		parts, err := buildContentParts(&req.Messages[i])
		if err != nil {
			return nil, err
		}
		if len(parts) == 0 {
			continue
		}
		input = append(input, InputMessage{Role: req.Messages[i].Role, Content: parts})
	}

	apiReq := &Request{
		Model:           req.Model,
		Input:           input,
		MaxOutputTokens: *req.MaxOutputTokens,
	}
	if req.SystemPrompt != "" {
		apiReq.Instructions = &req.SystemPrompt
	}
	if capability.SupportsTemperature && req.Temperature != nil {
		apiReq.Temperature = req.Temperature
	}
	if capability.SupportsReasoningEffort && req.ReasoningEffort != "" {
		apiReq.Reasoning = &Reasoning{Effort: string(req.ReasoningEffort)}
	}
	if req.WebSearch() {
		apiReq.Tools = []Tool{{Type: "web_search"}}
	}
	if req.PreviousResponseID != "" {
		apiReq.PreviousResponseID = req.PreviousResponseID
	}

	start := time.Now()
	resp, err := p.client.CreateResponse(ctx, apiReq)
	if err != nil {
		return nil, err
	}
	durationMs := time.Since(start).Milliseconds()

	content := resp.OutputText()

	var inputTokens, outputTokens *int
	if resp.Usage != nil {
		inputTokens = &resp.Usage.InputTokens
		outputTokens = &resp.Usage.OutputTokens
	}

	event := log.Info().
		Int64("openai_duration_ms", durationMs).
		Str("model", resp.Model).
		Int("message_count", messageCount).
		Bool("web_search_enabled", req.WebSearch()).
		Int("response_length", len(content)).
		Str("response_id", resp.ID)
	if resp.Usage != nil {
		event = event.
			Int("usage_prompt_tokens", resp.Usage.InputTokens).
			Int("usage_completion_tokens", resp.Usage.OutputTokens)
	}
	event.Msg("chat response generated")

	return &provider.Response{
		Message:         content,
		ResponseID:      resp.ID,
		InputTokens:     inputTokens,
		OutputTokens:    outputTokens,
		DurationSeconds: provider.RoundSeconds(durationMs),
	}, nil
}

// buildContentParts 将内部消息转换为 Responses API 内容分片
func buildContentParts(message *model.Message) ([]ContentPart, error) {
	var parts []ContentPart
	if strings.TrimSpace(message.Content) != "" {
		parts = append(parts, ContentPart{Type: "input_text", Text: message.Content})
	}

	for i := range message.Attachments {
		attachment := &message.Attachments[i]
		switch {
		case attachment.IsImage():
			parts = append(parts, ContentPart{Type: "input_image", ImageURL: attachment.DataURL})
		case attachment.MimeType == model.PDFAttachmentMimeType:
			parts = append(parts, ContentPart{
				Type:     "input_file",
				Filename: attachment.Name,
				FileData: attachment.DataURL,
			})
		default:
			return nil, model.NewBadRequest("Unsupported attachment mimeType: %s", attachment.MimeType)
		}
	}

	return parts, nil
}
