package bedrock

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/rs/zerolog/log"

	"chatgw/internal/config"
	"chatgw/internal/model"
	"chatgw/internal/provider"
)

// imageFormats 附件 MIME 类型到 Converse 图片格式的映射
var imageFormats = map[string]types.ImageFormat{
	"image/png":  types.ImageFormatPng,
	"image/jpeg": types.ImageFormatJpeg,
	"image/webp": types.ImageFormatWebp,
	"image/gif":  types.ImageFormatGif,
}

// Provider Amazon Bedrock Converse API 适配器
type Provider struct {
	client *bedrockruntime.Client
}

// NewProvider 创建 Bedrock 适配器
// 未显式配置 AK/SK 时走 SDK 默认凭证链
func NewProvider(cfg *config.BedrockConfig) (*Provider, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Provider{client: bedrockruntime.NewFromConfig(awsCfg)}, nil
}

// Invoke 转发请求到 Converse API 并整形响应
func (p *Provider) Invoke(ctx context.Context, req *model.ChatRequest, capability model.ModelCapability, messageCount int) (*provider.Response, error) {
	messages, err := buildConverseMessages(req.Messages)
	if err != nil {
		return nil, err
	}

	inferenceConfig := &types.InferenceConfiguration{
		MaxTokens: aws.Int32(int32(*req.MaxOutputTokens)),
	}
	if capability.SupportsTemperature && req.Temperature != nil {
		inferenceConfig.Temperature = aws.Float32(float32(*req.Temperature))
	}

	converseReq := &bedrockruntime.ConverseInput{
		ModelId:         aws.String(req.Model),
		Messages:        messages,
		InferenceConfig: inferenceConfig,
	}
	if req.SystemPrompt != "" {
		converseReq.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: req.SystemPrompt},
		}
	}

	start := time.Now()
	converseResp, err := p.client.Converse(ctx, converseReq)
	if err != nil {
		return nil, fmt.Errorf("converse: %w", err)
	}
	durationMs := time.Since(start).Milliseconds()

	content := extractText(converseResp)

	var inputTokens, outputTokens *int
	if converseResp.Usage != nil {
		if converseResp.Usage.InputTokens != nil {
			tokens := int(*converseResp.Usage.InputTokens)
			inputTokens = &tokens
		}
		if converseResp.Usage.OutputTokens != nil {
			tokens := int(*converseResp.Usage.OutputTokens)
			outputTokens = &tokens
		}
	}

	responseID, _ := awsmiddleware.GetRequestIDMetadata(converseResp.ResultMetadata)

	log.Info().
		Int64("bedrock_duration_ms", durationMs).
		Str("model", req.Model).
		Int("message_count", messageCount).
		Int("response_length", len(content)).
		Str("response_id", responseID).
		Msg("chat response generated")

	return &provider.Response{
		Message:         content,
		ResponseID:      responseID,
		InputTokens:     inputTokens,
		OutputTokens:    outputTokens,
		DurationSeconds: provider.RoundSeconds(durationMs),
	}, nil
}

// buildConverseMessages 将内部消息转换为 Converse API 消息
// 图片/PDF 附件解码为原始字节后作为 image/document 内容块
func buildConverseMessages(messages []model.Message) ([]types.Message, error) {
	converseMessages := make([]types.Message, 0, len(messages))

	for i := range messages {
		message := &messages[i]

		if message.Role == "assistant" {
			converseMessages = append(converseMessages, types.Message{
				Role: types.ConversationRoleAssistant,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: message.Content},
				},
			})
			continue
		}

		var blocks []types.ContentBlock
		if message.Content != "" {
			blocks = append(blocks, &types.ContentBlockMemberText{Value: message.Content})
		}

		for j := range message.Attachments {
			block, err := buildAttachmentBlock(&message.Attachments[j])
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, block)
		}

		if len(blocks) == 0 {
			blocks = append(blocks, &types.ContentBlockMemberText{Value: message.Content})
		}

		converseMessages = append(converseMessages, types.Message{
			Role:    types.ConversationRoleUser,
			Content: blocks,
		})
	}

	return converseMessages, nil
}

func buildAttachmentBlock(attachment *model.Attachment) (types.ContentBlock, error) {
	payload, err := attachment.Payload()
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, model.NewBadRequest("dataUrl payload is not valid base64")
	}

	if format, ok := imageFormats[attachment.MimeType]; ok {
		return &types.ContentBlockMemberImage{
			Value: types.ImageBlock{
				Format: format,
				Source: &types.ImageSourceMemberBytes{Value: data},
			},
		}, nil
	}

	if attachment.MimeType == model.PDFAttachmentMimeType {
		name := attachment.Name
		if name == "" {
			name = "document"
		}
		return &types.ContentBlockMemberDocument{
			Value: types.DocumentBlock{
				Format: types.DocumentFormatPdf,
				Name:   aws.String(name),
				Source: &types.DocumentSourceMemberBytes{Value: data},
			},
		}, nil
	}

	return nil, model.NewBadRequest("Unsupported attachment mimeType: %s", attachment.MimeType)
}

// extractText 聚合 Converse 输出消息中的全部文本块
func extractText(resp *bedrockruntime.ConverseOutput) string {
	output, ok := resp.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return ""
	}

	var text string
	for _, block := range output.Value.Content {
		if textBlock, ok := block.(*types.ContentBlockMemberText); ok {
			text += textBlock.Value
		}
	}
	return text
}
