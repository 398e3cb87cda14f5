package model

import "strings"

// Attachment 用户消息附件（base64 data URL 承载）
type Attachment struct {
	Name     string `json:"name" binding:"required"`
	MimeType string `json:"mimeType" binding:"required"`
	DataURL  string `json:"dataUrl" binding:"required"`
}

// Payload 返回附件的 base64 载荷（同时校验 data URL 格式与 MIME 一致性）
func (a *Attachment) Payload() (string, error) {
	mimeType, payload, err := ParseDataURL(a.DataURL)
	if err != nil {
		return "", err
	}
	if mimeType != a.MimeType {
		return "", NewBadRequest("mimeType must match dataUrl content type")
	}
	return payload, nil
}

// IsImage 是否图片附件
func (a *Attachment) IsImage() bool {
	return ImageAttachmentMimeTypes[a.MimeType]
}

// Message 对话消息
type Message struct {
	Role        string       `json:"role" binding:"required,oneof=user assistant"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments" binding:"omitempty,dive"`
}

// ChatRequest 对话请求
// Normalize 按模型能力表校验并就地补默认值，必须在转发前调用
type ChatRequest struct {
	Messages           []Message       `json:"messages" binding:"omitempty,dive"`
	Model              string          `json:"model"`
	SystemPrompt       string          `json:"systemPrompt"`
	Temperature        *float64        `json:"temperature"`
	ReasoningEffort    ReasoningEffort `json:"reasoningEffort"`
	WebSearchEnabled   *bool           `json:"webSearchEnabled"`
	MaxOutputTokens    *int            `json:"maxOutputTokens"`
	PreviousResponseID string          `json:"previousResponseId"`
}

// Normalize 校验请求并补默认值
// 规则与模型能力表对应: 不支持的参数显式给出时报错，
// webSearchEnabled/previousResponseId 在不支持时静默清除
func (r *ChatRequest) Normalize() error {
	if r.Messages == nil {
		return NewBadRequest("messages is required")
	}

	if r.Model == "" {
		r.Model = DefaultModel
	}

	capability, ok := LookupCapability(r.Model)
	if !ok {
		return NewBadRequest("Unsupported model: %s. Allowed models: %s", r.Model, AllowedModelList())
	}

	// 显式给出 0 同样视为越界，缺省时才补默认值
	if r.MaxOutputTokens == nil {
		tokens := DefaultMaxOutputTokens
		r.MaxOutputTokens = &tokens
	}
	if *r.MaxOutputTokens < 1 || *r.MaxOutputTokens > MaxOutputTokensCeiling {
		return NewBadRequest("maxOutputTokens must be between 1 and %d", MaxOutputTokensCeiling)
	}

	if r.Temperature != nil && (*r.Temperature < 0 || *r.Temperature > 2) {
		return NewBadRequest("temperature must be between 0 and 2")
	}

	if err := r.normalizeCapabilityParams(capability); err != nil {
		return err
	}

	return r.validateAttachments()
}

func (r *ChatRequest) normalizeCapabilityParams(capability ModelCapability) error {
	if capability.SupportsTemperature {
		if r.Temperature == nil {
			temperature := DefaultTemperature
			r.Temperature = &temperature
		}
	} else if r.Temperature != nil {
		return NewBadRequest("temperature is not supported for model: %s", r.Model)
	}

	if capability.SupportsReasoningEffort {
		if r.ReasoningEffort == "" {
			r.ReasoningEffort = capability.DefaultReasoningEffort
		} else if !containsEffort(capability.ReasoningEffortOptions, r.ReasoningEffort) {
			return NewBadRequest("Invalid reasoningEffort for model %s: %s. Supported options: %s",
				r.Model, r.ReasoningEffort, joinEfforts(capability.ReasoningEffortOptions))
		}
	} else if r.ReasoningEffort != "" {
		return NewBadRequest("reasoningEffort is not supported for model: %s", r.Model)
	}

	// Bedrock 系模型不支持的功能静默关闭
	if r.WebSearchEnabled == nil {
		enabled := true
		r.WebSearchEnabled = &enabled
	}
	if !capability.SupportsWebSearch {
		disabled := false
		r.WebSearchEnabled = &disabled
	}
	if !capability.SupportsPreviousResponse {
		r.PreviousResponseID = ""
	}

	return nil
}

func (r *ChatRequest) validateAttachments() error {
	total := 0
	for i := range r.Messages {
		message := &r.Messages[i]
		if len(message.Attachments) > 0 && message.Role != "user" {
			return NewBadRequest("Attachments are only supported for user messages")
		}
		for j := range message.Attachments {
			attachment := &message.Attachments[j]
			if !AllowedAttachmentMimeTypes[attachment.MimeType] {
				return NewBadRequest("Unsupported attachment mimeType: %s", attachment.MimeType)
			}
			payload, err := attachment.Payload()
			if err != nil {
				return err
			}
			if len(payload) > MaxAttachmentBase64Length {
				return NewBadRequest("Attachment dataUrl is too large: limit is %d base64 chars",
					MaxAttachmentBase64Length)
			}
			total += len(payload)
		}
	}
	if total > MaxRequestAttachmentBase64Length {
		return NewBadRequest("Total request attachment payload is too large: limit is %d base64 chars",
			MaxRequestAttachmentBase64Length)
	}
	return nil
}

// WebSearch 返回归一化后的 web 搜索开关
func (r *ChatRequest) WebSearch() bool {
	return r.WebSearchEnabled != nil && *r.WebSearchEnabled
}

func containsEffort(options []ReasoningEffort, effort ReasoningEffort) bool {
	for _, option := range options {
		if option == effort {
			return true
		}
	}
	return false
}

func joinEfforts(options []ReasoningEffort) string {
	parts := make([]string, len(options))
	for i, option := range options {
		parts[i] = string(option)
	}
	return strings.Join(parts, ", ")
}
