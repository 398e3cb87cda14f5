package model

// ChatResponse 归一化后的对话响应（OpenAI 与 Bedrock 共用同一形状）
type ChatResponse struct {
	Message         string  `json:"message"`
	ResponseID      string  `json:"responseId"`
	InputTokens     *int    `json:"inputTokens"`
	OutputTokens    *int    `json:"outputTokens"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// ModelMetadata /api/models 返回的模型元数据行
type ModelMetadata struct {
	ID                       string            `json:"id"`
	SupportsTemperature      bool              `json:"supportsTemperature"`
	SupportsReasoningEffort  bool              `json:"supportsReasoningEffort"`
	ReasoningEffortOptions   []ReasoningEffort `json:"reasoningEffortOptions"`
	DefaultReasoningEffort   *ReasoningEffort  `json:"defaultReasoningEffort"`
	SupportsWebSearch        bool              `json:"supportsWebSearch"`
	SupportsPreviousResponse bool              `json:"supportsPreviousResponse"`
}

// ListModelMetadata 按注册顺序导出模型能力表
func ListModelMetadata() []ModelMetadata {
	rows := make([]ModelMetadata, 0, len(modelOrder))
	for _, id := range modelOrder {
		capability := modelCapabilities[id]

		options := capability.ReasoningEffortOptions
		if options == nil {
			options = []ReasoningEffort{}
		}

		var defaultEffort *ReasoningEffort
		if capability.DefaultReasoningEffort != "" {
			effort := capability.DefaultReasoningEffort
			defaultEffort = &effort
		}

		rows = append(rows, ModelMetadata{
			ID:                       id,
			SupportsTemperature:      capability.SupportsTemperature,
			SupportsReasoningEffort:  capability.SupportsReasoningEffort,
			ReasoningEffortOptions:   options,
			DefaultReasoningEffort:   defaultEffort,
			SupportsWebSearch:        capability.SupportsWebSearch,
			SupportsPreviousResponse: capability.SupportsPreviousResponse,
		})
	}
	return rows
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
