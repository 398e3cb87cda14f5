package model

import (
	"sort"
	"strings"
)

// ModelCapability 模型能力表行（静态只读）
// 描述某个模型接受哪些可选请求参数
type ModelCapability struct {
	Provider                 Provider
	SupportsTemperature      bool
	SupportsReasoningEffort  bool
	SupportsWebSearch        bool
	SupportsPreviousResponse bool
	ReasoningEffortOptions   []ReasoningEffort
	DefaultReasoningEffort   ReasoningEffort
}

func openAITemperatureModel() ModelCapability {
	return ModelCapability{
		Provider:                 ProviderOpenAI,
		SupportsTemperature:      true,
		SupportsWebSearch:        true,
		SupportsPreviousResponse: true,
	}
}

func openAIReasoningModel() ModelCapability {
	return ModelCapability{
		Provider:                 ProviderOpenAI,
		SupportsReasoningEffort:  true,
		SupportsWebSearch:        true,
		SupportsPreviousResponse: true,
		ReasoningEffortOptions:   ReasoningEffortOptions,
		DefaultReasoningEffort:   ReasoningEffortLow,
	}
}

func bedrockClaudeModel() ModelCapability {
	return ModelCapability{
		Provider:            ProviderBedrock,
		SupportsTemperature: true,
	}
}

// modelOrder 模型列表顺序（/api/models 按此顺序输出）
var modelOrder = []string{
	"gpt-4.1",
	"gpt-4.1-mini",
	"gpt-5",
	"gpt-5-mini",
	"gpt-5-nano",
	"gpt-5-chat-latest",
	"gpt-5.2",
	"gpt-5.2-pro",
	"o4-mini",
	"o3-deep-research",
	"o4-mini-deep-research",
	"global.anthropic.claude-opus-4-6-v1",
	"global.anthropic.claude-sonnet-4-6",
	"global.anthropic.claude-haiku-4-5-20251001-v1:0",
}

// modelCapabilities 模型能力表
var modelCapabilities = map[string]ModelCapability{
	"gpt-4.1":               openAITemperatureModel(),
	"gpt-4.1-mini":          openAITemperatureModel(),
	"gpt-5":                 openAIReasoningModel(),
	"gpt-5-mini":            openAIReasoningModel(),
	"gpt-5-nano":            openAIReasoningModel(),
	"gpt-5-chat-latest":     openAIReasoningModel(),
	"gpt-5.2":               openAIReasoningModel(),
	"gpt-5.2-pro":           openAIReasoningModel(),
	"o4-mini":               openAIReasoningModel(),
	"o3-deep-research":      openAIReasoningModel(),
	"o4-mini-deep-research": openAIReasoningModel(),

	"global.anthropic.claude-opus-4-6-v1":             bedrockClaudeModel(),
	"global.anthropic.claude-sonnet-4-6":              bedrockClaudeModel(),
	"global.anthropic.claude-haiku-4-5-20251001-v1:0": bedrockClaudeModel(),
}

// LookupCapability 查询模型能力
func LookupCapability(modelID string) (ModelCapability, bool) {
	capability, ok := modelCapabilities[modelID]
	return capability, ok
}

// ModelIDs 返回全部模型 ID（注册顺序）
func ModelIDs() []string {
	ids := make([]string, len(modelOrder))
	copy(ids, modelOrder)
	return ids
}

// AllowedModelList 返回按字典序排列的模型 ID 串（用于错误提示）
func AllowedModelList() string {
	ids := ModelIDs()
	sort.Strings(ids)
	return strings.Join(ids, ", ")
}
