package model

// Provider 后端供应商标识
type Provider string

const (
	ProviderOpenAI  Provider = "openai"
	ProviderBedrock Provider = "bedrock"
)

// ReasoningEffort 推理强度档位
type ReasoningEffort string

const (
	ReasoningEffortLow    ReasoningEffort = "low"
	ReasoningEffortMedium ReasoningEffort = "medium"
	ReasoningEffortHigh   ReasoningEffort = "high"
)

// ReasoningEffortOptions 全部可选推理强度档位
var ReasoningEffortOptions = []ReasoningEffort{
	ReasoningEffortLow,
	ReasoningEffortMedium,
	ReasoningEffortHigh,
}

const (
	// DefaultModel 未指定模型时的默认模型
	DefaultModel = "gpt-4.1-mini"
	// DefaultTemperature 支持温度的模型在未指定时使用的默认值
	DefaultTemperature = 0.7
	// DefaultMaxOutputTokens 输出 token 上限默认值
	DefaultMaxOutputTokens = 1000
	// MaxOutputTokensCeiling 输出 token 上限最大值
	MaxOutputTokensCeiling = 4096

	// PDFAttachmentMimeType PDF 附件类型
	PDFAttachmentMimeType = "application/pdf"

	// MaxAttachmentBase64Length 单个附件 base64 载荷上限
	MaxAttachmentBase64Length = 2_800_000
	// MaxRequestAttachmentBase64Length 单次请求附件 base64 载荷总量上限
	MaxRequestAttachmentBase64Length = 5_600_000
)

// ImageAttachmentMimeTypes 允许的图片附件类型
var ImageAttachmentMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

// AllowedAttachmentMimeTypes 允许的全部附件类型（图片 + PDF）
var AllowedAttachmentMimeTypes = func() map[string]bool {
	m := map[string]bool{PDFAttachmentMimeType: true}
	for k := range ImageAttachmentMimeTypes {
		m[k] = true
	}
	return m
}()
