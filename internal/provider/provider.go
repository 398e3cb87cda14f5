package provider

import (
	"context"
	"math"

	"chatgw/internal/model"
)

// Response 供应商调用的归一化结果
type Response struct {
	Message         string
	ResponseID      string
	InputTokens     *int
	OutputTokens    *int
	DurationSeconds float64
}

// ChatProvider 供应商适配器接口
// 实现方收到的请求已经过 Normalize，只负责一次外呼与响应整形
type ChatProvider interface {
	Invoke(ctx context.Context, req *model.ChatRequest, capability model.ModelCapability, messageCount int) (*Response, error)
}

// RoundSeconds 将耗时毫秒数换算为保留两位小数的秒
func RoundSeconds(durationMs int64) float64 {
	return math.Round(float64(durationMs)/10) / 100
}
