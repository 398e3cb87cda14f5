package orchestrator

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"chatgw/internal/model"
	"chatgw/internal/provider"
)

// Orchestrator 编排器接口
// 职责: 按能力表选定供应商适配器并执行一次调用
type Orchestrator interface {
	Run(ctx context.Context, req *model.ChatRequest, capability model.ModelCapability, messageCount int) (*provider.Response, error)
}

// Providers 供应商适配器注册表
type Providers map[model.Provider]provider.ChatProvider

const (
	// KindDirect 直接分发
	KindDirect = "direct"
	// KindGraph 图执行引擎分发 (Eino)
	KindGraph = "graph"
)

// New 按配置创建编排器，非法取值回退到 direct
func New(kind string, providers Providers) (Orchestrator, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindGraph:
		return NewGraph(providers)
	case KindDirect, "":
		return NewDirect(providers), nil
	default:
		log.Warn().Str("orchestrator", kind).Msg("unsupported orchestrator kind, falling back to direct")
		return NewDirect(providers), nil
	}
}
