package orchestrator

import (
	"context"
	"fmt"

	"chatgw/internal/model"
	"chatgw/internal/provider"
)

// Direct 直接分发编排器
// 按能力表供应商名查表后单跳调用
type Direct struct {
	providers Providers
}

// NewDirect 创建直接分发编排器
func NewDirect(providers Providers) *Direct {
	return &Direct{providers: providers}
}

// Run 执行一次供应商调用
func (o *Direct) Run(ctx context.Context, req *model.ChatRequest, capability model.ModelCapability, messageCount int) (*provider.Response, error) {
	p, ok := o.providers[capability.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", capability.Provider)
	}
	return p.Invoke(ctx, req, capability, messageCount)
}
