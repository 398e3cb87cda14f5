package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/compose"

	"chatgw/internal/model"
	"chatgw/internal/provider"
)

// graphState 图执行状态
// 单节点图: START -> invoke_provider -> END
type graphState struct {
	request      *model.ChatRequest
	capability   model.ModelCapability
	messageCount int
	response     *provider.Response
}

// Graph 基于 Eino 图执行引擎的编排器
// 与 Direct 语义一致，分发逻辑挂在图节点上执行
type Graph struct {
	providers Providers
	runnable  compose.Runnable[*graphState, *graphState]
}

// NewGraph 创建图编排器（启动时编译单节点图）
func NewGraph(providers Providers) (*Graph, error) {
	o := &Graph{providers: providers}

	g := compose.NewGraph[*graphState, *graphState]()
	if err := g.AddLambdaNode("invoke_provider", compose.InvokableLambda(o.invokeProvider)); err != nil {
		return nil, fmt.Errorf("add graph node: %w", err)
	}
	if err := g.AddEdge(compose.START, "invoke_provider"); err != nil {
		return nil, fmt.Errorf("add graph edge: %w", err)
	}
	if err := g.AddEdge("invoke_provider", compose.END); err != nil {
		return nil, fmt.Errorf("add graph edge: %w", err)
	}

	runnable, err := g.Compile(context.Background())
	if err != nil {
		return nil, fmt.Errorf("compile graph: %w", err)
	}
	o.runnable = runnable

	return o, nil
}

func (o *Graph) invokeProvider(ctx context.Context, state *graphState) (*graphState, error) {
	p, ok := o.providers[state.capability.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", state.capability.Provider)
	}

	resp, err := p.Invoke(ctx, state.request, state.capability, state.messageCount)
	if err != nil {
		return nil, err
	}
	state.response = resp
	return state, nil
}

// Run 执行一次供应商调用
func (o *Graph) Run(ctx context.Context, req *model.ChatRequest, capability model.ModelCapability, messageCount int) (*provider.Response, error) {
	state, err := o.runnable.Invoke(ctx, &graphState{
		request:      req,
		capability:   capability,
		messageCount: messageCount,
	})
	if err != nil {
		return nil, err
	}
	if state.response == nil {
		return nil, errors.New("graph execution did not return a provider response")
	}
	return state.response, nil
}
