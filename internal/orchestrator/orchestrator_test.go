package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"chatgw/internal/model"
	"chatgw/internal/provider"
)

type stubProvider struct {
	response *provider.Response
	err      error
	calls    int

	gotRequest      *model.ChatRequest
	gotCapability   model.ModelCapability
	gotMessageCount int
}

func (s *stubProvider) Invoke(_ context.Context, req *model.ChatRequest, capability model.ModelCapability, messageCount int) (*provider.Response, error) {
	s.calls++
	s.gotRequest = req
	s.gotCapability = capability
	s.gotMessageCount = messageCount
	return s.response, s.err
}

func testFixture(t *testing.T) (*model.ChatRequest, model.ModelCapability, *provider.Response) {
	t.Helper()
	req := &model.ChatRequest{
		Model:    "gpt-4.1-mini",
		Messages: []model.Message{{Role: "user", Content: "hello"}},
	}
	require.NoError(t, req.Normalize())

	capability, ok := model.LookupCapability(req.Model)
	require.True(t, ok)

	inputTokens, outputTokens := 5, 7
	resp := &provider.Response{
		Message:         "ok",
		ResponseID:      "resp_1",
		InputTokens:     &inputTokens,
		OutputTokens:    &outputTokens,
		DurationSeconds: 0.1,
	}
	return req, capability, resp
}

func TestDirectRoutesToProvider(t *testing.T) {
	req, capability, want := testFixture(t)
	stub := &stubProvider{response: want}

	orch := NewDirect(Providers{model.ProviderOpenAI: stub})

	got, err := orch.Run(context.Background(), req, capability, 1)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 1, stub.calls)
	require.Same(t, req, stub.gotRequest)
	require.Equal(t, capability, stub.gotCapability)
	require.Equal(t, 1, stub.gotMessageCount)
}

func TestDirectMissingProvider(t *testing.T) {
	req, capability, _ := testFixture(t)

	orch := NewDirect(Providers{})

	_, err := orch.Run(context.Background(), req, capability, 1)
	require.ErrorContains(t, err, "unsupported provider: openai")
}

func TestDirectPropagatesProviderError(t *testing.T) {
	req, capability, _ := testFixture(t)
	stub := &stubProvider{err: errors.New("upstream boom")}

	orch := NewDirect(Providers{model.ProviderOpenAI: stub})

	_, err := orch.Run(context.Background(), req, capability, 1)
	require.ErrorContains(t, err, "upstream boom")
}

func TestGraphRoutesToProvider(t *testing.T) {
	req, capability, want := testFixture(t)
	stub := &stubProvider{response: want}

	orch, err := NewGraph(Providers{model.ProviderOpenAI: stub})
	require.NoError(t, err)

	got, err := orch.Run(context.Background(), req, capability, 1)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 1, stub.calls)
	require.Same(t, req, stub.gotRequest)
	require.Equal(t, capability, stub.gotCapability)
	require.Equal(t, 1, stub.gotMessageCount)
}

func TestGraphMissingProvider(t *testing.T) {
	req, capability, _ := testFixture(t)

	orch, err := NewGraph(Providers{})
	require.NoError(t, err)

	_, err = orch.Run(context.Background(), req, capability, 1)
	require.ErrorContains(t, err, "unsupported provider: openai")
}

func TestNewFallsBackToDirect(t *testing.T) {
	orch, err := New("definitely-not-a-kind", Providers{})
	require.NoError(t, err)
	require.IsType(t, &Direct{}, orch)
}

func TestNewSelectsGraph(t *testing.T) {
	orch, err := New("graph", Providers{})
	require.NoError(t, err)
	require.IsType(t, &Graph{}, orch)
}
