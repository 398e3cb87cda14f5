package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chatgw/internal/config"
	"chatgw/internal/handler"
	"chatgw/internal/model"
	"chatgw/internal/orchestrator"
	"chatgw/internal/pkg/secrets"
	"chatgw/internal/provider/bedrock"
	"chatgw/internal/provider/openai"
	"chatgw/internal/server/middleware"
	"chatgw/internal/service"
)

// Server HTTP 服务器
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	engine := gin.New()

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		cfg:    cfg,
		engine: engine,
	}

	// 设置路由
	srv.setupRoutes(service.NewChatService(orch))

	return srv, nil
}

// buildOrchestrator 组装供应商适配器与编排器
func buildOrchestrator(cfg *config.Config) (orchestrator.Orchestrator, error) {
	apiKey := resolveOpenAIKey(cfg)
	if apiKey == "" {
		log.Warn().Msg("OpenAI API key not configured, openai models will fail at call time")
	}

	bedrockProvider, err := bedrock.NewProvider(&cfg.Bedrock)
	if err != nil {
		return nil, err
	}

	providers := orchestrator.Providers{
		model.ProviderOpenAI: openai.NewProvider(
			openai.NewClient(apiKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)),
		model.ProviderBedrock: bedrockProvider,
	}

	return orchestrator.New(cfg.Orchestrator.Kind, providers)
}

// resolveOpenAIKey 返回 OpenAI API 密钥
// 未直接配置时尝试从 SSM SecureString 参数读取
func resolveOpenAIKey(cfg *config.Config) string {
	if cfg.OpenAI.APIKey != "" {
		return cfg.OpenAI.APIKey
	}
	if cfg.OpenAI.APIKeyParameter == "" {
		return ""
	}

	resolver, err := secrets.NewResolver(context.Background(), cfg.Bedrock.Region)
	if err != nil {
		log.Warn().Err(err).Msg("failed to create SSM resolver, openai key unresolved")
		return ""
	}
	return resolver.OptionalSecureParameter(context.Background(), cfg.OpenAI.APIKeyParameter)
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(chatSvc *service.ChatService) {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(cors.Default())

	// 健康检查
	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API
	api := s.engine.Group("/api")
	{
		chatHandler := handler.NewChatHandler(chatSvc)
		modelsHandler := handler.NewModelsHandler()

		api.GET("/models", modelsHandler.List)
		api.POST("/chat", chatHandler.Chat)
		api.GET("/health", healthHandler.Health)
	}
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
