package config

import (
	"errors"
	"time"
)

// Config 应用配置根结构
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Bedrock      BedrockConfig      `mapstructure:"bedrock"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	Log          LogConfig          `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// OpenAIConfig OpenAI Responses API 配置
// APIKey 为空时可通过 APIKeyParameter 从 AWS SSM 获取密钥
type OpenAIConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	APIKeyParameter string        `mapstructure:"api_key_parameter"` // SSM SecureString 参数名
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// BedrockConfig Amazon Bedrock Converse API 配置
// AccessKey/SecretKey 为空时走 SDK 默认凭证链
type BedrockConfig struct {
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// OrchestratorConfig 编排器配置
type OrchestratorConfig struct {
	Kind string `mapstructure:"kind"` // direct, graph
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.Bedrock.Region == "" {
		return errors.New("bedrock region is required")
	}

	return nil
}
