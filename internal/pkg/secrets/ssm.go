package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// Resolver AWS SSM Parameter Store 密钥读取器
type Resolver struct {
	client *ssm.Client
}

// NewResolver 创建 SSM 读取器
func NewResolver(ctx context.Context, region string) (*Resolver, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Resolver{client: ssm.NewFromConfig(awsCfg)}, nil
}

// SecureParameter 读取 SecureString 参数（带解密）
func (r *Resolver) SecureParameter(ctx context.Context, name string) (string, error) {
	out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get parameter %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil || *out.Parameter.Value == "" {
		return "", fmt.Errorf("SSM parameter %s has no value", name)
	}
	return *out.Parameter.Value, nil
}

// OptionalSecureParameter 读取可选参数，失败时记录告警并返回空串
func (r *Resolver) OptionalSecureParameter(ctx context.Context, name string) string {
	value, err := r.SecureParameter(ctx, name)
	if err != nil {
		log.Warn().Err(err).Str("parameter_name", name).
			Msg("optional SSM parameter is unavailable, disabling dependent feature")
		return ""
	}
	return value
}
