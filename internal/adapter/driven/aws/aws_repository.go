package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
	"github.com/diillson/aws-sso-manager-go/internal/domain/repository"
)

// stsRegion is used when a profile has no default region of its own.
const stsRegion = "us-east-1"

// AWSRepositoryImpl implementa o AWSRepository com cache de configuração por perfil.
type AWSRepositoryImpl struct {
	configFile string
	cfgCache   map[string]aws.Config
	mu         sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository. Quando
// configFile não é vazio, ele substitui o ~/.aws/config padrão do SDK.
func NewAWSRepository(configFile string) repository.AWSRepository {
	return &AWSRepositoryImpl{
		configFile: configFile,
		cfgCache:   make(map[string]aws.Config),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithSharedConfigProfile(profile),
	}
	if r.configFile != "" {
		opts = append(opts, config.WithSharedConfigFiles([]string{r.configFile}))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}
	if cfg.Region == "" {
		cfg.Region = stsRegion
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) GetCallerIdentity(ctx context.Context, profile string) (entity.CallerIdentity, error) {
	identity := entity.CallerIdentity{Profile: profile}

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return identity, err
	}

	result, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return identity, fmt.Errorf("error getting caller identity for profile %s: %w", profile, err)
	}

	identity.Account = aws.ToString(result.Account)
	identity.Arn = aws.ToString(result.Arn)
	identity.UserID = aws.ToString(result.UserId)
	return identity, nil
}
