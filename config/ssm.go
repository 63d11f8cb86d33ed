package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// LoadSSMParameters overlays every parameter stored under the AWS_SSM_PREFIX path
// onto config. The last path segment becomes the key, so
// /emp-classrooms/prod/DONORSCHOOSE_API_KEY sets DONORSCHOOSE_API_KEY.
// It is a no-op when no prefix is configured.
func LoadSSMParameters(ctx context.Context, config map[string]string) error {
	prefix := GetString(config, KeySSMPrefix, "")
	if prefix == "" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	return overlayParameters(ctx, ssm.NewFromConfig(awsCfg), prefix, config)
}

func overlayParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string, config map[string]string) error {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("reading SSM parameters under %s: %w", prefix, err)
		}

		for _, param := range page.Parameters {
			name := strings.TrimSpace(path.Base(aws.ToString(param.Name)))
			if name == "" || name == "/" || name == "." {
				continue
			}
			config[name] = aws.ToString(param.Value)
			loaded++
		}
	}

	log.Info().Str("prefix", prefix).Int("count", loaded).Msg("Loaded parameters from SSM")
	return nil
}
