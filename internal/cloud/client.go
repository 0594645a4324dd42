// Package cloud holds the optional AWS collaborators: booking notifications
// over SNS, the admin infrastructure-health view over EC2, and S3-backed
// document storage. Everything degrades to a no-op or a local fallback when
// the corresponding setting is unset.
package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type Client struct {
	cfg aws.Config
	ec2 *ec2.Client
	sns *sns.Client
	s3  *s3.Client
}

// NewClient loads the default credential chain (environment, shared config,
// instance role) for the given region.
func NewClient(ctx context.Context, region string) (*Client, error) {
	loadOptions := []func(*config.LoadOptions) error{}
	if region != "" {
		loadOptions = append(loadOptions, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Client{
		cfg: cfg,
		ec2: ec2.NewFromConfig(cfg),
		sns: sns.NewFromConfig(cfg),
		s3:  s3.NewFromConfig(cfg),
	}, nil
}
