package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/ec2"
	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/elbv2"
	awserrors "github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/es"
	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/rds"
	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// Provider is the authenticated session of a run. It hands out the service
// clients of each region and is safe for concurrent use.
type Provider struct {
	awsConfig    aws.Config
	profile      string
	logger       ports.Logger
	errorHandler shared.ErrorHandler

	stsClient     shared.STSClientInterface
	regionsClient func(region string) shared.RegionsClientInterface

	mu      sync.Mutex
	clients map[string][]ports.ServiceClient
}

var (
	_ ports.ClientFactory = (*Provider)(nil)
	_ ports.AccessChecker = (*Provider)(nil)
)

type Option func(*Provider)

// WithConfig skips loading the shared configuration.
func WithConfig(cfg aws.Config) Option {
	return func(p *Provider) {
		p.awsConfig = cfg
	}
}

func WithSTSClient(c shared.STSClientInterface) Option {
	return func(p *Provider) {
		p.stsClient = c
	}
}

func WithRegionsClient(f func(region string) shared.RegionsClientInterface) Option {
	return func(p *Provider) {
		p.regionsClient = f
	}
}

func WithErrorHandler(h shared.ErrorHandler) Option {
	return func(p *Provider) {
		p.errorHandler = h
	}
}

// NewProvider loads credentials from the default chain, using the named
// profile when one is given.
func NewProvider(ctx context.Context, profile string, logger ports.Logger, opts ...Option) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeInternal, "logger cannot be nil for AWS Provider")
	}
	p := &Provider{
		profile:      profile,
		logger:       logger,
		errorHandler: &awserrors.DefaultErrorHandler{},
		clients:      make(map[string][]ports.ServiceClient),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.awsConfig.Credentials == nil && p.awsConfig.Region == "" {
		loadOpts := []func(*config.LoadOptions) error{config.WithRegion(domain.BootstrapRegion)}
		if profile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
		}
		cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.WrapUserFacing(err, errors.CodeSessionError,
				fmt.Sprintf("failed to load AWS configuration (profile %q)", profile),
				"Check the profile name and your AWS credentials configuration.")
		}
		p.awsConfig = cfg
	}

	if p.stsClient == nil {
		p.stsClient = sts.NewFromConfig(p.awsConfig)
	}
	if p.regionsClient == nil {
		p.regionsClient = func(region string) shared.RegionsClientInterface {
			return awsec2.NewFromConfig(p.regionConfig(region))
		}
	}
	logger.Debugf(ctx, "AWS session ready (profile=%q)", profile)
	return p, nil
}

func (p *Provider) regionConfig(region string) aws.Config {
	cfg := p.awsConfig.Copy()
	cfg.Region = region
	return cfg
}

// Clients returns the compute, load-balancing, relational-storage and
// search-indexing clients bound to region.
func (p *Provider) Clients(region string) ([]ports.ServiceClient, error) {
	if region == "" {
		return nil, errors.New(errors.CodeSessionError, "region must not be empty")
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.clients[region]; ok {
		return cached, nil
	}
	cfg := p.regionConfig(region)
	clients := []ports.ServiceClient{
		ec2.NewClient(cfg, p.errorHandler),
		elbv2.NewClient(cfg, p.errorHandler, nil),
		rds.NewClient(cfg, p.errorHandler, nil),
		es.NewClient(cfg, p.errorHandler, nil),
	}
	p.clients[region] = clients
	return clients, nil
}

// CheckAccess resolves the caller identity and lists regions from the
// bootstrap region, which together prove the credentials are usable.
func (p *Provider) CheckAccess(ctx context.Context) (domain.Identity, error) {
	var id domain.Identity

	who, err := p.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return id, p.errorHandler.Handle(ctx, "sts", "GetCallerIdentity", err)
	}
	id.Account = aws.ToString(who.Account)
	id.ARN = aws.ToString(who.Arn)
	id.UserID = aws.ToString(who.UserId)

	regions, err := p.regionsClient(domain.BootstrapRegion).DescribeRegions(ctx, &awsec2.DescribeRegionsInput{})
	if err != nil {
		return id, p.errorHandler.Handle(ctx, domain.ServiceCompute.String(), domain.OpDescribeRegions.String(), err)
	}
	id.RegionCount = len(regions.Regions)
	return id, nil
}
