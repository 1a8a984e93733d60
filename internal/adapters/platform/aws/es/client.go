package es

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	elasticsearch "github.com/aws/aws-sdk-go-v2/service/elasticsearchservice"
	estypes "github.com/aws/aws-sdk-go-v2/service/elasticsearchservice/types"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	apperrors "github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// MaxDomainsPerDescribe is the largest DomainNames list the service accepts.
const MaxDomainsPerDescribe = 5

// API is the subset of the Elasticsearch Service client the snapshot reads from.
type API interface {
	ListDomainNames(ctx context.Context, params *elasticsearch.ListDomainNamesInput, optFns ...func(*elasticsearch.Options)) (*elasticsearch.ListDomainNamesOutput, error)
	DescribeElasticsearchDomains(ctx context.Context, params *elasticsearch.DescribeElasticsearchDomainsInput, optFns ...func(*elasticsearch.Options)) (*elasticsearch.DescribeElasticsearchDomainsOutput, error)
}

var _ API = (*elasticsearch.Client)(nil)

// Client is the search-indexing service client of one region.
type Client struct {
	api          API
	errorHandler shared.ErrorHandler
}

var _ ports.ServiceClient = (*Client)(nil)

func NewClient(cfg aws.Config, errorHandler shared.ErrorHandler, api API) *Client {
	if api == nil {
		api = elasticsearch.NewFromConfig(cfg)
	}
	return &Client{api: api, errorHandler: errorHandler}
}

func (c *Client) Service() domain.Service {
	return domain.ServiceSearchIndexing
}

// Invoke serves single-page operations only; the token is ignored.
func (c *Client) Invoke(ctx context.Context, op domain.Operation, args domain.Arguments, _ string) (*domain.Page, error) {
	var (
		out any
		err error
	)
	switch op {
	case domain.OpListDomainNames:
		out, err = c.api.ListDomainNames(ctx, &elasticsearch.ListDomainNamesInput{})
	case domain.OpDescribeElasticsearchDomains:
		out, err = c.describeDomains(ctx, args.DomainNames)
	default:
		return nil, apperrors.New(apperrors.CodeNotImplemented, fmt.Sprintf("operation '%s' not supported by %s client", op, domain.ServiceSearchIndexing))
	}
	if err != nil {
		return nil, c.errorHandler.Handle(ctx, domain.ServiceSearchIndexing.String(), op.String(), err)
	}
	page, err := shared.ToPage(out, "")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeMalformedResponse, fmt.Sprintf("%s %s returned an unreadable response", domain.ServiceSearchIndexing, op))
	}
	return page, nil
}

// describeDomains splits names into batches the service accepts and merges
// the status lists. The first batch whose response is not a 200 is returned
// as is so the caller sees its envelope.
func (c *Client) describeDomains(ctx context.Context, names []string) (*elasticsearch.DescribeElasticsearchDomainsOutput, error) {
	if len(names) <= MaxDomainsPerDescribe {
		batch := make([]string, len(names))
		copy(batch, names)
		return c.api.DescribeElasticsearchDomains(ctx, &elasticsearch.DescribeElasticsearchDomainsInput{DomainNames: batch})
	}

	merged := &elasticsearch.DescribeElasticsearchDomainsOutput{DomainStatusList: []estypes.ElasticsearchDomainStatus{}}
	for start := 0; start < len(names); start += MaxDomainsPerDescribe {
		end := min(start+MaxDomainsPerDescribe, len(names))
		batch := make([]string, end-start)
		copy(batch, names[start:end])

		out, err := c.api.DescribeElasticsearchDomains(ctx, &elasticsearch.DescribeElasticsearchDomainsInput{DomainNames: batch})
		if err != nil {
			return nil, err
		}
		if shared.EnvelopeFromMetadata(out.ResultMetadata).StatusCode != http.StatusOK {
			return out, nil
		}
		merged.DomainStatusList = append(merged.DomainStatusList, out.DomainStatusList...)
		merged.ResultMetadata = out.ResultMetadata
	}
	return merged, nil
}
