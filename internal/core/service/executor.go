package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// nonPaginating lists the operations issued as a single call.
var nonPaginating = map[domain.Operation]struct{}{
	domain.OpDescribeAddresses:              {},
	domain.OpDescribeAvailabilityZones:      {},
	domain.OpDescribeCustomerGateways:       {},
	domain.OpDescribePlacementGroups:        {},
	domain.OpDescribeRegions:                {},
	domain.OpDescribeVpcClassicLink:         {},
	domain.OpDescribeVpnConnections:         {},
	domain.OpDescribeVpnGateways:            {},
	domain.OpDescribeLoadBalancerAttributes: {},
	domain.OpDescribeTargetHealth:           {},
	domain.OpSearchTransitGatewayRoutes:     {},
	domain.OpListDomainNames:                {},
	domain.OpDescribeElasticsearchDomains:   {},
}

// IsPaginating reports whether op is fetched by following continuation tokens.
func IsPaginating(op domain.Operation) bool {
	_, single := nonPaginating[op]
	return !single
}

// Fetcher performs one logical fetch and returns a document free of
// transport metadata.
type Fetcher interface {
	Execute(ctx context.Context, service domain.Service, op domain.Operation, args domain.Arguments) (domain.Document, error)
}

// Executor issues fetches against the clients of one region. Every call waits
// on the shared limiter first.
type Executor struct {
	clients *ClientSet
	limiter ports.RateLimiter
	logger  ports.Logger
}

var _ Fetcher = (*Executor)(nil)

func NewExecutor(clients *ClientSet, limiter ports.RateLimiter, logger ports.Logger) *Executor {
	return &Executor{clients: clients, limiter: limiter, logger: logger}
}

// Execute runs op. Paginating operations are followed until the token runs out
// and their list fields are concatenated in page order. Every response must
// carry HTTP 200; anything else is a *domain.FetchError.
func (e *Executor) Execute(ctx context.Context, service domain.Service, op domain.Operation, args domain.Arguments) (domain.Document, error) {
	client, err := e.clients.Get(service)
	if err != nil {
		return nil, e.fetchError(service, op, 0, err)
	}

	if !IsPaginating(op) {
		page, err := e.invoke(ctx, client, op, args, "")
		if err != nil {
			return nil, err
		}
		return page.Document, nil
	}

	var merged domain.Document
	seen := make(map[string]struct{})
	token := ""
	for pageNum := 1; ; pageNum++ {
		page, err := e.invoke(ctx, client, op, args, token)
		if err != nil {
			return nil, err
		}
		merged = mergePage(merged, page.Document)

		if page.NextToken == "" {
			break
		}
		if _, repeated := seen[page.NextToken]; repeated {
			e.logger.Warnf(ctx, "%s %s returned a repeated continuation token after page %d, stopping", service, op, pageNum)
			break
		}
		seen[page.NextToken] = struct{}{}
		token = page.NextToken
	}
	if merged == nil {
		merged = domain.Document{}
	}
	return merged, nil
}

func (e *Executor) invoke(ctx context.Context, client ports.ServiceClient, op domain.Operation, args domain.Arguments, token string) (*domain.Page, error) {
	service := client.Service()
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx, e.logger); err != nil {
			return nil, e.fetchError(service, op, 0, errors.Wrap(err, errors.CodeTimeout, "rate limiter wait aborted"))
		}
	}

	page, err := client.Invoke(ctx, op, args.Clone(), token)
	if err != nil {
		return nil, e.fetchError(service, op, 0, err)
	}
	if page == nil {
		return nil, e.fetchError(service, op, 0, errors.New(errors.CodeMalformedResponse, "empty response"))
	}
	if page.Envelope.StatusCode != http.StatusOK {
		return nil, e.fetchError(service, op, page.Envelope.StatusCode,
			errors.New(errors.CodeUnexpectedStatus, fmt.Sprintf("unexpected HTTP status %d (request id %q)", page.Envelope.StatusCode, page.Envelope.RequestID)))
	}
	if page.Document == nil {
		page.Document = domain.Document{}
	}
	return page, nil
}

func (e *Executor) fetchError(service domain.Service, op domain.Operation, status int, err error) error {
	return &domain.FetchError{
		Region:     e.clients.Region(),
		Service:    service,
		Operation:  op,
		StatusCode: status,
		Err:        err,
	}
}

// mergePage folds page into acc. Lists are concatenated; any other value is
// taken from the latest page.
func mergePage(acc, page domain.Document) domain.Document {
	if acc == nil {
		acc = make(domain.Document, len(page))
	}
	for key, value := range page {
		next, isList := value.([]any)
		prev, hadList := acc[key].([]any)
		switch {
		case isList && hadList:
			acc[key] = append(prev, next...)
		case isList:
			acc[key] = append([]any{}, next...)
		case value == nil && hadList:
			// keep what earlier pages returned
		default:
			acc[key] = value
		}
	}
	return acc
}
