package service

import (
	"context"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// dependentFetch is one secondary call issued per item of a primary listing.
// Each result gets the item id inlined under idField.
type dependentFetch struct {
	category  domain.Category
	service   domain.Service
	operation domain.Operation
	idField   string
	filters   []domain.Filter
	check     func(domain.Document) error
}

// expander runs its fetches for every id that ids yields from the trigger
// category's document.
type expander struct {
	trigger domain.Category
	ids     *query
	fetches []dependentFetch
}

var defaultExpanders = []expander{
	{
		trigger: domain.CategoryLoadBalancers,
		ids:     mustCompile(`.LoadBalancers[]? | .LoadBalancerArn // empty`),
		fetches: []dependentFetch{
			{
				category:  domain.CategoryLoadBalancerListeners,
				service:   domain.ServiceLoadBalancing,
				operation: domain.OpDescribeListeners,
				idField:   domain.KeyLoadBalancerArn,
			},
			{
				category:  domain.CategoryLoadBalancerAttributes,
				service:   domain.ServiceLoadBalancing,
				operation: domain.OpDescribeLoadBalancerAttributes,
				idField:   domain.KeyLoadBalancerArn,
			},
		},
	},
	{
		trigger: domain.CategoryTargetGroups,
		ids:     mustCompile(`.TargetGroups[]? | .TargetGroupArn // empty`),
		fetches: []dependentFetch{
			{
				category:  domain.CategoryLoadBalancerTargetHealth,
				service:   domain.ServiceLoadBalancing,
				operation: domain.OpDescribeTargetHealth,
				idField:   domain.KeyTargetGroupArn,
			},
		},
	},
	{
		trigger: domain.CategoryTransitGatewayRouteTables,
		ids:     mustCompile(`.TransitGatewayRouteTables[]? | .TransitGatewayRouteTableId // empty`),
		fetches: []dependentFetch{
			{
				category:  domain.CategoryTransitGatewayPropagations,
				service:   domain.ServiceCompute,
				operation: domain.OpGetTransitGatewayRouteTablePropagations,
				idField:   domain.KeyTransitGatewayRouteTableID,
			},
			{
				category:  domain.CategoryTransitGatewayStaticRoutes,
				service:   domain.ServiceCompute,
				operation: domain.OpSearchTransitGatewayRoutes,
				idField:   domain.KeyTransitGatewayRouteTableID,
				filters:   []domain.Filter{{Name: domain.FilterType, Values: []string{"static"}}},
				check:     requireCompleteRoutes,
			},
		},
	},
}

// isDependentCategory reports whether category is produced by an expander.
func isDependentCategory(category domain.Category) bool {
	for _, x := range defaultExpanders {
		for _, f := range x.fetches {
			if f.category == category {
				return true
			}
		}
	}
	return false
}

// without drops the fetches whose category is skipped.
func (x expander) without(skipped func(domain.Category) bool) expander {
	kept := make([]dependentFetch, 0, len(x.fetches))
	for _, f := range x.fetches {
		if !skipped(f.category) {
			kept = append(kept, f)
		}
	}
	x.fetches = kept
	return x
}

// requireCompleteRoutes rejects a route search that was truncated.
func requireCompleteRoutes(doc domain.Document) error {
	if more, _ := doc[domain.KeyAdditionalRoutesAvailable].(bool); more {
		return errors.New(errors.CodeIncompleteResult, "route search returned a partial result (AdditionalRoutesAvailable)")
	}
	return nil
}

// expansion is the outcome of one expander: a list per synthetic category
// plus the items that failed.
type expansion struct {
	results  map[domain.Category][]any
	failures []domain.Failure
}

func (x expander) expand(ctx context.Context, fetcher Fetcher, logger ports.Logger, trigger domain.Document) (*expansion, error) {
	out := &expansion{results: make(map[domain.Category][]any, len(x.fetches))}
	for _, f := range x.fetches {
		out.results[f.category] = []any{}
	}

	ids, err := x.ids.strings(trigger)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformedResponse, "cannot read item ids from "+x.trigger.String())
	}

	for _, id := range ids {
		for _, f := range x.fetches {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			args := domain.Arguments{ResourceID: id, Filters: f.filters}
			doc, err := fetcher.Execute(ctx, f.service, f.operation, args)
			if err == nil && f.check != nil {
				err = f.check(doc)
			}
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				logger.Errorf(ctx, err, "Failed to fetch %s for %s", f.category, id)
				out.failures = append(out.failures, failureFor(f.category, id, err))
				continue
			}
			doc[f.idField] = id
			out.results[f.category] = append(out.results[f.category], map[string]any(doc))
		}
	}
	return out, nil
}

// document renders the accumulated results of category.
func (e *expansion) document(category domain.Category) domain.Document {
	return domain.Document{category.String(): e.results[category]}
}
