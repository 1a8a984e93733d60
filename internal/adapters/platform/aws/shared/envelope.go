package shared

import (
	"fmt"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/pkg/convert"
	"github.com/olusolaa/aws-config-snapshot/pkg/reflectutil"
)

// EnvelopeFromMetadata reads the HTTP status and request id recorded by the
// SDK middleware stack. StatusCode is zero when no raw response was recorded.
func EnvelopeFromMetadata(md middleware.Metadata) domain.Envelope {
	var env domain.Envelope
	if raw, ok := awsmiddleware.GetRawResponse(md).(*smithyhttp.Response); ok && raw != nil && raw.Response != nil {
		env.StatusCode = raw.StatusCode
	}
	if id, ok := awsmiddleware.GetRequestIDMetadata(md); ok {
		env.RequestID = id
	}
	return env
}

// ToPage converts an SDK output struct into a page. The ResultMetadata field
// becomes the envelope, tokenField (if set) becomes the continuation token,
// and both are removed from the document.
func ToPage(output any, tokenField string) (*domain.Page, error) {
	page := &domain.Page{}
	if v, ok := reflectutil.FieldByName(output, domain.KeyResultMetadata); ok {
		if md, ok := v.(middleware.Metadata); ok {
			page.Envelope = EnvelopeFromMetadata(md)
		}
	}

	doc, err := convert.ToDocument(output)
	if err != nil {
		return nil, fmt.Errorf("convert %T: %w", output, err)
	}
	delete(doc, domain.KeyResultMetadata)

	if tokenField != "" {
		if token, ok := doc[tokenField].(string); ok {
			page.NextToken = token
		}
		delete(doc, tokenField)
	}

	page.Document = domain.Document(doc)
	return page, nil
}

// TokenPtr maps the empty first-page token to nil.
func TokenPtr(token string) *string {
	if token == "" {
		return nil
	}
	return &token
}
