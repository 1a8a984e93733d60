// Package awstest builds SDK result metadata for adapter tests.
package awstest

import (
	"context"
	"net/http"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// Metadata returns result metadata carrying an HTTP status and request id,
// recorded the same way the SDK deserialize stack records them.
func Metadata(status int, requestID string) middleware.Metadata {
	next := middleware.DeserializeHandlerFunc(func(ctx context.Context, in middleware.DeserializeInput) (middleware.DeserializeOutput, middleware.Metadata, error) {
		return middleware.DeserializeOutput{
			RawResponse: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
		}, middleware.Metadata{}, nil
	})
	_, md, _ := awsmiddleware.AddRawResponse{}.HandleDeserialize(context.Background(), middleware.DeserializeInput{}, next)
	if requestID != "" {
		awsmiddleware.SetRequestIDMetadata(&md, requestID)
	}
	return md
}

// OK is Metadata(200, "req-ok").
func OK() middleware.Metadata {
	return Metadata(http.StatusOK, "req-ok")
}
