package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

var authCodes = map[string]struct{}{
	"AuthFailure":                  {},
	"UnauthorizedOperation":        {},
	"AccessDenied":                 {},
	"AccessDeniedException":        {},
	"UnrecognizedClientException":  {},
	"InvalidClientTokenId":         {},
	"ExpiredToken":                 {},
	"ExpiredTokenException":        {},
	"SignatureDoesNotMatch":        {},
	"OptInRequired":                {},
	"InvalidAccessKeyId":           {},
	"MissingAuthenticationToken":   {},
	"UnauthorizedClientException":  {},
	"AuthorizationErrorException":  {},
	"InvalidSignatureException":    {},
	"IncompleteSignatureException": {},
}

var throttleCodes = map[string]struct{}{
	"Throttling":                             {},
	"ThrottlingException":                    {},
	"ThrottledException":                     {},
	"RequestThrottled":                       {},
	"RequestThrottledException":              {},
	"RequestLimitExceeded":                   {},
	"TooManyRequestsException":               {},
	"SlowDown":                               {},
	"PriorRequestNotComplete":                {},
	"EC2ThrottledException":                  {},
	"BandwidthLimitExceeded":                 {},
	"ProvisionedThroughputExceededException": {},
}

var notFoundCodes = map[string]struct{}{
	"ResourceNotFoundException": {},
	"DBInstanceNotFound":        {},
	"DBInstanceNotFoundFault":   {},
	"LoadBalancerNotFound":      {},
	"TargetGroupNotFound":       {},
	"ListenerNotFound":          {},
	"NotFoundException":         {},
}

// HandleAWSError maps an SDK error raised by operation of service onto an
// application error code. Context cancellation wins over anything the SDK
// reported.
func HandleAWSError(ctx context.Context, service, operation string, err error) error {
	if err == nil {
		return errors.Newf(errors.CodeInternal, "unexpected nil error in AWS error handler for %s:%s", service, operation)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(ctxErr, errors.CodeTimeout,
			fmt.Sprintf("context done during %s %s", service, operation))
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodeTimeout,
			fmt.Sprintf("context done during %s %s", service, operation))
	}

	code := errorCode(err)
	switch {
	case isAuthError(code, err.Error()):
		return errors.Wrap(err, errors.CodePlatformAuthError,
			fmt.Sprintf("AWS authorization error calling %s %s", service, operation))
	case isThrottleError(code):
		return errors.Wrap(err, errors.CodeThrottled,
			fmt.Sprintf("AWS throttled %s %s", service, operation))
	case isNotFoundError(code):
		return errors.Wrap(err, errors.CodeResourceNotFound,
			fmt.Sprintf("%s %s: resource not found", service, operation))
	}

	return errors.Wrap(err, errors.CodePlatformAPIError,
		fmt.Sprintf("failed to call %s %s", service, operation))
}

func errorCode(err error) string {
	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return apiErr.ErrorCode()
	}
	var coded interface{ ErrorCode() string }
	if stderrs.As(err, &coded) && coded != nil {
		return coded.ErrorCode()
	}
	return ""
}

func isAuthError(code, msg string) bool {
	if _, ok := authCodes[code]; ok {
		return true
	}
	if code != "" {
		return false
	}
	return strings.Contains(msg, "AuthFailure") ||
		strings.Contains(msg, "UnauthorizedOperation") ||
		strings.Contains(msg, "AccessDenied")
}

func isThrottleError(code string) bool {
	_, ok := throttleCodes[code]
	return ok
}

func isNotFoundError(code string) bool {
	if _, ok := notFoundCodes[code]; ok {
		return true
	}
	return strings.HasSuffix(code, ".NotFound")
}

// DefaultErrorHandler implements shared.ErrorHandler.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(ctx context.Context, service, operation string, err error) error {
	return HandleAWSError(ctx, service, operation, err)
}
