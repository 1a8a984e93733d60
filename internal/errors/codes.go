package errors

type Code string

const (
	CodeUnknown           Code = "UNKNOWN"
	CodeInternal          Code = "INTERNAL_ERROR"
	CodeConfigValidation  Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError   Code = "CONFIG_READ_ERROR"
	CodeConfigParseError  Code = "CONFIG_PARSE_ERROR"
	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodeResourceNotFound  Code = "RESOURCE_NOT_FOUND"
	CodeThrottled         Code = "THROTTLED"
	CodeTimeout           Code = "TIMEOUT_ERROR"
	CodeNotImplemented    Code = "NOT_IMPLEMENTED"

	// Snapshot specific codes
	CodeSessionError         Code = "SESSION_ERROR"
	CodeRegionDiscoveryError Code = "REGION_DISCOVERY_ERROR"
	CodeRegistryBuildError   Code = "REGISTRY_BUILD_ERROR"
	CodeFetchError           Code = "FETCH_ERROR"
	CodeUnexpectedStatus     Code = "UNEXPECTED_STATUS"
	CodeIncompleteResult     Code = "INCOMPLETE_RESULT"
	CodeMalformedResponse    Code = "MALFORMED_RESPONSE"
	CodeOutputExists         Code = "OUTPUT_EXISTS"
	CodePersistError         Code = "PERSIST_ERROR"
)

func (c Code) String() string {
	return string(c)
}
