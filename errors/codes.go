package errors

// ErrorCode identifies a failure class in API responses and logs.
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_UNAUTHENTICATED
	ErrorCode_FORBIDDEN
	ErrorCode_INVALID_PAYLOAD

	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
	ErrorCode_AUTH_USER_NOT_FOUND
	ErrorCode_AUTH_USER_ALREADY_EXISTS

	ErrorCode_INTERVIEW_NOT_FOUND
	ErrorCode_ANALYSIS_NOT_FOUND
	ErrorCode_ANALYSIS_FAILED
	ErrorCode_INVALID_TIMEFRAME
	ErrorCode_INVALID_DECISION

	ErrorCode_JOB_NOT_FOUND
	ErrorCode_JOB_NOT_CANCELLABLE
	ErrorCode_JOB_NOT_RETRYABLE
	ErrorCode_PROCESSING_FAILED

	ErrorCode_STORAGE_FAILED
	ErrorCode_DB_QUERY_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:          "UNKNOWN",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:   "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:  "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:        "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:  "INVALID_PAYLOAD",

	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:       "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_USER_NOT_FOUND:      "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS: "AUTH_USER_ALREADY_EXISTS",

	ErrorCode_INTERVIEW_NOT_FOUND: "INTERVIEW_NOT_FOUND",
	ErrorCode_ANALYSIS_NOT_FOUND:  "ANALYSIS_NOT_FOUND",
	ErrorCode_ANALYSIS_FAILED:     "ANALYSIS_FAILED",
	ErrorCode_INVALID_TIMEFRAME:   "INVALID_TIMEFRAME",
	ErrorCode_INVALID_DECISION:    "INVALID_DECISION",

	ErrorCode_JOB_NOT_FOUND:       "JOB_NOT_FOUND",
	ErrorCode_JOB_NOT_CANCELLABLE: "JOB_NOT_CANCELLABLE",
	ErrorCode_JOB_NOT_RETRYABLE:   "JOB_NOT_RETRYABLE",
	ErrorCode_PROCESSING_FAILED:   "PROCESSING_FAILED",

	ErrorCode_STORAGE_FAILED:  "STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED: "DB_QUERY_FAILED",
}

// String returns the stable wire name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
