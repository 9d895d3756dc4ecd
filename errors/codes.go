package errors

// ErrorCode identifies an AppError independently of its message
type ErrorCode int

const (
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1002
	ErrorCode_VALIDATION_FAILED ErrorCode = 1003

	// Meetings
	ErrorCode_MEETING_NOT_ACTIVE   ErrorCode = 2000
	ErrorCode_MEETING_START_FAILED ErrorCode = 2001
	ErrorCode_SESSION_RESET_FAILED ErrorCode = 2002

	// Proposals
	ErrorCode_PROPOSAL_SAVE_FAILED ErrorCode = 3000

	// AI
	ErrorCode_AI_ANALYSIS_FAILED ErrorCode = 4000

	// Integrations
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 5001

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 6000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 6001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:               "VALIDATION_FAILED",
	ErrorCode_MEETING_NOT_ACTIVE:              "MEETING_NOT_ACTIVE",
	ErrorCode_MEETING_START_FAILED:            "MEETING_START_FAILED",
	ErrorCode_SESSION_RESET_FAILED:            "SESSION_RESET_FAILED",
	ErrorCode_PROPOSAL_SAVE_FAILED:            "PROPOSAL_SAVE_FAILED",
	ErrorCode_AI_ANALYSIS_FAILED:              "AI_ANALYSIS_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:            "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
