package response

// Resp is the standard JSON response body for the admin API.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message of a successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal detail from API consumers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode marks unexpected failures.
	InternalServerErrorCode = 500
)
