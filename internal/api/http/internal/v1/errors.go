package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InvalidCredentialsCode    = 1001
	InvalidCredentialsMessage = "Invalid username or password"
	RecordNotFoundCode        = 1002
	RecordNotFoundMessage     = "record not found"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
}

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case InvalidCredentialsCode:
		errorStruct.ErrorCode = InvalidCredentialsCode
		errorStruct.ErrorMessage = InvalidCredentialsMessage
	case RecordNotFoundCode:
		errorStruct.ErrorCode = RecordNotFoundCode
		errorStruct.ErrorMessage = RecordNotFoundMessage
	}

	return errorStruct
}
