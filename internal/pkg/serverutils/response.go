package serverutils

import "newsroom-be/pkg/apperrors"

// BaseResponse is the uniform success envelope.
type BaseResponse[T any] struct {
	StatusCode int `json:"statusCode"`
	Payload    T   `json:"payload"`
}

// ErrorBody is the uniform error envelope.
type ErrorBody struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Errors  []apperrors.FieldIssue `json:"errors"`
}

func SuccessResponse[T any](statusCode int, payload T) BaseResponse[T] {
	return BaseResponse[T]{
		StatusCode: statusCode,
		Payload:    payload,
	}
}

func ErrorResponse(status int, message string, issues []apperrors.FieldIssue) ErrorBody {
	if issues == nil {
		issues = []apperrors.FieldIssue{}
	}
	return ErrorBody{
		Status:  status,
		Message: message,
		Errors:  issues,
	}
}
