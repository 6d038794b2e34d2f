package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response codes
const (
	CodeSuccess          = 20001
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeInternalServer   = 50001
)

var messages = map[int]string{
	CodeSuccess:          "success",
	CodeParamInvalid:     "invalid parameters",
	CodeValidationFailed: "validation failed",
	CodeInternalServer:   "internal server error",
}

var statuses = map[int]int{
	CodeSuccess:          http.StatusOK,
	CodeParamInvalid:     http.StatusBadRequest,
	CodeValidationFailed: http.StatusUnprocessableEntity,
	CodeInternalServer:   http.StatusInternalServerError,
}

// ResponseData is the envelope for every API response.
type ResponseData struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorDetail is the payload of a failed request.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// Message returns the default message for code.
func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "unknown"
}

// Status returns the HTTP status for code.
func Status(code int) int {
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ToErrorResponse converts an error or message into an ErrorDetail.
func ToErrorResponse(v any) ErrorDetail {
	switch t := v.(type) {
	case nil:
		return ErrorDetail{}
	case error:
		return ErrorDetail{Detail: t.Error()}
	case string:
		return ErrorDetail{Detail: t}
	default:
		return ErrorDetail{Detail: Message(CodeInternalServer)}
	}
}

// SuccessResponse writes a success envelope.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(Status(code), ResponseData{
		Code:    code,
		Message: Message(code),
		Data:    data,
	})
}

// ErrorResponseWithStatus writes an error envelope with an explicit status and aborts the chain.
func ErrorResponseWithStatus(c *gin.Context, status, code int, message string, data any) {
	if message == "" {
		message = Message(code)
	}
	c.AbortWithStatusJSON(status, ResponseData{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope using the default status for code.
func ErrorResponse(c *gin.Context, code int, data any) {
	ErrorResponseWithStatus(c, Status(code), code, "", data)
}
