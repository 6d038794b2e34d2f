package request

import (
	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-circq/pkg/common/http/response"
	"github.com/huynhanx03/go-circq/pkg/common/http/validation"
)

// ParseRequest binds query parameters (`form` tags) and the JSON body into
// T, then validates it. A request without a body leaves the JSON fields at
// their zero values; handlers that need a body must reject that themselves.
// On failure the error response is written and ok is false.
func ParseRequest[T any](c *gin.Context) (*T, bool) {
	var req T
	if c.Request.URL.RawQuery != "" {
		if err := c.ShouldBindQuery(&req); err != nil {
			response.ErrorResponse(c, response.CodeParamInvalid, response.ToErrorResponse(err))
			return nil, false
		}
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ErrorResponse(c, response.CodeParamInvalid, response.ToErrorResponse(err))
			return nil, false
		}
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		response.ErrorResponse(c, response.CodeValidationFailed, response.ToErrorResponse(msg))
		return nil, false
	}

	return &req, true
}
