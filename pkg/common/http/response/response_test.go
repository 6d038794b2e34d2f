package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessage(t *testing.T) {
	assert.Equal(t, http.StatusOK, Status(CodeSuccess))
	assert.Equal(t, http.StatusBadRequest, Status(CodeParamInvalid))
	assert.Equal(t, http.StatusInternalServerError, Status(12345))
	assert.Equal(t, "validation failed", Message(CodeValidationFailed))
	assert.Equal(t, "unknown", Message(12345))
}

func TestToErrorResponse(t *testing.T) {
	assert.Equal(t, ErrorDetail{}, ToErrorResponse(nil))
	assert.Equal(t, ErrorDetail{Detail: "boom"}, ToErrorResponse(errors.New("boom")))
	assert.Equal(t, ErrorDetail{Detail: "bad"}, ToErrorResponse("bad"))
	assert.Equal(t, ErrorDetail{Detail: "internal server error"}, ToErrorResponse(42))
}
