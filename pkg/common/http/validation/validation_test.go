package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"gte=1"`
}

func TestIsRequestValid(t *testing.T) {
	ok, msg := IsRequestValid(sample{Name: "q", Count: 1})
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = IsRequestValid(sample{})
	assert.False(t, ok)
	assert.Equal(t, "Name failed on required; Count failed on gte", msg)
}

func TestIsRequestValid_EmptyStruct(t *testing.T) {
	ok, _ := IsRequestValid(struct{}{})
	assert.True(t, ok)
}
