package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Theme    string `json:"theme" validate:"required,oneof=system light dark sepia"`
	FontSize int    `json:"font_size" validate:"required,min=10,max=32"`
	Nickname string `json:"nickname" validate:"omitempty,min=3"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sampleRequest{Theme: "dark", FontSize: 17}))

	err := ValidateStruct(sampleRequest{Theme: "neon", FontSize: 17})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "theme must be one of")

	err = ValidateStruct(sampleRequest{FontSize: 5})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "theme is required")
	assert.Contains(t, err.Error(), "font_size must be at least 10", "json tag names in messages")

	err = ValidateStruct(sampleRequest{Theme: "dark", FontSize: 17, Nickname: "ab"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nickname must be at least 3 characters")
}
