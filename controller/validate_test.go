package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGenerateRequest(t *testing.T) {
	valid := func(modify func(*GenerateRequest)) GenerateRequest {
		request := GenerateRequest{Prompt: "a cat", Width: 1024, Height: 1024, N: 1}
		modify(&request)
		return request
	}

	cases := []struct {
		name    string
		request GenerateRequest
		want    error
	}{
		{"defaults", valid(func(r *GenerateRequest) {}), nil},
		{"lower bound", valid(func(r *GenerateRequest) { r.Width, r.Height = 256, 256 }), nil},
		{"budget inclusive", valid(func(r *GenerateRequest) { r.Width, r.Height = 1024, 2048 }), nil},
		{"empty prompt", valid(func(r *GenerateRequest) { r.Prompt = "" }), ErrPromptRequired},
		{"prompt checked first", valid(func(r *GenerateRequest) { r.Prompt, r.Width = "", 1 }), ErrPromptRequired},
		{"width too small", valid(func(r *GenerateRequest) { r.Width = 255 }), ErrDimensionsOutOfRange},
		{"height too large", valid(func(r *GenerateRequest) { r.Height = 2049 }), ErrDimensionsOutOfRange},
		{"range before budget", valid(func(r *GenerateRequest) { r.Width, r.Height = 2049, 2048 }), ErrDimensionsOutOfRange},
		{"over budget", valid(func(r *GenerateRequest) { r.Width, r.Height = 2048, 2048 }), ErrImageTooLarge},
		{"just over budget", valid(func(r *GenerateRequest) { r.Width, r.Height = 1025, 2048 }), ErrImageTooLarge},
		{"zero count", valid(func(r *GenerateRequest) { r.N = 0 }), ErrInvalidImageCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateGenerateRequest(tc.request)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
