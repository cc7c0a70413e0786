package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	DefaultImageDimension = 1024
	DefaultImageCount     = 1
	MinImageDimension     = 256
	MaxImageDimension     = 2048
	MaxImagePixels        = 2097152 // 2MP, inclusive
)

var (
	ErrPromptRequired       = errors.New("prompt required")
	ErrDimensionsOutOfRange = errors.New("dimensions out of range")
	ErrImageTooLarge        = errors.New("image too large (>2MP)")
	ErrInvalidImageCount    = errors.New("image count must be at least 1")
)

const pixelBudgetTag = "pixel_budget"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		request := sl.Current().Interface().(GenerateRequest)
		if request.Width*request.Height > MaxImagePixels {
			sl.ReportError(request.Width, "Width", "width", pixelBudgetTag, "")
		}
	}, GenerateRequest{})
	return v
}

// validateGenerateRequest expects a trimmed prompt. Checks run in a fixed order:
// prompt, dimension range, pixel budget, image count.
func validateGenerateRequest(request GenerateRequest) error {
	if request.Prompt == "" {
		return ErrPromptRequired
	}
	err := validate.Struct(request)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	switch {
	case lo.ContainsBy(fieldErrors, func(e validator.FieldError) bool {
		return (e.Field() == "Width" || e.Field() == "Height") && e.Tag() != pixelBudgetTag
	}):
		return ErrDimensionsOutOfRange
	case lo.ContainsBy(fieldErrors, func(e validator.FieldError) bool {
		return e.Tag() == pixelBudgetTag
	}):
		return ErrImageTooLarge
	default:
		return ErrInvalidImageCount
	}
}
