package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/flux-image/flux-image/common/i18n"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/flux-image/flux-image/relay/channel"
	"github.com/flux-image/flux-image/relay/channel/together"
	relaymodel "github.com/flux-image/flux-image/relay/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/text/message"
)

type GenerateRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"api_key"`
	Width  int    `json:"width" validate:"gte=256,lte=2048"`
	Height int    `json:"height" validate:"gte=256,lte=2048"`
	N      int    `json:"n" validate:"gte=1"`
}

type GenerateResponse struct {
	Success  bool   `json:"success"`
	ImageUrl string `json:"image_url"`
	Prompt   string `json:"prompt"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// GeneratorFactory builds a generator for a credential supplied with the request.
type GeneratorFactory func(apiKey string) (channel.ImageGenerator, error)

type ImageController struct {
	// DefaultGenerator is built from TOGETHER_API_KEY at startup; nil when unset.
	DefaultGenerator channel.ImageGenerator
	NewGenerator     GeneratorFactory
	Model            string
	BaseURL          string
}

var validationMessages = map[error]string{
	ErrPromptRequired:       i18n.MsgPromptRequired,
	ErrDimensionsOutOfRange: i18n.MsgDimensionsOutOfRange,
	ErrImageTooLarge:        i18n.MsgImageTooLarge,
	ErrInvalidImageCount:    i18n.MsgInvalidImageCount,
}

func printerOf(c *gin.Context) *message.Printer {
	return i18n.NewPrinter(localeOf(c))
}

func respondError(c *gin.Context, statusCode int, message string) {
	logger.Warnf(c.Request.Context(), "generate failed with status %d: %s", statusCode, message)
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

func (ctl *ImageController) Generate(c *gin.Context) {
	printer := printerOf(c)
	request := GenerateRequest{
		Width:  DefaultImageDimension,
		Height: DefaultImageDimension,
		N:      DefaultImageCount,
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Debugf(c.Request.Context(), "bind generate request: %s", err.Error())
		respondError(c, http.StatusBadRequest, printer.Sprintf(i18n.MsgInvalidRequestBody))
		return
	}
	request.Prompt = strings.TrimSpace(request.Prompt)
	request.APIKey = strings.TrimSpace(request.APIKey)

	if err := validateGenerateRequest(request); err != nil {
		key, ok := validationMessages[err]
		if !ok {
			key = i18n.MsgInvalidRequestBody
		}
		respondError(c, http.StatusBadRequest, printer.Sprintf(key))
		return
	}

	generator, statusCode, errMessage := ctl.selectGenerator(printer, request.APIKey)
	if generator == nil {
		respondError(c, statusCode, errMessage)
		return
	}

	// The upstream call is not tied to the client connection.
	ctx := context.WithoutCancel(c.Request.Context())
	imageUrl, err := generator.Generate(ctx, &relaymodel.ImageRequest{
		Prompt: request.Prompt,
		Width:  request.Width,
		Height: request.Height,
		N:      request.N,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, generationErrorMessage(printer, err))
		return
	}

	logger.Infof(c.Request.Context(), "image generated: %s", imageUrl)
	c.JSON(http.StatusOK, GenerateResponse{
		Success:  true,
		ImageUrl: imageUrl,
		Prompt:   request.Prompt,
		Width:    request.Width,
		Height:   request.Height,
	})
}

// selectGenerator prefers the request credential, then the server default.
func (ctl *ImageController) selectGenerator(printer *message.Printer, apiKey string) (channel.ImageGenerator, int, string) {
	if apiKey != "" {
		generator, err := ctl.NewGenerator(apiKey)
		if err != nil {
			return nil, http.StatusBadRequest, printer.Sprintf(i18n.MsgInvalidAPIKey, credentialReason(printer, err))
		}
		return generator, http.StatusOK, ""
	}
	if ctl.DefaultGenerator != nil {
		return ctl.DefaultGenerator, http.StatusOK, ""
	}
	return nil, http.StatusInternalServerError, printer.Sprintf(i18n.MsgCredentialRequired)
}

func credentialReason(printer *message.Printer, err error) string {
	if errors.Is(err, together.ErrMissingCredential) {
		return printer.Sprintf(i18n.MsgAPIKeyNotFound)
	}
	return err.Error()
}

func generationErrorMessage(printer *message.Printer, err error) string {
	if errors.Is(err, together.ErrMissingCredential) {
		return printer.Sprintf(i18n.MsgAPIKeyNotFound)
	}
	return printer.Sprintf(i18n.MsgGenerationFailed, err.Error())
}
