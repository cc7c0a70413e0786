package together

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/flux-image/flux-image/common/logger"
	"github.com/flux-image/flux-image/relay/model"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/net/http/httpguts"
)

type Options struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Client calls the Together image generation endpoint with a single credential.
// It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	if !httpguts.ValidHeaderFieldValue("Bearer " + apiKey) {
		return nil, ErrInvalidCredential
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(lo.Ternary(opts.BaseURL != "", opts.BaseURL, DefaultBaseURL), "/"),
		model:      lo.Ternary(opts.Model != "", opts.Model, DefaultModel),
		httpClient: lo.Ternary(opts.HTTPClient != nil, opts.HTTPClient, http.DefaultClient),
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate sends one request and returns the URL of the first image. Failures
// after the request is built are *TransportError.
func (c *Client) Generate(ctx context.Context, request *model.ImageRequest) (string, error) {
	if request == nil || strings.TrimSpace(request.Prompt) == "" {
		return "", ErrEmptyPrompt
	}

	payload := *request
	payload.Model = c.model
	if payload.N <= 0 {
		payload.N = 1
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "together: marshal image request")
	}

	fullRequestURL := c.baseURL + "/images/generations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullRequestURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "together: new request failed")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	logger.Infof(ctx, "generating image with %s, size %dx%d, n %d", payload.Model, payload.Width, payload.Height, payload.N)
	logger.Debugf(ctx, "prompt: %s", payload.Prompt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Errorf(ctx, "image request failed: %s", err.Error())
		return "", &TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}
	logger.Infof(ctx, "image api responded with status code %d", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		transportErr := newStatusError(resp.StatusCode, fullRequestURL, responseBody)
		logger.Errorf(ctx, "image api error: %s", transportErr.Error())
		return "", transportErr
	}

	imageURL, err := parseImageURL(responseBody)
	if err != nil {
		logger.Errorf(ctx, "malformed image response: %s", err.Error())
		return "", &TransportError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response: " + err.Error(),
			Detail:     decodeErrorDetail(responseBody),
			Err:        err,
		}
	}
	return imageURL, nil
}

func parseImageURL(body []byte) (string, error) {
	var response model.ImageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrap(err, "decode image response")
	}
	if len(response.Data) == 0 {
		return "", errNoImageData
	}
	imageURL := strings.TrimSpace(response.Data[0].Url)
	if imageURL == "" {
		return "", errNoImageURL
	}
	return imageURL, nil
}
