package together

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/flux-image/flux-image/relay/model"
	"github.com/pkg/errors"
)

var (
	ErrMissingCredential = errors.New("together: missing credential")
	ErrInvalidCredential = errors.New("together: credential is not a valid header value")
	ErrEmptyPrompt       = errors.New("together: prompt is required")

	errNoImageData = errors.New("response has no data")
	errNoImageURL  = errors.New("first image has no url")
)

// TransportError reports a failed call to the image API: the request never got a
// response, the response status was not 2xx, or the body could not be used.
type TransportError struct {
	StatusCode int    // 0 when no response was received
	Message    string // transport-level description
	Detail     string // decoded upstream error, may be empty
	Err        error
}

func (e *TransportError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + " - " + e.Detail
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newStatusError(statusCode int, url string, body []byte) *TransportError {
	class := "Client Error"
	if statusCode >= http.StatusInternalServerError {
		class = "Server Error"
	}
	reason := http.StatusText(statusCode)
	if reason == "" {
		reason = "Unknown Status"
	}
	message := fmt.Sprintf("%d %s: %s for url: %s", statusCode, class, reason, url)
	return &TransportError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     decodeErrorDetail(body),
		Err:        errors.New(message),
	}
}

// decodeErrorDetail extracts error.message from a JSON body and falls back to the
// raw text. An empty body yields "".
func decodeErrorDetail(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	var errResponse model.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Error != nil && errResponse.Error.Message != "" {
		return errResponse.Error.Message
	}
	return text
}
