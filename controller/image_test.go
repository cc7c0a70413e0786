package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flux-image/flux-image/common/i18n"
	"github.com/flux-image/flux-image/relay/channel"
	"github.com/flux-image/flux-image/relay/channel/together"
	relaymodel "github.com/flux-image/flux-image/relay/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeGenerator struct {
	url      string
	err      error
	requests []*relaymodel.ImageRequest
}

func (g *fakeGenerator) Generate(_ context.Context, request *relaymodel.ImageRequest) (string, error) {
	g.requests = append(g.requests, request)
	return g.url, g.err
}

func newTestController(defaultGenerator *fakeGenerator, factory GeneratorFactory) *ImageController {
	ctl := &ImageController{NewGenerator: factory, Model: together.DefaultModel}
	if defaultGenerator != nil {
		ctl.DefaultGenerator = defaultGenerator
	}
	if ctl.NewGenerator == nil {
		ctl.NewGenerator = func(apiKey string) (channel.ImageGenerator, error) {
			return nil, errors.New("unexpected request credential")
		}
	}
	return ctl
}

func newTestRouter(ctl *ImageController, tag language.Tag) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(i18n.ContextKey, tag)
		c.Next()
	})
	router.POST("/generate", ctl.Generate)
	router.GET("/health", ctl.Health)
	router.GET("/api/status", ctl.GetStatus)
	return router
}

func postGenerate(router *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var response map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return w, response
}

func TestGenerateSuccess(t *testing.T) {
	generator := &fakeGenerator{url: "https://img.example/1.png"}
	router := newTestRouter(newTestController(generator, nil), language.English)

	w, response := postGenerate(router, `{"prompt":"  a cat  ","width":1024,"height":2048}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "https://img.example/1.png", response["image_url"])
	assert.Equal(t, "a cat", response["prompt"])
	assert.EqualValues(t, 1024, response["width"])
	assert.EqualValues(t, 2048, response["height"])

	require.Len(t, generator.requests, 1)
	assert.Equal(t, &relaymodel.ImageRequest{Prompt: "a cat", Width: 1024, Height: 2048, N: 1}, generator.requests[0])
}

func TestGenerateDefaults(t *testing.T) {
	generator := &fakeGenerator{url: "https://img.example/1.png"}
	router := newTestRouter(newTestController(generator, nil), language.English)

	w, response := postGenerate(router, `{"prompt":"a cat"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, DefaultImageDimension, response["width"])
	assert.EqualValues(t, DefaultImageDimension, response["height"])
}

func TestGenerateValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"blank prompt", `{"prompt":"   "}`, i18n.MsgPromptRequired},
		{"missing prompt", `{"width":512}`, i18n.MsgPromptRequired},
		{"width 255", `{"prompt":"x","width":255}`, i18n.MsgDimensionsOutOfRange},
		{"height 2049", `{"prompt":"x","height":2049}`, i18n.MsgDimensionsOutOfRange},
		{"2048x2048", `{"prompt":"x","width":2048,"height":2048}`, i18n.MsgImageTooLarge},
		{"n zero", `{"prompt":"x","n":0}`, i18n.MsgInvalidImageCount},
		{"wrong type", `{"prompt":"x","width":"big"}`, i18n.MsgInvalidRequestBody},
		{"not json", `prompt=x`, i18n.MsgInvalidRequestBody},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			generator := &fakeGenerator{url: "https://img.example/1.png"}
			router := newTestRouter(newTestController(generator, nil), language.English)

			w, response := postGenerate(router, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tc.want, response["error"])
			assert.Empty(t, generator.requests)
		})
	}
}

func TestGenerateWithoutCredential(t *testing.T) {
	router := newTestRouter(newTestController(nil, nil), language.English)

	w, response := postGenerate(router, `{"prompt":"a cat"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, i18n.MsgCredentialRequired, response["error"])
}

func TestGenerateRequestCredential(t *testing.T) {
	requestGenerator := &fakeGenerator{url: "https://img.example/mine.png"}
	defaultGenerator := &fakeGenerator{url: "https://img.example/default.png"}
	var gotKey string
	ctl := newTestController(defaultGenerator, func(apiKey string) (channel.ImageGenerator, error) {
		gotKey = apiKey
		return requestGenerator, nil
	})
	router := newTestRouter(ctl, language.English)

	w, response := postGenerate(router, `{"prompt":"a cat","api_key":"  user-key "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-key", gotKey)
	assert.Equal(t, "https://img.example/mine.png", response["image_url"])
	assert.Len(t, requestGenerator.requests, 1)
	assert.Empty(t, defaultGenerator.requests)
}

func TestGenerateInvalidRequestCredential(t *testing.T) {
	ctl := newTestController(nil, func(apiKey string) (channel.ImageGenerator, error) {
		return nil, together.ErrInvalidCredential
	})
	router := newTestRouter(ctl, language.English)

	w, response := postGenerate(router, `{"prompt":"a cat","api_key":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errMessage, _ := response["error"].(string)
	assert.True(t, strings.HasPrefix(errMessage, "Invalid API key: "), errMessage)
}

func TestGenerateUpstreamError(t *testing.T) {
	generator := &fakeGenerator{err: &together.TransportError{StatusCode: 500, Message: "500 Server Error: Internal Server Error for url: x"}}
	router := newTestRouter(newTestController(generator, nil), language.English)

	w, response := postGenerate(router, `{"prompt":"a cat"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An error occurred: 500 Server Error: Internal Server Error for url: x", response["error"])
}

func TestGenerateMissingCredentialError(t *testing.T) {
	generator := &fakeGenerator{err: together.ErrMissingCredential}
	router := newTestRouter(newTestController(generator, nil), language.English)

	w, response := postGenerate(router, `{"prompt":"a cat"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, i18n.MsgAPIKeyNotFound, response["error"])
}

func TestGenerateThaiMessages(t *testing.T) {
	router := newTestRouter(newTestController(&fakeGenerator{}, nil), language.Thai)

	w, response := postGenerate(router, `{"prompt":"x","width":2048,"height":2048}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ขนาดรูปใหญ่เกิน 2MP กรุณาลดขนาด", response["error"])
}

func TestHealth(t *testing.T) {
	for _, configured := range []bool{true, false} {
		var generator *fakeGenerator
		if configured {
			generator = &fakeGenerator{}
		}
		router := newTestRouter(newTestController(generator, nil), language.English)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ok", response["status"])
		assert.Equal(t, configured, response["server_api_key_configured"])
		assert.Equal(t, true, response["supports_frontend_api_key"])
	}
}
