package inject

import (
	"fmt"
	"net/http"

	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/flux-image/flux-image/controller"
	"github.com/flux-image/flux-image/relay/channel"
	"github.com/flux-image/flux-image/relay/channel/together"
	"github.com/flux-image/flux-image/service"
	"github.com/samber/do"
	"github.com/samber/lo"
)

// Setup registers the services both binaries need. Configuration must be loaded first.
// *together.Client is only resolvable when TOGETHER_API_KEY is set.
func Setup() *do.Injector {
	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			if config.DebugEnabled {
				logger.SysLog(fmt.Sprintf(format, args...))
			}
		},
	})

	do.Provide[*http.Client](injector, func(i *do.Injector) (*http.Client, error) {
		return service.NewProxyHttpClient(config.ProxyURL)
	})
	do.Provide[together.Options](injector, func(i *do.Injector) (together.Options, error) {
		return together.Options{
			BaseURL:    config.BaseURL,
			Model:      config.ModelName,
			HTTPClient: do.MustInvoke[*http.Client](i),
		}, nil
	})
	do.Provide[*together.Client](injector, func(i *do.Injector) (*together.Client, error) {
		return together.NewClient(config.ServerAPIKey, do.MustInvoke[together.Options](i))
	})
	do.Provide[controller.GeneratorFactory](injector, func(i *do.Injector) (controller.GeneratorFactory, error) {
		options := do.MustInvoke[together.Options](i)
		return func(apiKey string) (channel.ImageGenerator, error) {
			client, err := together.NewClient(apiKey, options)
			if err != nil {
				return nil, err
			}
			return client, nil
		}, nil
	})
	do.Provide[*controller.ImageController](injector, NewImageController)

	return injector
}

func NewImageController(i *do.Injector) (*controller.ImageController, error) {
	ctl := &controller.ImageController{
		NewGenerator: do.MustInvoke[controller.GeneratorFactory](i),
		Model:        lo.Ternary(config.ModelName != "", config.ModelName, together.DefaultModel),
		BaseURL:      lo.Ternary(config.BaseURL != "", config.BaseURL, together.DefaultBaseURL),
	}
	if config.ServerAPIKey == "" {
		logger.SysLog("no default API key found, requests must supply api_key")
		return ctl, nil
	}
	client, err := do.Invoke[*together.Client](i)
	if err != nil {
		return nil, err
	}
	ctl.DefaultGenerator = client
	return ctl, nil
}
