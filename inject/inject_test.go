package inject

import (
	"testing"

	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/controller"
	"github.com/flux-image/flux-image/relay/channel/together"
	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withServerAPIKey(t *testing.T, key string) {
	t.Helper()
	prev := config.ServerAPIKey
	config.ServerAPIKey = key
	t.Cleanup(func() { config.ServerAPIKey = prev })
}

func TestSetupWithServerKey(t *testing.T) {
	withServerAPIKey(t, "server-key")
	injector := Setup()

	ctl, err := do.Invoke[*controller.ImageController](injector)
	require.NoError(t, err)
	assert.NotNil(t, ctl.DefaultGenerator)
	assert.Equal(t, together.DefaultModel, ctl.Model)

	client, err := do.Invoke[*together.Client](injector)
	require.NoError(t, err)
	assert.Same(t, client, ctl.DefaultGenerator)
}

func TestSetupWithoutServerKey(t *testing.T) {
	withServerAPIKey(t, "")
	injector := Setup()

	ctl, err := do.Invoke[*controller.ImageController](injector)
	require.NoError(t, err)
	assert.Nil(t, ctl.DefaultGenerator)

	generator, err := ctl.NewGenerator("request-key")
	require.NoError(t, err)
	assert.NotNil(t, generator)

	_, err = ctl.NewGenerator("bad\r\nkey")
	assert.ErrorIs(t, err, together.ErrInvalidCredential)
}
