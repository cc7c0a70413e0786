package channel

import (
	"context"

	"github.com/flux-image/flux-image/relay/model"
)

// ImageGenerator turns a prompt into the URL of the first generated image.
type ImageGenerator interface {
	Generate(ctx context.Context, request *model.ImageRequest) (string, error)
}
