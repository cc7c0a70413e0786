package common

import (
	"context"
	"math"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/flux-image/flux-image/common/logger"
)

var backgroundPool gopool.Pool

func init() {
	backgroundPool = gopool.NewPool("gopool.BackgroundPool", math.MaxInt32, gopool.NewConfig())
	backgroundPool.SetPanicHandler(func(ctx context.Context, i interface{}) {
		logger.Errorf(ctx, "panic in gopool.BackgroundPool: %v", i)
	})
}

// CtxGo runs f on the shared pool. A panic in f is logged instead of crashing the process.
func CtxGo(ctx context.Context, f func()) {
	backgroundPool.CtxGo(ctx, f)
}
