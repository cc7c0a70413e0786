package common

import "time"

var Version = "v0.0.0" // set at build time with -ldflags "-X github.com/flux-image/flux-image/common.Version=..."
var StartTime = time.Now().Unix()
