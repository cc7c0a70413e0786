package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenRequestID() string {
	return GetTimeString() + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func GetTimeString() string {
	now := time.Now()
	return fmt.Sprintf("%s%d", now.Format("20060102150405"), now.UnixNano()%1e9)
}

func GetTimestamp() int64 {
	return time.Now().Unix()
}

func MessageWithRequestId(message string, id string) string {
	if id == "" {
		return message
	}
	return fmt.Sprintf("%s (request id: %s)", message, id)
}
