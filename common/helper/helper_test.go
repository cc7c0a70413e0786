package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenRequestID(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenRequestID()
		assert.False(t, ids[id], "duplicate request id %s", id)
		assert.False(t, strings.Contains(id, "-"))
		ids[id] = true
	}
}

func TestMessageWithRequestId(t *testing.T) {
	assert.Equal(t, "boom (request id: abc)", MessageWithRequestId("boom", "abc"))
	assert.Equal(t, "boom", MessageWithRequestId("boom", ""))
}
