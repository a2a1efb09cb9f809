package handler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutBuffer(t *testing.T) {
	buf := getBuffer()
	buf.WriteString("Crew,Level,Craft cost\n")
	assert.True(t, putBuffer(buf))
	assert.Zero(t, buf.Len(), "pooled buffers are reset")

	big := bytes.NewBuffer(make([]byte, 0, maxPooledBufferSize+1))
	assert.False(t, putBuffer(big), "oversized buffers are dropped")
}
