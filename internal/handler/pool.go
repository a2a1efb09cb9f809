package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a typical JSON error or small sheet
	initialBufferSize = 4 << 10
	// maxPooledBufferSize keeps a large equipment export from pinning memory
	maxPooledBufferSize = 1 << 20
)

// bufferPool holds the buffers JSON and CSV responses are rendered into
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) bool {
	if buf.Cap() > maxPooledBufferSize {
		return false
	}
	buf.Reset()
	bufferPool.Put(buf)
	return true
}
