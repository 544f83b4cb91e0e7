package engine

import (
	"io"
	"sync"

	"github.com/tangobridge/tangobridge/pkg/wire"
)

// DocumentWriter streams every document to w as enveloped CBOR. The first
// write error stops further writes and is reported by Err.
type DocumentWriter struct {
	mu    sync.Mutex
	enc   *wire.DocumentEncoder
	err   error
	count int
}

// NewDocumentWriter creates a writer callback.
func NewDocumentWriter(w io.Writer) *DocumentWriter {
	return &DocumentWriter{enc: wire.NewDocumentEncoder(w)}
}

// Handle is the engine callback.
func (dw *DocumentWriter) Handle(kind wire.Kind, doc any) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.err != nil {
		return
	}
	if err := dw.enc.Encode(kind, doc); err != nil {
		dw.err = err
		return
	}
	dw.count++
}

// Count returns the number of documents written.
func (dw *DocumentWriter) Count() int {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return dw.count
}

// Err returns the first write error.
func (dw *DocumentWriter) Err() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return dw.err
}
