package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/zjrosen/parlor/internal/chat"
)

type blob struct {
	data []byte
	mime string
}

// NewBlob wraps data, sniffing its MIME type from the content.
func NewBlob(data []byte) chat.Blob {
	return &blob{data: data, mime: mimetype.Detect(data).String()}
}

func (b *blob) MimeType() string { return b.mime }
func (b *blob) Size() int64      { return int64(len(b.data)) }
func (b *blob) Bytes() []byte    { return b.data }

// ReadFile loads path into a chat.File named after its base name.
func ReadFile(path string) (*chat.File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the watched drop folder
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return &chat.File{Name: filepath.Base(path), Blob: NewBlob(data)}, nil
}
