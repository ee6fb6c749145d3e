package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parlor/internal/chat"
)

type stubSettings map[string]int

func (s stubSettings) GetInt(_ context.Context, key string) (int, bool, error) {
	if key == "broken" {
		return 0, false, errors.New("disk on fire")
	}
	v, ok := s[key]
	return v, ok, nil
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		accept string
		mime   string
		want   bool
	}{
		{"", "application/pdf", true},
		{"*/*", "image/png", true},
		{"image/*", "image/png", true},
		{"image/*", "video/mp4", false},
		{"image/*", "imagex/png", false},
		{"text/plain", "text/plain; charset=utf-8", true},
		{"text/plain", "text/html", false},
	}
	for _, tt := range tests {
		t.Run(tt.accept+"|"+tt.mime, func(t *testing.T) {
			require.Equal(t, tt.want, Accepts(tt.accept, tt.mime))
		})
	}
}

func TestPicker_OldestMatchingFirst(t *testing.T) {
	p := NewPicker()
	doc := &chat.File{Name: "a.txt", Blob: NewBlob([]byte("hello"))}
	img1 := &chat.File{Name: "1.png", Blob: NewBlob(pngBytes(t, 2, 2))}
	img2 := &chat.File{Name: "2.png", Blob: NewBlob(pngBytes(t, 2, 2))}
	p.Offer(doc)
	p.Offer(img1)
	p.Offer(img2)

	f, err := p.Pick(context.Background(), "image/*")
	require.NoError(t, err)
	require.Same(t, img1, f)
	require.Equal(t, 2, p.Pending())

	f, err = p.Pick(context.Background(), "")
	require.NoError(t, err)
	require.Same(t, doc, f)

	f, err = p.Pick(context.Background(), "video/*")
	require.NoError(t, err)
	require.Nil(t, f, "nothing matching means the picker was cancelled")
	require.Equal(t, 1, p.Pending())
}

func TestOpenFile_WithoutPickerIsCancelled(t *testing.T) {
	f, err := New(Config{}).OpenFile(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, f)
}

func TestOpenFile_UsesPicker(t *testing.T) {
	picker := NewPicker()
	want := &chat.File{Name: "a.txt", Blob: NewBlob([]byte("hi"))}
	picker.Offer(want)

	f, err := New(Config{Picker: picker}).OpenFile(context.Background(), "text/*")
	require.NoError(t, err)
	require.Same(t, want, f)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	f, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "note.txt", f.Name)
	require.True(t, Accepts("text/plain", f.Blob.MimeType()))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestSettingInt(t *testing.T) {
	ctx := context.Background()

	_, ok, err := New(Config{}).SettingInt(ctx, "sentImageSizeLimit")
	require.NoError(t, err)
	require.False(t, ok)

	p := New(Config{Settings: stubSettings{"sentImageSizeLimit": 1200}})
	v, ok, err := p.SettingInt(ctx, "sentImageSizeLimit")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1200, v)

	_, _, err = p.SettingInt(ctx, "broken")
	require.Error(t, err)
}

func TestGetLocalMedia(t *testing.T) {
	ctx := context.Background()

	m, err := New(Config{}).GetLocalMedia(ctx, chat.MediaRequest{Video: true})
	require.NoError(t, err)
	require.True(t, m.HasAudio())
	require.True(t, m.HasVideo())
	m.Dispose()
	require.False(t, m.HasVideo())

	_, err = New(Config{NoLocalDevices: true}).GetLocalMedia(ctx, chat.MediaRequest{Video: true})
	require.Error(t, err)
}

func TestLoadVideo_Unsupported(t *testing.T) {
	_, err := New(Config{}).LoadVideo(context.Background(), NewBlob([]byte("x")))
	require.ErrorIs(t, err, ErrUnsupportedVideo)
}

func TestRandom(t *testing.T) {
	p := New(Config{Random: func() float64 { return 0.25 }})
	require.Equal(t, 0.25, p.Random())

	r := New(Config{}).Random()
	require.GreaterOrEqual(t, r, 0.0)
	require.Less(t, r, 1.0)
}

func TestIsImageIsVideo(t *testing.T) {
	require.True(t, IsImage(NewBlob(pngBytes(t, 1, 1))))
	require.False(t, IsVideo(NewBlob(pngBytes(t, 1, 1))))
}
