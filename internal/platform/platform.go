// Package platform is the file-system backed chat.Platform used by the
// terminal client.
package platform

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/zjrosen/parlor/internal/chat"
	"github.com/zjrosen/parlor/internal/log"
)

// ErrUnsupportedVideo is returned by LoadVideo: there is no video decoder in
// the terminal client.
var ErrUnsupportedVideo = errors.New("video decoding is not supported")

// SettingsReader looks up integer settings.
type SettingsReader interface {
	GetInt(ctx context.Context, key string) (value int, ok bool, err error)
}

// FilePicker supplies files for OpenFile.
type FilePicker interface {
	Pick(ctx context.Context, accept string) (*chat.File, error)
}

// Config configures a Platform. Every field is optional.
type Config struct {
	Picker         FilePicker
	Settings       SettingsReader
	ReadPixels     bool
	Random         func() float64
	NoLocalDevices bool
}

// Platform implements chat.Platform.
type Platform struct {
	picker     FilePicker
	settings   SettingsReader
	readPixels bool
	random     func() float64
	noDevices  bool
}

var _ chat.Platform = (*Platform)(nil)

// New creates a Platform from cfg.
func New(cfg Config) *Platform {
	random := cfg.Random
	if random == nil {
		random = rand.Float64
	}
	return &Platform{
		picker:     cfg.Picker,
		settings:   cfg.Settings,
		readPixels: cfg.ReadPixels,
		random:     random,
		noDevices:  cfg.NoLocalDevices,
	}
}

// OpenFile returns the next picked file, or nil when there is none.
func (p *Platform) OpenFile(ctx context.Context, accept string) (*chat.File, error) {
	if p.picker == nil {
		return nil, nil
	}
	f, err := p.picker.Pick(ctx, accept)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	if f != nil {
		log.Debug(log.CatMedia, "File picked", "name", f.Name, "mimetype", f.Blob.MimeType(), "accept", accept)
	}
	return f, nil
}

func (p *Platform) HasReadPixelPermission() bool { return p.readPixels }

// LoadImage decodes blob.
func (p *Platform) LoadImage(_ context.Context, blob chat.Blob) (chat.Image, error) {
	img, err := decodeImage(blob)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (p *Platform) LoadVideo(_ context.Context, blob chat.Blob) (chat.Video, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedVideo, blob.MimeType())
}

// GetLocalMedia returns a placeholder stream carrying the requested tracks.
// Audio is always included, matching what calls are started with.
func (p *Platform) GetLocalMedia(ctx context.Context, req chat.MediaRequest) (chat.LocalMedia, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.noDevices {
		return nil, errors.New("no capture devices available")
	}
	return &localMedia{audio: true, video: req.Video}, nil
}

func (p *Platform) Random() float64 { return p.random() }

// SettingInt reads key from the settings store. Without a store every key
// is unset.
func (p *Platform) SettingInt(ctx context.Context, key string) (int, bool, error) {
	if p.settings == nil {
		return 0, false, nil
	}
	return p.settings.GetInt(ctx, key)
}

// IsVideo reports whether a picked blob should go through the video flow.
func IsVideo(b chat.Blob) bool { return strings.HasPrefix(b.MimeType(), "video/") }

// IsImage reports whether a picked blob should go through the image flow.
func IsImage(b chat.Blob) bool { return strings.HasPrefix(b.MimeType(), "image/") }

type localMedia struct {
	audio, video bool
	disposed     bool
}

func (m *localMedia) HasAudio() bool { return m.audio && !m.disposed }
func (m *localMedia) HasVideo() bool { return m.video && !m.disposed }
func (m *localMedia) Dispose()       { m.disposed = true }
