package platform

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/zjrosen/parlor/internal/chat"
)

// Picker hands out files that were offered to it, oldest first. It stands in
// for a file dialog: OpenFile never blocks and returns nil when nothing
// matching is waiting.
type Picker struct {
	mu      sync.Mutex
	pending []*chat.File
}

// NewPicker creates an empty picker.
func NewPicker() *Picker {
	return &Picker{}
}

// Offer queues f for the next matching Pick.
func (p *Picker) Offer(f *chat.File) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, f)
}

// Pending returns the number of files waiting.
func (p *Picker) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Pick removes and returns the oldest file matching accept.
func (p *Picker) Pick(_ context.Context, accept string) (*chat.File, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, idx, found := lo.FindIndexOf(p.pending, func(f *chat.File) bool {
		return Accepts(accept, f.Blob.MimeType())
	})
	if !found {
		return nil, nil
	}
	f := p.pending[idx]
	p.pending = append(p.pending[:idx], p.pending[idx+1:]...)
	return f, nil
}

// Accepts reports whether mimeType satisfies accept. An empty accept matches
// anything; "type/*" matches any subtype.
func Accepts(accept, mimeType string) bool {
	if accept == "" || accept == "*/*" {
		return true
	}
	base, _, _ := strings.Cut(mimeType, ";")
	if prefix, ok := strings.CutSuffix(accept, "/*"); ok {
		return strings.HasPrefix(base, prefix+"/")
	}
	return base == accept
}
