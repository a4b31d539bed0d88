// internal/orderdraft/preview.go
package orderdraft

import (
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-gestor/atelier/internal/resources"
)

const previewPrefix = "preview:"

// PreviewStore hands out revocable local references to picked files.
type PreviewStore interface {
	Acquire(file resources.File) string
	Release(handle string)
}

// MemoryPreviews keeps preview bytes in memory until released.
type MemoryPreviews struct {
	mu    sync.Mutex
	files map[string]resources.File
}

func NewMemoryPreviews() *MemoryPreviews {
	return &MemoryPreviews{files: make(map[string]resources.File)}
}

func (p *MemoryPreviews) Acquire(file resources.File) string {
	handle := previewPrefix + uuid.NewString()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[handle] = file
	return handle
}

func (p *MemoryPreviews) Release(handle string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.files, handle)
}

func (p *MemoryPreviews) Open(handle string) (resources.File, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	file, ok := p.files[handle]
	return file, ok
}

// Len is the number of handles still held.
func (p *MemoryPreviews) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.files)
}

// IsPreview reports whether ref is a preview handle rather than a stored path.
func IsPreview(ref string) bool {
	return len(ref) > len(previewPrefix) && ref[:len(previewPrefix)] == previewPrefix
}
