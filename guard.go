package tlsf

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

// Guarded wraps a Control behind a mutex, giving every exported operation a
// goroutine-safe entry point. Pool admission failures are logged at warn
// level (they are the only operation with a caller-actionable error); the
// allocation fast path stays silent to avoid log pressure on hot loops.
type Guarded struct {
	mu  sync.Mutex
	ctl *Control
	log *zap.Logger
}

// NewGuarded returns an empty, synchronized allocator. A nil log installs
// zap.NewNop, matching the convention of never requiring a caller to supply
// a logger just to get a usable value.
func NewGuarded(log *zap.Logger) *Guarded {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guarded{ctl: New(), log: log}
}

// AddPool admits mem under the guard's lock.
func (g *Guarded) AddPool(mem []byte) (*Pool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.ctl.AddPool(mem)
	if err != nil {
		g.log.Warn("tlsf: pool admission failed",
			zap.Error(err),
			zap.Int("bytes", len(mem)),
		)
	}
	return p, err
}

// Malloc is the synchronized equivalent of (*Control).Malloc.
func (g *Guarded) Malloc(n uintptr) unsafe.Pointer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctl.Malloc(n)
}

// Calloc is the synchronized equivalent of (*Control).Calloc.
func (g *Guarded) Calloc(n, size uintptr) unsafe.Pointer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctl.Calloc(n, size)
}

// Memalign is the synchronized equivalent of (*Control).Memalign.
func (g *Guarded) Memalign(align, n uintptr) unsafe.Pointer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctl.Memalign(align, n)
}

// Realloc is the synchronized equivalent of (*Control).Realloc.
func (g *Guarded) Realloc(ptr unsafe.Pointer, n uintptr) unsafe.Pointer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctl.Realloc(ptr, n)
}

// Free is the synchronized equivalent of (*Control).Free.
func (g *Guarded) Free(ptr unsafe.Pointer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctl.Free(ptr)
}

// BlockSize is the synchronized equivalent of (*Control).BlockSize.
func (g *Guarded) BlockSize(ptr unsafe.Pointer) uintptr {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ctl.BlockSize(ptr)
}

var (
	defaultOnce sync.Once
	defaultGrd  *Guarded
)

// Default returns a process-wide Guarded allocator, created on first use
// with a no-op logger. Callers that want their own logger should build a
// Guarded with NewGuarded instead of reaching for this singleton.
func Default() *Guarded {
	defaultOnce.Do(func() {
		defaultGrd = NewGuarded(nil)
	})
	return defaultGrd
}
