package tlsf

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuardedAddPoolAndMalloc(t *testing.T) {
	g := NewGuarded(nil)
	_, err := g.AddPool(make([]byte, 4096))
	require.NoError(t, err)

	p := g.Malloc(128)
	require.NotNil(t, p)
	require.GreaterOrEqual(t, g.BlockSize(p), uintptr(128))

	g.Free(p)
}

func TestGuardedConcurrentAllocFree(t *testing.T) {
	g := NewGuarded(nil)
	_, err := g.AddPool(make([]byte, 1<<20))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 64; j++ {
				p := g.Malloc(64)
				if p != nil {
					g.Free(p)
				}
			}
		}()
	}
	wg.Wait()
}

func TestDefaultIsASingleton(t *testing.T) {
	require.Same(t, Default(), Default())
}
