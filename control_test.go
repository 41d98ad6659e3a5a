package tlsf

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T, bytes int) (*Control, *Pool) {
	t.Helper()
	mem := make([]byte, bytes)
	c, p, err := CreateWithPool(mem)
	require.NoError(t, err)
	return c, p
}

func TestAddPoolRejectsEmpty(t *testing.T) {
	c := New()
	_, err := c.AddPool(nil)
	require.ErrorIs(t, err, ErrInvalidPool)
}

func TestAddPoolRejectsTooSmall(t *testing.T) {
	c := New()
	_, err := c.AddPool(make([]byte, 4))
	require.ErrorIs(t, err, ErrPoolTooSmall)
}

func TestAddPoolInitialWalk(t *testing.T) {
	c, p := newTestPool(t, 4096)

	var blocks []struct {
		size uintptr
		used bool
	}
	c.WalkPool(p, func(_ unsafe.Pointer, size uintptr, used bool) {
		blocks = append(blocks, struct {
			size uintptr
			used bool
		}{size, used})
	})

	require.Len(t, blocks, 1)
	require.False(t, blocks[0].used)
}

func TestFindSuitableEmptyReturnsNil(t *testing.T) {
	c := New()
	b, _, _ := c.findSuitable(0, 0)
	if b != nil {
		t.Fatalf("findSuitable on empty control returned %v, want nil", b)
	}
}

func TestBitmapSetAfterFreeingBack(t *testing.T) {
	c, _ := newTestPool(t, 4096)
	// Split the only free block with one large allocation, then free it
	// back: it coalesces with the split-off remainder and a bit must still
	// be set, mirroring the post-add_pool state (round-trip property 5).
	p := c.Malloc(3000)
	require.NotNil(t, p)
	c.Free(p)

	if c.flBitmap == 0 {
		t.Fatal("flBitmap unexpectedly clear after a single big block was freed back")
	}
}
