//go:build unix

package tlsf

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// NewAnonymousPool mmaps an anonymous, private region of size bytes
// suitable for handing straight to AddPool: the kernel guarantees page
// alignment, which satisfies AddPool's alignSize requirement with room to
// spare. Callers on non-unix targets should supply their own backing slice
// (a plain make([]byte, n) works fine; AddPool has no OS dependency of its
// own) instead of this convenience.
func NewAnonymousPool(size int) ([]byte, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrap(err, "tlsf: mmap anonymous pool")
	}
	return mem, nil
}

// ReleasePool unmaps memory obtained from NewAnonymousPool. It must not be
// called on a pool still admitted to a live Control: freeing the backing
// memory out from under a Control with live blocks is a use-after-free.
func ReleasePool(mem []byte) error {
	if err := unix.Munmap(mem); err != nil {
		return errors.Wrap(err, "tlsf: munmap pool")
	}
	return nil
}
