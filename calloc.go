package tlsf

import "unsafe"

// Calloc allocates space for n elements of size bytes each and zeroes the
// result, mirroring the standard calloc contract. It returns nil if n*size
// overflows uintptr or if the underlying Malloc fails.
func (c *Control) Calloc(n, size uintptr) unsafe.Pointer {
	if n == 0 || size == 0 {
		return nil
	}
	total := n * size
	if total/n != size {
		return nil
	}
	ptr := c.Malloc(total)
	if ptr == nil {
		return nil
	}
	b := headerFromPayload(ptr)
	buf := unsafe.Slice((*byte)(ptr), int(blockSize(b)))
	clear(buf)
	return ptr
}
