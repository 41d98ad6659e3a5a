package tlsf

import "unsafe"

// WalkPool visits every block in p, in physical order, calling visit with
// each block's payload pointer, payload size, and used/free status. Walking
// stops at the pool's terminating sentinel. visit must not call any
// allocator method on c; the walk does not tolerate concurrent mutation of
// p's block chain.
func (c *Control) WalkPool(p *Pool, visit func(payload unsafe.Pointer, size uintptr, used bool)) {
	for b := p.first; !blockIsLast(b); b = nextPhysical(b) {
		visit(payloadOf(b), blockSize(b), !isFree(b))
	}
}

// BlockSize returns the payload size of the block ptr was returned from,
// i.e. how many bytes are actually available starting at ptr.
func (c *Control) BlockSize(ptr unsafe.Pointer) uintptr {
	return blockSize(headerFromPayload(ptr))
}
