package tlsf

import "unsafe"

// blockSplit carves h into a front block of exact payload n and a
// trailing block whose struct start overlaps the front block's final
// word, per the design's block_split: "the remainder starts at
// payload(b) + n - one_word". The remainder is returned with its size set
// and its free/prevFree flags clear; the caller decides what to do with it
// (trimFree marks it free and releases it; trimFreeLeading releases the
// front block and returns the remainder; trimUsed merges it with its own
// successor first).
func blockSplit(h *header, n uintptr) *header {
	total := blockSize(h)
	remAddr := uintptr(payloadOf(h)) + n - wordSize
	rem := (*header)(unsafe.Pointer(remAddr))
	rem.size = total - n - wordSize
	setBlockSize(h, n)
	return rem
}

// trimFree splits a free block b down to payload n, if splittable, and
// releases the remainder back onto the free lists. b itself is returned
// (still free; the caller marks it used once it is done trimming).
func (c *Control) trimFree(b *header, n uintptr) *header {
	if !blockCanSplit(b, n) {
		return b
	}
	rem := blockSplit(b, n)
	c.releaseAsFree(rem)
	return b
}

// trimUsed splits a used block b down to payload n, if splittable. Unlike
// trimFree, the remainder is first merged with its own physical successor
// (if free) before being released, since a used block's neighbor may
// already be free and eager coalescing (invariant 3) must be preserved.
func (c *Control) trimUsed(b *header, n uintptr) {
	if !blockCanSplit(b, n) {
		return
	}
	rem := blockSplit(b, n)
	rem = c.mergeNext(rem)
	c.releaseAsFree(rem)
}

// trimFreeLeading splits a free block b into a head of payload gap -
// one_word and a tail remainder, files the head back on the free lists,
// and returns the tail. It exists solely to shave a leading gap off a
// block found for an over-aligned Memalign request.
func (c *Control) trimFreeLeading(b *header, gap uintptr) *header {
	headSize := gap - wordSize
	tail := blockSplit(b, headSize)
	c.releaseAsFree(b)
	return tail
}

// prepareUsed trims a free block b down to payload size (if there is
// enough slack to split off a remainder) and marks it used, returning the
// payload pointer callers see.
func (c *Control) prepareUsed(b *header, size uintptr) unsafe.Pointer {
	b = c.trimFree(b, size)
	markUsed(b)
	return payloadOf(b)
}

// Malloc returns a pointer to a payload of at least n bytes, aligned to
// alignSize, or nil if no admitted pool has a block large enough. A
// zero-byte request returns nil.
func (c *Control) Malloc(n uintptr) unsafe.Pointer {
	size := adjustRequestSize(n, alignSize)
	if size == 0 {
		return nil
	}
	fl, sl := mappingSearch(size)
	b, fl, sl := c.findSuitable(fl, sl)
	if b == nil {
		return nil
	}
	c.removeFreeBlock(b, fl, sl)
	return c.prepareUsed(b, size)
}

// Memalign returns a pointer to a payload of at least n bytes aligned to
// align, which must be a power of two. For align <= alignSize this is
// equivalent to Malloc.
func (c *Control) Memalign(align, n uintptr) unsafe.Pointer {
	if align <= alignSize {
		return c.Malloc(n)
	}

	adjust := adjustRequestSize(n, alignSize)
	if adjust == 0 {
		return nil
	}

	request := adjustRequestSize(adjust+align+fullHeaderSize, align)
	if request == 0 {
		return nil
	}

	fl, sl := mappingSearch(request)
	b, fl, sl := c.findSuitable(fl, sl)
	if b == nil {
		return nil
	}
	c.removeFreeBlock(b, fl, sl)

	payload := uintptr(payloadOf(b))
	aligned := alignUp(payload, align)
	gap := aligned - payload
	if gap != 0 && gap < fullHeaderSize {
		bump := fullHeaderSize - gap
		if bump < align {
			bump = align
		}
		aligned = alignUp(aligned+bump, align)
		gap = aligned - payload
	}

	if gap != 0 {
		b = c.trimFreeLeading(b, gap)
	}

	return c.prepareUsed(b, adjust)
}

// Free releases the block payload ptr was obtained from, coalescing it
// with its physical predecessor and/or successor if either is itself
// free, and files the result on the appropriate free list. ptr == nil is
// a no-op.
func (c *Control) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	b := headerFromPayload(ptr)
	b.size |= flagFree
	b = c.mergePrev(b)
	b = c.mergeNext(b)
	c.releaseAsFree(b)
}

// Realloc resizes the allocation at ptr to at least n bytes. ptr == nil is
// equivalent to Malloc(n); n == 0 with a non-nil ptr is equivalent to
// Free(ptr), returning nil. Growth that fits by trimming in place, or by
// absorbing a free physical successor, preserves ptr; otherwise a fresh
// block is allocated, the lesser of the old and new sizes is copied, and
// the original is freed. On failure to grow, ptr and its contents are
// left untouched and nil is returned.
func (c *Control) Realloc(ptr unsafe.Pointer, n uintptr) unsafe.Pointer {
	if ptr == nil {
		return c.Malloc(n)
	}
	if n == 0 {
		c.Free(ptr)
		return nil
	}

	b := headerFromPayload(ptr)
	adjust := adjustRequestSize(n, alignSize)
	if adjust == 0 {
		return nil
	}

	cursize := blockSize(b)
	if adjust <= cursize {
		c.trimUsed(b, adjust)
		return ptr
	}

	next := nextPhysical(b)
	if isFree(next) && cursize+wordSize+blockSize(next) >= adjust {
		b = c.mergeNext(b)
		markUsed(b)
		c.trimUsed(b, adjust)
		return ptr
	}

	newPtr := c.Malloc(n)
	if newPtr == nil {
		return nil
	}
	copySize := cursize
	if n < copySize {
		copySize = n
	}
	copyPayload(newPtr, ptr, copySize)
	c.Free(ptr)
	return newPtr
}

func copyPayload(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	d := unsafe.Slice((*byte)(dst), int(n))
	s := unsafe.Slice((*byte)(src), int(n))
	copy(d, s)
}
