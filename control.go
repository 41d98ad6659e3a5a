package tlsf

// Control is the top-level allocator handle: the bitmaps and free-list
// head table of the design's "Control structure", plus the bookkeeping
// needed to support more than one admitted pool. A Control is a plain Go
// value living on the Go heap — unlike the block headers inside a pool,
// it holds no data that needs to live inside caller-supplied memory, so
// it is never placed at a caller-given address the way a byte-exact port
// would (see DESIGN.md).
//
// Control is not goroutine-safe; see Guarded for a synchronized façade.
type Control struct {
	flBitmap  uint32
	slBitmap  [flIndexCount]uint32
	matrix    [flIndexCount][slIndexCount]*header
	nullBlock freeHeader
	pools     []*Pool
}

// New constructs a fresh, empty Control: every free-list head points at
// the control's own block-null sentinel and both bitmaps are clear.
func New() *Control {
	c := &Control{}
	c.nullBlock.next = &c.nullBlock.header
	c.nullBlock.prev = &c.nullBlock.header
	for fl := 0; fl < flIndexCount; fl++ {
		for sl := 0; sl < slIndexCount; sl++ {
			c.matrix[fl][sl] = &c.nullBlock.header
		}
	}
	return c
}

// Create is the direct counterpart of the design's create(mem): it
// installs a fresh control with no pools attached.
func Create() *Control {
	return New()
}

// CreateWithPool combines Create and AddPool: it builds a fresh Control
// and immediately admits mem as its first pool.
func CreateWithPool(mem []byte) (*Control, *Pool, error) {
	c := New()
	p, err := c.AddPool(mem)
	if err != nil {
		return nil, nil, err
	}
	return c, p, nil
}

// findSuitable locates a free block of size class (fl, sl) or later,
// following section 4.3 of the design: a masked lookup in the target
// row's bitmap, falling back to a masked lookup in the row bitmap itself
// when the row has nothing at or above sl. Both steps are a single ffs
// call, so the whole search is O(1). Returns a nil header when no pool
// has a block large enough.
func (c *Control) findSuitable(fl, sl int) (*header, int, int) {
	slMap := c.slBitmap[fl] & (^uint32(0) << uint(sl))
	if slMap == 0 {
		flMap := c.flBitmap & (^uint32(0) << uint(fl+1))
		if flMap == 0 {
			return nil, 0, 0
		}
		fl = ffs(flMap)
		slMap = c.slBitmap[fl]
	}
	sl = ffs(slMap)
	return c.matrix[fl][sl], fl, sl
}

// insertFreeBlock places b at the head of free list (fl, sl), links the
// control's block-null sentinel as its terminator, and sets the
// corresponding bitmap bits.
func (c *Control) insertFreeBlock(b *header, fl, sl int) {
	current := c.matrix[fl][sl]
	fb, cur := asFree(b), asFree(current)
	fb.next = current
	fb.prev = &c.nullBlock.header
	cur.prev = b

	c.matrix[fl][sl] = b
	setBit32(uint(sl), &c.slBitmap[fl])
	setBit32(uint(fl), &c.flBitmap)
}

// removeFreeBlock unlinks b from free list (fl, sl). If b was the list's
// head, the head is replaced by its successor; if that successor is the
// block-null sentinel the list is now empty and the bitmap bits are
// cleared.
func (c *Control) removeFreeBlock(b *header, fl, sl int) {
	fb := asFree(b)
	prev, next := fb.prev, fb.next
	asFree(next).prev = prev
	asFree(prev).next = next

	if c.matrix[fl][sl] == b {
		c.matrix[fl][sl] = next
		if next == &c.nullBlock.header {
			clearBit32(uint(sl), &c.slBitmap[fl])
			if c.slBitmap[fl] == 0 {
				clearBit32(uint(fl), &c.flBitmap)
			}
		}
	}
}

// releaseAsFree marks b free, fixes up its physical successor's
// back-pointer and prevFree flag, and files it on the free list its own
// size maps to. It is the common tail of every operation that hands a
// block back to the allocator: Free, the trimming helpers, and the
// leading-gap split memalign performs.
func (c *Control) releaseAsFree(b *header) {
	markFree(b)
	fl, sl := mappingInsert(blockSize(b))
	c.insertFreeBlock(b, fl, sl)
}

// mergePrev implements block_merge_prev: if b's physical predecessor is
// free, the predecessor is pulled off its free list and b is absorbed into
// it; the predecessor becomes the new block of record. Returns b unchanged
// if its predecessor is not free.
func (c *Control) mergePrev(b *header) *header {
	if !isPrevFree(b) {
		return b
	}
	prev := b.prevPhysBlock
	fl, sl := mappingInsert(blockSize(prev))
	c.removeFreeBlock(prev, fl, sl)
	setBlockSize(prev, blockSize(prev)+blockSize(b)+wordSize)
	return prev
}

// mergeNext implements block_merge_next: if b's physical successor is
// free, it is pulled off its free list and absorbed into b. Returns b
// unchanged if its successor is not free.
func (c *Control) mergeNext(b *header) *header {
	next := nextPhysical(b)
	if !isFree(next) {
		return b
	}
	fl, sl := mappingInsert(blockSize(next))
	c.removeFreeBlock(next, fl, sl)
	setBlockSize(b, blockSize(b)+blockSize(next)+wordSize)
	return b
}
