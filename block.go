package tlsf

import "unsafe"

// Sizing constants fixed by the allocator's contract (section 3 of the
// design: alignment granularity, second-level subdivisions, first-level
// row count, small-block threshold).
const (
	alignSizeLog2 = 2
	alignSize     = 1 << alignSizeLog2 // 4 bytes

	slIndexCountLog2 = 2
	slIndexCount     = 1 << slIndexCountLog2 // 4 second-level lists per row

	flIndexMax   = 30
	flIndexShift = alignSizeLog2 + slIndexCountLog2 // 4
	flIndexCount = flIndexMax - flIndexShift + 1     // 27 first-level rows

	smallBlockSize = 1 << flIndexShift // 16 bytes

	blockSizeMax = 1 << 30
)

// wordSize is the size of a pointer on the build target. It is the unit
// ("one word" in the design's vocabulary) used throughout the split and
// pool-admission arithmetic: the back-pointer slot a free block lends to
// its successor is exactly one word.
const wordSize = unsafe.Sizeof(uintptr(0))

const (
	// fullHeaderSize is the conservative "sizeof(header)" used as the
	// splittability threshold: the full four-word shape a FREE block's
	// header can take (prevPhysBlock, size, next, prev), even though a
	// USED block only ever costs headerOverhead.
	fullHeaderSize = 4 * wordSize

	// headerOverhead is what a used block actually pays: just its size
	// field. prevPhysBlock lives inside the previous block's trailing
	// bytes and is only ever written/read when this block is free.
	headerOverhead = wordSize

	// blockSizeMin is the smallest payload a block may carry: enough for
	// a free block's next/prev free-list links plus the one word its
	// successor borrows back for a back-pointer.
	blockSizeMin = fullHeaderSize - wordSize

	// poolOverhead is how many bytes of a caller-supplied pool are spent
	// on bookkeeping rather than payload: the admitted block's own
	// two-word header plus the one-word sentinel that terminates it.
	// See DESIGN.md for why this is one word larger than a byte-exact
	// port of the reference allocator's two-word figure.
	poolOverhead = 3 * wordSize
)

const (
	flagFree     uintptr = 1 << 0
	flagPrevFree uintptr = 1 << 1
	sizeFlagMask uintptr = flagFree | flagPrevFree
)

// header is the in-band record prefixing every block. Its layout mirrors
// the reference allocator's block_header_t: prevPhysBlock appears first so
// it can be addressed by a pointer arithmetic trick (see payloadOf /
// headerFromPayload) without costing a used block anything, and size
// packs the free/prevFree flags into its two low bits since a valid size
// is always a multiple of alignSize.
type header struct {
	prevPhysBlock *header
	size          uintptr
}

// freeHeader reinterprets a free block's header to expose the two
// additional words ("the first two words of a free block's payload", per
// the design) used as doubly-linked free-list pointers. It is only ever
// valid to read or write next/prev through this view when the underlying
// block's free flag is set; for a used block this same memory is the
// caller's payload.
type freeHeader struct {
	header
	next *header
	prev *header
}

//go:inline
func asFree(h *header) *freeHeader {
	return (*freeHeader)(unsafe.Pointer(h))
}

//go:inline
func blockSize(h *header) uintptr {
	return h.size &^ sizeFlagMask
}

//go:inline
func setBlockSize(h *header, size uintptr) {
	h.size = size | (h.size & sizeFlagMask)
}

//go:inline
func isFree(h *header) bool {
	return h.size&flagFree != 0
}

//go:inline
func isPrevFree(h *header) bool {
	return h.size&flagPrevFree != 0
}

//go:inline
func blockIsLast(h *header) bool {
	return blockSize(h) == 0
}

//go:inline
func blockCanSplit(h *header, n uintptr) bool {
	return blockSize(h) >= fullHeaderSize+n
}

// payloadOf returns the address handed to callers (or, for a free block,
// the address at which next/prev free-list links live): two words past
// the header's own struct start.
//
//go:inline
func payloadOf(h *header) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + 2*wordSize)
}

// headerFromPayload inverts payloadOf, recovering a block's header from a
// pointer previously returned to a caller.
//
//go:inline
func headerFromPayload(ptr unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(ptr) - 2*wordSize))
}

// nextPhysical returns h's immediate physical successor. The successor's
// struct start overlaps h's own trailing word, which is why every block
// always has a valid next neighbor (including the zero-size sentinel that
// terminates a pool) with no special-casing required at the boundary.
//
//go:inline
func nextPhysical(h *header) *header {
	return (*header)(unsafe.Pointer(uintptr(payloadOf(h)) + blockSize(h) - wordSize))
}

// markFree sets h's free flag and informs its physical successor: the
// successor's prevPhysBlock now points at h and its prevFree flag is set.
// Apart from AddPool clearing the first block's slot (whose prevFree flag
// is never set), this is the only place prevPhysBlock is written, keeping invariant
// 1 (prevPhysBlock agrees with the physical layout whenever prevFree is
// set) trivially maintained.
//
//go:inline
func markFree(h *header) {
	h.size |= flagFree
	next := nextPhysical(h)
	next.prevPhysBlock = h
	next.size |= flagPrevFree
}

// markUsed clears h's free flag and clears its successor's prevFree flag.
//
//go:inline
func markUsed(h *header) {
	h.size &^= flagFree
	next := nextPhysical(h)
	next.size &^= flagPrevFree
}

// alignUp rounds x up to the next multiple of align, which must be a
// power of two.
//
//go:inline
func alignUp(x, align uintptr) uintptr {
	return (x + align - 1) &^ (align - 1)
}

//go:inline
func alignDown(x, align uintptr) uintptr {
	return x &^ (align - 1)
}

// adjustRequestSize normalizes a caller's byte request into a valid block
// payload size: zero for a zero or excessive request, otherwise the
// request rounded up to align and clamped to blockSizeMin.
func adjustRequestSize(n, align uintptr) uintptr {
	if n == 0 || n >= blockSizeMax {
		return 0
	}
	adjusted := alignUp(n, align)
	if adjusted < blockSizeMin {
		adjusted = blockSizeMin
	}
	return adjusted
}
