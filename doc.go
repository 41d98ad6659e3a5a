// Package tlsf implements a Two-Level Segregated Fit memory allocator over
// caller-supplied, contiguous memory regions ("pools").
//
// The engine gives O(1) worst-case behavior for Malloc, Memalign, Realloc
// and Free by organizing free blocks into a two-dimensional table of
// segregated free lists, indexed by a (first-level, second-level)
// coordinate derived from a block's size, and located via two bitmaps that
// summarize which rows and columns of the table are non-empty.
//
// IMPORTANT: Control is NOT goroutine-safe. Concurrent calls into the same
// Control, or a concurrent call racing a call from an interrupt handler,
// produce undefined behavior. Callers needing synchronization should use
// Guarded, or bracket every call with their own mutex / interrupt
// disable-restore discipline.
package tlsf
