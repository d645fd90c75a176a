package sandbox

import (
	"errors"
	"fmt"

	"github.com/automoto/ss-practice/hostmem"
)

var ErrOutOfMemory = errors.New("sandbox heap exhausted")

// heapAlign keeps records on cache line boundaries like the host allocator.
const heapAlign = 0x20

// heap is a bump allocator over the top of the arena. Nothing is freed.
type heap struct {
	next hostmem.Addr
	end  hostmem.Addr
}

func (h *heap) alloc(name string, size uint32) (hostmem.Addr, error) {
	at := (h.next + heapAlign - 1) &^ (heapAlign - 1)
	if uint64(at)+uint64(size) > uint64(h.end) {
		return 0, fmt.Errorf("alloc %s (%#x bytes): %w", name, size, ErrOutOfMemory)
	}
	h.next = at + hostmem.Addr(size)
	return at, nil
}
