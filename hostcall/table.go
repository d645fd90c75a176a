package hostcall

import (
	"log"

	"github.com/automoto/ss-practice/hostmem"
)

// Routine is a host-side implementation of a function living at a fixed
// address.
type Routine func(args *Args) Result

// Table is an Invoker backed by Go routines registered at host addresses.
type Table struct {
	routines map[hostmem.Addr]Routine
	names    map[hostmem.Addr]string
	missing  map[hostmem.Addr]bool
}

// NewTable returns an empty routine table.
func NewTable() *Table {
	return &Table{
		routines: map[hostmem.Addr]Routine{},
		names:    map[hostmem.Addr]string{},
		missing:  map[hostmem.Addr]bool{},
	}
}

// Register places routine at fn. Registering twice at one address replaces
// the earlier routine.
func (t *Table) Register(fn hostmem.Addr, name string, r Routine) {
	if fn == 0 {
		log.Printf("Warning: hostcall: %s has no address, not registered", name)
		return
	}
	t.routines[fn] = r
	t.names[fn] = name
}

// Name of the routine at fn, empty when nothing is registered there.
func (t *Table) Name(fn hostmem.Addr) string {
	return t.names[fn]
}

// Invoke implements Invoker. Calling an address with nothing behind it
// returns a zero Result.
func (t *Table) Invoke(fn hostmem.Addr, args *Args) Result {
	r, ok := t.routines[fn]
	if !ok {
		if !t.missing[fn] {
			t.missing[fn] = true
			log.Printf("Warning: hostcall: no routine at %#08x", uint32(fn))
		}
		return Result{}
	}
	if args == nil {
		args = NewArgs()
	}
	return r(args)
}
