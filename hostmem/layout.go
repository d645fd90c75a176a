package hostmem

import (
	"fmt"
	"sort"
)

// Field is one modeled range of a host record.
type Field struct {
	Name   string
	Offset uint32
	Size   uint32
}

// Gap is an unmodeled byte range inside a record. Gaps are never accessed.
type Gap struct {
	Offset uint32
	Size   uint32
}

// Layout describes a host record: its total size and the fields this overlay
// knows about. Offsets come from reverse engineering and cannot be checked at
// runtime; a host update that moves a field silently breaks the overlay.
type Layout struct {
	Name   string
	Size   uint32
	fields []Field
	byName map[string]Field
}

// NewLayout validates and builds a layout. Overlapping fields, fields outside
// size and duplicate names are programming errors and panic.
func NewLayout(name string, size uint32, fields ...Field) *Layout {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	l := &Layout{
		Name:   name,
		Size:   size,
		fields: sorted,
		byName: make(map[string]Field, len(sorted)),
	}

	var end uint32
	for _, f := range sorted {
		if f.Size == 0 {
			panic(fmt.Sprintf("hostmem: %s.%s has zero size", name, f.Name))
		}
		if f.Offset < end {
			panic(fmt.Sprintf("hostmem: %s.%s at %#x overlaps previous field", name, f.Name, f.Offset))
		}
		if uint64(f.Offset)+uint64(f.Size) > uint64(size) {
			panic(fmt.Sprintf("hostmem: %s.%s runs past record size %#x", name, f.Name, size))
		}
		if _, dup := l.byName[f.Name]; dup {
			panic(fmt.Sprintf("hostmem: %s.%s defined twice", name, f.Name))
		}
		l.byName[f.Name] = f
		end = f.Offset + f.Size
	}

	return l
}

// Field returns the named field. Asking for a field the layout does not model
// is a programming error and panics.
func (l *Layout) Field(name string) Field {
	f, ok := l.byName[name]
	if !ok {
		panic(fmt.Sprintf("hostmem: %s has no field %q", l.Name, name))
	}
	return f
}

// Fields in offset order.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// Padding lists the byte ranges of the record that no field covers.
func (l *Layout) Padding() []Gap {
	var gaps []Gap
	var at uint32
	for _, f := range l.fields {
		if f.Offset > at {
			gaps = append(gaps, Gap{Offset: at, Size: f.Offset - at})
		}
		at = f.Offset + f.Size
	}
	if at < l.Size {
		gaps = append(gaps, Gap{Offset: at, Size: l.Size - at})
	}
	return gaps
}
