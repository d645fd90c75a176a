// Package hostcall marshals arguments for routines that live inside the host
// and hands them to an Invoker. It keeps no state between calls and does not
// interpret results beyond converting the return registers.
package hostcall

import (
	"log"

	"github.com/automoto/ss-practice/hostmem"
)

// Register file sizes of the host calling convention (PowerPC EABI):
// integer arguments in r3-r10, floating point arguments in f1-f8.
const (
	MaxGPR = 8
	MaxFPR = 8
)

// Args is the argument register file for one call.
type Args struct {
	GPR  [MaxGPR]uint32
	FPR  [MaxFPR]float64
	nGPR int
	nFPR int
}

// NewArgs returns an empty argument list.
func NewArgs() *Args {
	return &Args{}
}

func (a *Args) gpr(v uint32) *Args {
	if a.nGPR >= MaxGPR {
		log.Printf("Warning: hostcall: dropped integer argument %#x, register file full", v)
		return a
	}
	a.GPR[a.nGPR] = v
	a.nGPR++
	return a
}

// U32 appends an unsigned integer argument.
func (a *Args) U32(v uint32) *Args {
	return a.gpr(v)
}

// S32 appends a signed integer argument.
func (a *Args) S32(v int32) *Args {
	return a.gpr(uint32(v))
}

// U8 appends a byte argument, zero extended into its register.
func (a *Args) U8(v uint8) *Args {
	return a.gpr(uint32(v))
}

// Ptr appends a pointer argument.
func (a *Args) Ptr(p hostmem.Addr) *Args {
	return a.gpr(uint32(p))
}

// Bool appends a C bool: 1 for true, 0 for false.
func (a *Args) Bool(b bool) *Args {
	if b {
		return a.gpr(1)
	}
	return a.gpr(0)
}

// F32 appends a float argument. Floats travel in the FPRs as doubles.
func (a *Args) F32(v float32) *Args {
	if a.nFPR >= MaxFPR {
		log.Printf("Warning: hostcall: dropped float argument %v, register file full", v)
		return a
	}
	a.FPR[a.nFPR] = float64(v)
	a.nFPR++
	return a
}

// Ints returns the integer arguments that were set.
func (a *Args) Ints() []uint32 {
	return a.GPR[:a.nGPR]
}

// Floats returns the float arguments that were set.
func (a *Args) Floats() []float64 {
	return a.FPR[:a.nFPR]
}

// Int returns integer argument i, zero when it was not supplied.
func (a *Args) Int(i int) uint32 {
	if i < 0 || i >= a.nGPR {
		return 0
	}
	return a.GPR[i]
}

// Float returns float argument i, zero when it was not supplied.
func (a *Args) Float(i int) float64 {
	if i < 0 || i >= a.nFPR {
		return 0
	}
	return a.FPR[i]
}

// Result holds the return registers after a call.
type Result struct {
	R3 uint32
	F1 float64
}

// Bool decodes a C bool return. Only the low byte is meaningful.
func (r Result) Bool() bool {
	return r.R3&0xFF != 0
}

// F32 decodes a float return.
func (r Result) F32() float32 {
	return float32(r.F1)
}

// Addr decodes a pointer return.
func (r Result) Addr() hostmem.Addr {
	return hostmem.Addr(r.R3)
}

// BoolResult encodes a C bool return.
func BoolResult(b bool) Result {
	if b {
		return Result{R3: 1}
	}
	return Result{}
}

// F32Result encodes a float return.
func F32Result(v float32) Result {
	return Result{F1: float64(v)}
}

// Invoker crosses into the host and runs the routine at fn.
type Invoker interface {
	Invoke(fn hostmem.Addr, args *Args) Result
}
