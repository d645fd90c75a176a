package hostcall

import (
	"testing"

	"github.com/automoto/ss-practice/hostmem"
)

func TestArgsRegisterAssignment(t *testing.T) {
	a := NewArgs().Ptr(0x80001234).F32(1.5).Bool(true).U8(7).F32(-3).S32(-1)

	ints := a.Ints()
	want := []uint32{0x80001234, 1, 7, 0xFFFFFFFF}
	if len(ints) != len(want) {
		t.Fatalf("Ints = %#v, want %#v", ints, want)
	}
	for i := range want {
		if ints[i] != want[i] {
			t.Errorf("r%d = %#x, want %#x", i+3, ints[i], want[i])
		}
	}

	floats := a.Floats()
	if len(floats) != 2 || floats[0] != 1.5 || floats[1] != -3 {
		t.Errorf("Floats = %v, want [1.5 -3]", floats)
	}
}

func TestArgsDropsOverflow(t *testing.T) {
	a := NewArgs()
	for i := 0; i < MaxGPR+2; i++ {
		a.U32(uint32(i))
	}
	if len(a.Ints()) != MaxGPR {
		t.Errorf("len(Ints) = %d, want %d", len(a.Ints()), MaxGPR)
	}
	if a.Int(MaxGPR) != 0 || a.Int(-1) != 0 {
		t.Error("out of range Int was not zero")
	}
}

func TestResultDecoding(t *testing.T) {
	if !(Result{R3: 0x101}).Bool() {
		t.Error("low byte 1 decoded as false")
	}
	if (Result{R3: 0x100}).Bool() {
		t.Error("only the low byte decides a C bool")
	}
	if BoolResult(true).R3 != 1 || BoolResult(false).R3 != 0 {
		t.Error("BoolResult encoding")
	}
	if F32Result(0.25).F32() != 0.25 {
		t.Error("F32 round trip")
	}
}

func TestTableInvoke(t *testing.T) {
	tbl := NewTable()
	var got *Args
	tbl.Register(0x80020000, "echo", func(a *Args) Result {
		got = a
		return Result{R3: a.Int(0) + 1}
	})

	res := tbl.Invoke(0x80020000, NewArgs().U32(41))
	if res.R3 != 42 {
		t.Errorf("R3 = %d, want 42", res.R3)
	}
	if got == nil || got.Int(0) != 41 {
		t.Error("routine did not see its argument")
	}
	if tbl.Name(0x80020000) != "echo" {
		t.Errorf("Name = %q", tbl.Name(0x80020000))
	}

	if res := tbl.Invoke(0x80030000, nil); res != (Result{}) {
		t.Errorf("unknown routine returned %+v", res)
	}

	tbl.Register(0, "nowhere", func(*Args) Result { return Result{R3: 1} })
	if res := tbl.Invoke(hostmem.Addr(0), nil); res.R3 != 0 {
		t.Error("routine registered at address zero")
	}
}
