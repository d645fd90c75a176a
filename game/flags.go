package game

import "github.com/automoto/ss-practice/hostmem"

// Flag bank sizes, in 16-bit words.
const (
	SceneFlagWords = 8
	TempFlagWords  = 4
	ZoneFlagWords  = 4
)

// SceneflagLayout is the host's scene flag manager.
var SceneflagLayout = hostmem.NewLayout("SceneflagManager", 0x30,
	hostmem.Field{Name: "scene", Offset: 0x04, Size: 2 * SceneFlagWords},
	hostmem.Field{Name: "temp", Offset: 0x14, Size: 2 * TempFlagWords},
	hostmem.Field{Name: "zone", Offset: 0x1C, Size: 2 * ZoneFlagWords},
)

// FlagWord is one 16-bit word of a flag bank. The host addresses each half
// as its own byte.
type FlagWord uint16

func (w FlagWord) Hi() uint8 {
	return uint8(w >> 8)
}

func (w FlagWord) Lo() uint8 {
	return uint8(w)
}

// Bank names a flag bank.
type Bank string

const (
	BankScene Bank = "scene"
	BankTemp  Bank = "temp"
	BankZone  Bank = "zone"
)

// Flags is a view of the scene flag manager.
type Flags struct {
	h hostmem.Handle
}

func (f Flags) Present() bool {
	return f.h.Present()
}

// Words reads a whole bank fresh from the host. Absent manager gives nil.
func (f Flags) Words(b Bank) []uint16 {
	w, ok := f.h.U16s(string(b))
	if !ok {
		return nil
	}
	return w
}

// Flag reports flag n of a bank. Flags are numbered by byte then bit, with
// byte 0 being the high half of word 0.
func (f Flags) Flag(b Bank, n int) bool {
	w, ok := f.h.U16At(string(b), n/16)
	if !ok {
		return false
	}
	return w&flagMask(n) != 0
}

// SetFlag sets or clears flag n of a bank.
func (f Flags) SetFlag(b Bank, n int, on bool) {
	w, ok := f.h.U16At(string(b), n/16)
	if !ok {
		return
	}
	if on {
		w |= flagMask(n)
	} else {
		w &^= flagMask(n)
	}
	f.h.SetU16At(string(b), n/16, w)
}

// Clear zeroes a bank.
func (f Flags) Clear(b Bank) {
	for i := range f.Words(b) {
		f.h.SetU16At(string(b), i, 0)
	}
}

// SetWords overwrites the start of a bank. Extra words are ignored.
func (f Flags) SetWords(b Bank, words []uint16) {
	n := len(f.Words(b))
	for i := 0; i < n && i < len(words); i++ {
		f.h.SetU16At(string(b), i, words[i])
	}
}

func flagMask(n int) uint16 {
	byteInWord := (n / 8) % 2
	bit := uint(n % 8)
	if byteInWord == 0 {
		return 1 << (8 + bit)
	}
	return 1 << bit
}
