package snaek

import (
	"encoding/binary"
	"hash/maphash"
	"runtime"
)

// WidgetKey identifies the same logical widget across frames.
type WidgetKey uint64

// keySeed is fixed for the life of the process so keys are deterministic
// within a run.
var keySeed = maphash.MakeSeed()

// Key derives a widget key from the caller's call site and optional
// disambiguators such as loop indices. Two calls on the same source line with
// the same sub-keys produce the same key.
func Key(n ...uint64) WidgetKey {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	return hashKey(uint64(pcs[0]), n)
}

// KeyOf derives a key from a parent key and sub-keys alone. Components use it
// to name the widgets they create on behalf of a caller-supplied key.
func KeyOf(parent WidgetKey, n ...uint64) WidgetKey {
	return hashKey(uint64(parent), n)
}

func hashKey(base uint64, n []uint64) WidgetKey {
	var h maphash.Hash
	h.SetSeed(keySeed)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], base)
	h.Write(buf[:])
	for _, v := range n {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	k := WidgetKey(h.Sum64())
	if k == 0 {
		// 0 is reserved for anonymous widgets.
		k = 1
	}
	return k
}
