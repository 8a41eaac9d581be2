package banks

import (
	"fmt"
	"io"
)

// spilledBank is probed by Dump for banks that track a storage state.
type spilledBank interface {
	OnHeap() bool
}

// Dump outputs the storage layout of a bank in a line-oriented text format
// (for debugging purposes). Every cell of the authoritative buffer gets one
// line; cells outside the valid range are marked empty.
func Dump[T any](bank Bank[T], w io.Writer) {
	kind := "inline"
	if sp, ok := bank.(spilledBank); ok && sp.OnHeap() {
		kind = "spilled"
	}
	fmt.Fprintf(w, "bank [%s] len=%d cap=%d\n", kind, bank.Len(), bank.Cap())
	items := bank.Slice()
	for i := 0; i < bank.Cap(); i++ {
		if i < len(items) {
			fmt.Fprintf(w, "\tcell %-3d = %v\n", i, items[i])
		} else {
			fmt.Fprintf(w, "\tcell %-3d   (empty)\n", i)
		}
	}
}
