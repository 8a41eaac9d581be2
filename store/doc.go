/*
Package store implements the storage engine shared by the bank containers:
runs of storage cells, the fixed inline buffer, the growable heap buffer,
and the inline/spilled state discriminator.

A cell holds at most one element. Whether a cell is valid is tracked
externally, by the owning container's length; the cell itself carries no
sentinel. Cells outside the owner's valid range are kept zeroed, so that a
vacated slot never retains an element the caller believes released. All
element movement inside this package follows a transfer discipline: a source
cell is cleared immediately after its element moved, before the next cell is
considered, so no element is ever owned by two cells at once.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package store

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
