package viz

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/banks"
	"golang.org/x/term"
)

// Class identifies the visual role of a rendered fragment.
type Class int

const (
	// HeaderClass styles the bank summary line.
	HeaderClass Class = iota
	// ValidClass styles cells inside the valid range.
	ValidClass
	// EmptyClass styles allocated but invalid cells.
	EmptyClass
)

// defaultLineWidth is used when stdout is not an interactive terminal.
const defaultLineWidth = 80

// Console renders the storage layout of banks with element type T to a
// console, colorizing valid and empty cells. It is a debugging aid, not a
// stable serialization format.
type Console[T any] struct {
	colors map[Class]*color.Color
	width  int
}

// NewConsole creates a console renderer. colors maps fragment classes to
// display colors and may cover just a subset of the classes; pass nil for
// the default palette. The line width is taken from the current terminal,
// if stdout is interactive.
func NewConsole[T any](colors map[Class]*color.Color) *Console[T] {
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &Console[T]{
		colors: colors,
		width:  TerminalWidth(),
	}
}

// TerminalWidth probes stdout for its line width, falling back to a default
// for non-interactive output.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultLineWidth
}

func makeDefaultPalette() map[Class]*color.Color {
	return map[Class]*color.Color{
		HeaderClass: color.New(color.FgCyan),
		ValidClass:  color.New(color.FgGreen),
		EmptyClass:  color.New(color.Faint),
	}
}

// Print renders bank to stdout.
func (c *Console[T]) Print(bank banks.Bank[T]) error {
	return c.Fprint(os.Stdout, bank)
}

// Fprint renders bank to w: a summary line followed by one bracketed
// fragment per storage cell, wrapped to the console width.
func (c *Console[T]) Fprint(w io.Writer, bank banks.Bank[T]) error {
	state := "inline"
	if sp, ok := bank.(interface{ OnHeap() bool }); ok && sp.OnHeap() {
		state = "spilled"
	}
	header := fmt.Sprintf("bank [%s] len=%d cap=%d", state, bank.Len(), bank.Cap())
	if err := c.fragment(w, HeaderClass, header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	items := bank.Slice()
	column := 0
	for i := 0; i < bank.Cap(); i++ {
		var frag string
		class := EmptyClass
		if i < len(items) {
			frag = fmt.Sprintf("[%v]", items[i])
			class = ValidClass
		} else {
			frag = "[ ]"
		}
		if column+len(frag) > c.width && column > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			column = 0
		}
		if err := c.fragment(w, class, frag); err != nil {
			return err
		}
		column += len(frag)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// fragment outputs a single uniformly styled fragment, falling back to
// plain output for classes without a palette entry.
func (c *Console[T]) fragment(w io.Writer, class Class, s string) error {
	if col, ok := c.colors[class]; ok {
		_, err := col.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
