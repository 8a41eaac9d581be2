package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/banks"
)

func TestConsoleRendersInlineBank(t *testing.T) {
	color.NoColor = true // keep output comparable
	bank := banks.ArrOf(4, 1, 2)
	console := NewConsole[int](nil)
	console.width = 40
	var buf bytes.Buffer
	if err := console.Fprint(&buf, bank); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "bank [inline] len=2 cap=4") {
		t.Errorf("expected summary line, got:\n%s", out)
	}
	if !strings.Contains(out, "[1][2][ ][ ]") {
		t.Errorf("expected cell row, got:\n%s", out)
	}
}

func TestConsoleRendersSpilledBank(t *testing.T) {
	color.NoColor = true
	bank := banks.VecOf(2, 1, 2, 3)
	console := NewConsole[int](nil)
	var buf bytes.Buffer
	if err := console.Fprint(&buf, bank); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[spilled]") {
		t.Errorf("expected spilled state in summary, got:\n%s", buf.String())
	}
}

func TestConsoleWrapsAtWidth(t *testing.T) {
	color.NoColor = true
	bank := banks.ArrOf(6, 1, 2, 3, 4, 5, 6)
	console := NewConsole[int](nil)
	console.width = 9 // room for three cells per line
	var buf bytes.Buffer
	if err := console.Fprint(&buf, bank); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 { // summary plus two cell rows
		t.Errorf("expected wrapped output on 3 lines, got %d:\n%s", len(lines), buf.String())
	}
}
