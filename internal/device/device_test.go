package device

import (
	"strings"
	"testing"
)

func TestEquates_DefaultLayout(t *testing.T) {
	got := DefaultLayout().Equates()

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "FLAGBYTE") || !strings.Contains(lines[0], "EQU     $61") {
		t.Fatalf("unexpected flag line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "CURRENT_CODE") || !strings.Contains(lines[1], "EQU     $62") {
		t.Fatalf("unexpected current code line: %q", lines[1])
	}
}

func TestEquates_CustomLayout(t *testing.T) {
	got := Layout{FlagByte: 0x70, CurrentCode: 0x7A}.Equates()
	if !strings.Contains(got, "$70") || !strings.Contains(got, "$7A") {
		t.Fatalf("custom addresses not rendered: %q", got)
	}
}

func TestEventSymbols(t *testing.T) {
	for e := EventEnter; e <= EventUser0; e++ {
		if s := e.Symbol(); !strings.HasPrefix(s, "EVT_") || s == "EVT_UNKNOWN" {
			t.Fatalf("event %d has no symbol", e)
		}
	}
	if Event(0).Symbol() != "EVT_UNKNOWN" {
		t.Fatalf("zero event should be unknown")
	}
}

func TestMaxEntriesFitsIndexRegister(t *testing.T) {
	if MaxEntries*EntryStride > 256 {
		t.Fatalf("scaled index overflows 8 bits")
	}
	if MaxEntries-1 > 127 {
		t.Fatalf("N-1 does not fit a signed byte")
	}
}
