// internal/program/tables.go
package program

import (
	"fmt"
	"strings"

	"github.com/tamzrod/wristvault/internal/device"
	"github.com/tamzrod/wristvault/internal/entry"
	"github.com/tamzrod/wristvault/internal/field"
)

// Column identifies one lookup column of the data section.
type Column int

const (
	ColumnNone Column = iota
	ColumnService
	ColumnCode
	ColumnShortService
	ColumnShortCode
)

// Table is the label an indexed load uses for the column.
func (c Column) Table() string {
	switch c {
	case ColumnService:
		return "SERVICE_TABLE"
	case ColumnCode:
		return "CODE_TABLE"
	case ColumnShortService:
		return "SHORT_SERVICE_TABLE"
	case ColumnShortCode:
		return "SHORT_CODE_TABLE"
	default:
		return ""
	}
}

// Slot is one fixed-width string stored in the data section.
type Slot struct {
	Symbol string
	Field  field.Field
}

// Row is one lookup-table row: the byte distance of a slot from the origin.
// The distance stays symbolic and is resolved by the assembler.
type Row struct {
	Symbol  string
	Comment string // label as supplied, for traceability
}

// Offset is the row's assembler expression.
func (r Row) Offset() string {
	return r.Symbol + "-" + device.Origin
}

// Tables is the laid-out data section for an ordered entry list.
// Index i of every slice belongs to entry i.
type Tables struct {
	Services []Slot
	Codes    []Slot

	// Narrow variants; nil unless requested.
	ShortServices []Slot
	ShortCodes    []Slot

	ServiceRows      []Row
	CodeRows         []Row
	ShortServiceRows []Row
	ShortCodeRows    []Row
}

// BuildTables lays out entries in order. Zero entries yield empty tables.
func BuildTables(entries []entry.Entry, short bool) Tables {
	var t Tables

	for i, e := range entries {
		svc := Slot{Symbol: fmt.Sprintf("S8_SVC%d", i), Field: field.Format(e.Service, field.Wide)}
		cod := Slot{Symbol: fmt.Sprintf("S8_COD%d", i), Field: field.Format(e.Code, field.Wide)}

		t.Services = append(t.Services, svc)
		t.Codes = append(t.Codes, cod)
		t.ServiceRows = append(t.ServiceRows, Row{Symbol: svc.Symbol, Comment: e.Service})
		t.CodeRows = append(t.CodeRows, Row{Symbol: cod.Symbol, Comment: e.Code})

		if !short {
			continue
		}

		ssvc := Slot{Symbol: fmt.Sprintf("S6_SVC%d", i), Field: field.Format(e.Service, field.Narrow)}
		scod := Slot{Symbol: fmt.Sprintf("S6_COD%d", i), Field: field.Format(e.Code, field.Narrow)}

		t.ShortServices = append(t.ShortServices, ssvc)
		t.ShortCodes = append(t.ShortCodes, scod)
		t.ShortServiceRows = append(t.ShortServiceRows, Row{Symbol: ssvc.Symbol, Comment: e.Service})
		t.ShortCodeRows = append(t.ShortCodeRows, Row{Symbol: scod.Symbol, Comment: e.Code})
	}

	return t
}

// Count is the number of entries laid out.
func (t Tables) Count() int { return len(t.Services) }

// HasShort reports whether the narrow tables were laid out.
func (t Tables) HasShort() bool { return len(t.ShortServices) > 0 }

// Value is the display text of column c for entry i.
func (t Tables) Value(c Column, i int) string {
	var slots []Slot
	switch c {
	case ColumnService:
		slots = t.Services
	case ColumnCode:
		slots = t.Codes
	case ColumnShortService:
		slots = t.ShortServices
	case ColumnShortCode:
		slots = t.ShortCodes
	}
	if i < 0 || i >= len(slots) {
		return ""
	}
	return slots[i].Field.Text
}

// ---- program text ----

// ServiceData renders the 8-character service strings.
func (t Tables) ServiceData() string {
	return slotLines(t.Services)
}

// CodeData renders the 8-character code strings.
func (t Tables) CodeData() string {
	return slotLines(t.Codes)
}

// ShortData renders the 6-character service/code pairs, interleaved.
func (t Tables) ShortData() string {
	var b strings.Builder
	for i := range t.ShortServices {
		b.WriteString(dataLine(t.ShortServices[i]))
		b.WriteString(dataLine(t.ShortCodes[i]))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// LookupData renders the combined lookup tables.
// Rows are interleaved service, code; so entry i lives at row
// EntryStride*i and the code column is the service label plus one.
func (t Tables) LookupData() string {
	var b strings.Builder
	writeLookup(&b, ColumnService, ColumnCode, t.ServiceRows, t.CodeRows)
	if t.HasShort() {
		b.WriteString("\n")
		writeLookup(&b, ColumnShortService, ColumnShortCode, t.ShortServiceRows, t.ShortCodeRows)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeLookup(b *strings.Builder, first, second Column, a, z []Row) {
	fmt.Fprintf(b, "%s:\n", first.Table())
	for i := range a {
		fmt.Fprintf(b, "        db      %s  ; %s\n", a[i].Offset(), comment(a[i].Comment))
		fmt.Fprintf(b, "        db      %s  ; %s\n", z[i].Offset(), comment(z[i].Comment))
	}
	fmt.Fprintf(b, "%-16s EQU     %s+1\n", second.Table(), first.Table())
}

func slotLines(slots []Slot) string {
	var b strings.Builder
	for _, s := range slots {
		b.WriteString(dataLine(s))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// dataLine renders one string slot with the directive matching its width.
func dataLine(s Slot) string {
	directive := "timex "
	if s.Field.Width == field.Narrow {
		directive = "timex6"
	}
	return fmt.Sprintf("%-11s %s  \"%s\"\n", s.Symbol+":", directive, s.Field.Text)
}

// comment keeps a label on one line.
func comment(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return ' '
		}
		return r
	}, s)
}
