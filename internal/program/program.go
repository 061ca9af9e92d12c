// internal/program/program.go
package program

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tamzrod/wristvault/internal/device"
	"github.com/tamzrod/wristvault/internal/entry"
)

// DefaultName is used when Options.Name is empty.
const DefaultName = "WristVault"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name is usable as the program name. The name
// also becomes the assembler source file stem.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Options parameterize one generation.
type Options struct {
	Name    string
	Variant Variant
	Include string // include reference as written in program text
	Layout  device.Layout
}

// Program is the fully substituted program text plus the structures it
// was rendered from. A value: never mutated after Generate.
type Program struct {
	Name    string
	Text    string
	Tables  Tables
	Machine Machine
}

// Lines splits the text the way the assembler consumes it.
func (p Program) Lines() []string {
	return strings.Split(p.Text, "\n")
}

// SourceName is the file name handed to the assembler.
func (p Program) SourceName() string {
	return strings.ToLower(p.Name) + ".asm"
}

// Generate lays out the tables, synthesizes the machine and renders both
// into the skeleton. The entry count is validated before synthesis.
func Generate(entries []entry.Entry, opts Options) (Program, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Variant == "" {
		opts.Variant = VariantNavigator
	}
	if !ValidName(opts.Name) {
		return Program{}, fmt.Errorf("program: name %q must match [A-Za-z0-9_-]+", opts.Name)
	}
	if opts.Include == "" {
		return Program{}, errors.New("program: include reference required")
	}
	if opts.Layout.FlagByte == opts.Layout.CurrentCode {
		return Program{}, fmt.Errorf("program: flag byte and current code share address $%02X", opts.Layout.FlagByte)
	}

	m, err := Synthesize(opts.Variant, len(entries))
	if err != nil {
		return Program{}, err
	}

	t := BuildTables(entries, opts.Variant.ShortTables())

	// Wraparound constants and table rows come from the same count.
	if t.Count() != m.Count {
		return Program{}, fmt.Errorf("program: table rows %d != machine count %d", t.Count(), m.Count)
	}

	text, err := Render(skeleton, Fragments{
		"PROGRAM_NAME":       opts.Name,
		"VARIANT":            string(opts.Variant),
		"INCLUDE":            opts.Include,
		"MEMORY_EQUATES":     opts.Layout.Equates(),
		"JUMP_TABLE":         m.JumpTable(),
		"STATE_TABLES":       m.StateTables(),
		"STATE_HANDLERS":     m.Handlers(),
		"NUM_CODES":          strconv.Itoa(t.Count()),
		"NUM_CODES_MINUS_1":  strconv.Itoa(t.Count() - 1),
		"CONSTANT_DATA":      m.Constants(),
		"RECOVERY_DATA":      t.ShortData(),
		"SERVICE_TABLE_DATA": t.ServiceData(),
		"CODE_TABLE_DATA":    t.CodeData(),
		"LOOKUP_DATA":        t.LookupData(),
	})
	if err != nil {
		return Program{}, err
	}

	return Program{
		Name:    opts.Name,
		Text:    text,
		Tables:  t,
		Machine: m,
	}, nil
}
