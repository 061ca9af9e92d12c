// internal/device/encode.go
package device

import "fmt"

// Symbol names of the layout cells as they appear in program text.
const (
	SymFlagByte    = "FLAGBYTE"
	SymCurrentCode = "CURRENT_CODE"
)

// Equates renders the layout as assembler EQU lines.
// No IO. No side effects.
func (l Layout) Equates() string {
	return fmt.Sprintf(
		"%-16sEQU     $%02X    ; General flags\n%-16sEQU     $%02X    ; Current entry index (0-based)",
		SymFlagByte, l.FlagByte,
		SymCurrentCode, l.CurrentCode,
	)
}
