// internal/device/constants.go
package device

// Device memory and table geometry.
// These values are fixed by the device runtime and MUST NOT be configurable.

// ---- TABLE GEOMETRY ----

// EntryStride is the number of one-byte lookup rows per entry in the
// combined lookup tables (service row, then code row).
// Handlers scale the entry index by this factor before an indexed load.
const EntryStride = 2

// MaxEntries bounds the entry count: the scaled index must fit the 8-bit
// index register and N-1 must stay non-negative for the signed underflow
// branch used on PREV. It is an upper bound only: each lookup row is a
// one-byte offset from START, so the practical limit is reached when the
// last string slot lies more than 255 bytes past START. The assembler
// reports that as a range error.
const MaxEntries = 256 / EntryStride

// ---- DEFAULT ZERO-PAGE ADDRESSES ----

// DefaultFlagByte holds general application flags.
const DefaultFlagByte uint8 = 0x61

// DefaultCurrentCode holds the 0-based index of the displayed entry.
const DefaultCurrentCode uint8 = 0x62

// ---- STATE TABLE PARAMETERS ----

// ExitParam in a state table row leaves the application.
const ExitParam uint8 = 0xFF

// ---- ORIGIN ----

// Origin is the symbol every table offset is relative to.
const Origin = "START"
