// internal/program/skeleton.go
package program

import _ "embed"

// skeleton is the program text every variant is rendered into.
//
//go:embed skeleton.asm
var skeleton string
