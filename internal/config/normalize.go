// internal/config/normalize.go
package config

import (
	"github.com/tamzrod/wristvault/internal/assembler"
	"github.com/tamzrod/wristvault/internal/device"
	"github.com/tamzrod/wristvault/internal/program"
	"github.com/tamzrod/wristvault/internal/protocol"
	"github.com/tamzrod/wristvault/internal/transport"
)

// Defaults that are configurable (unlike device constants).
const (
	DefaultInclude          = "Inc150/WRISTAPP.I"
	DefaultIncludeRoot      = "include"
	DefaultAssemblerCommand = "asm6805"
	DefaultAssemblerTimeout = 30000
)

// DefaultAssemblerArgs passes source, hex and listing paths to the assembler.
func DefaultAssemblerArgs() []string {
	return []string{assembler.TokenInput, "-o", assembler.TokenHex, "-l", assembler.TokenListing}
}

// Normalize fills defaults for every unset field.
// It is allowed to mutate configuration.
// It MUST be called before Validate so Validate sees final values.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	v := &cfg.Vault

	// ------------------------------------------------------------
	// PROGRAM
	// ------------------------------------------------------------

	if v.Program.Name == "" {
		v.Program.Name = program.DefaultName
	}
	if v.Program.Variant == "" {
		v.Program.Variant = string(program.VariantNavigator)
	}
	if v.Program.Include == "" {
		v.Program.Include = DefaultInclude
	}
	if v.Program.IncludeRoot == "" {
		v.Program.IncludeRoot = DefaultIncludeRoot
	}

	// ------------------------------------------------------------
	// DEVICE MEMORY
	// ------------------------------------------------------------

	if v.Memory.FlagByte == nil {
		fb := uint16(device.DefaultFlagByte)
		v.Memory.FlagByte = &fb
	}
	if v.Memory.CurrentCode == nil {
		cc := uint16(device.DefaultCurrentCode)
		v.Memory.CurrentCode = &cc
	}

	// ------------------------------------------------------------
	// ASSEMBLER
	// ------------------------------------------------------------

	if v.Assembler.Command == "" {
		v.Assembler.Command = DefaultAssemblerCommand
		if len(v.Assembler.Args) == 0 {
			v.Assembler.Args = DefaultAssemblerArgs()
		}
	}
	if v.Assembler.TimeoutMs == 0 {
		v.Assembler.TimeoutMs = DefaultAssemblerTimeout
	}

	// ------------------------------------------------------------
	// PROTOCOL + TRANSPORT
	// ------------------------------------------------------------

	if v.Protocol.SyncLength == 0 {
		v.Protocol.SyncLength = protocol.DefaultSyncLength
	}
	if v.Transport.BaudRate == 0 {
		v.Transport.BaudRate = transport.DefaultBaudRate
	}
	if v.Transport.ByteSleepMs == nil {
		ms := int(transport.DefaultByteSleep.Milliseconds())
		v.Transport.ByteSleepMs = &ms
	}
	if v.Transport.PacketSleepMs == nil {
		ms := int(transport.DefaultPacketSleep.Milliseconds())
		v.Transport.PacketSleepMs = &ms
	}
	if v.Transport.TimeoutMs == 0 {
		v.Transport.TimeoutMs = int(transport.DefaultTimeout.Milliseconds())
	}
}
