// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/wristvault/internal/assembler"
	"github.com/tamzrod/wristvault/internal/program"
	"github.com/tamzrod/wristvault/internal/protocol"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}
	v := cfg.Vault

	// ------------------------------------------------------------
	// PROGRAM
	// ------------------------------------------------------------

	if _, err := program.ParseVariant(v.Program.Variant); err != nil {
		return fmt.Errorf("program.variant: %w", err)
	}
	if v.Program.Include == "" {
		return errors.New("program.include is required")
	}
	if strings.ContainsAny(v.Program.Include, "\"\n") {
		return fmt.Errorf("program.include %q must not contain quotes or newlines", v.Program.Include)
	}
	if !program.ValidName(v.Program.Name) {
		return fmt.Errorf("program.name %q must contain only letters, digits, '_' and '-'", v.Program.Name)
	}

	// ------------------------------------------------------------
	// DEVICE MEMORY (zero page, distinct)
	// ------------------------------------------------------------

	if v.Memory.FlagByte == nil || v.Memory.CurrentCode == nil {
		return errors.New("memory: flagbyte and current_code are required")
	}
	fb, cc := *v.Memory.FlagByte, *v.Memory.CurrentCode
	if fb > 0xFF {
		return fmt.Errorf("memory.flagbyte $%X outside zero page", fb)
	}
	if cc > 0xFF {
		return fmt.Errorf("memory.current_code $%X outside zero page", cc)
	}
	if fb == cc {
		return fmt.Errorf("memory overlap: flagbyte and current_code both at $%02X", fb)
	}

	// ------------------------------------------------------------
	// ASSEMBLER
	// ------------------------------------------------------------

	if v.Assembler.Command == "" {
		return errors.New("assembler.command is required")
	}
	joined := strings.Join(v.Assembler.Args, " ")
	for _, tok := range []string{assembler.TokenInput, assembler.TokenHex} {
		if !strings.Contains(joined, tok) {
			return fmt.Errorf("assembler.args must reference %s", tok)
		}
	}
	if v.Assembler.TimeoutMs < 0 {
		return fmt.Errorf("assembler.timeout_ms %d must be >= 0", v.Assembler.TimeoutMs)
	}

	// ------------------------------------------------------------
	// PROTOCOL + TRANSPORT
	// ------------------------------------------------------------

	if v.Protocol.SyncLength < 1 || v.Protocol.SyncLength > protocol.MaxSyncLength {
		return fmt.Errorf("protocol.sync_length %d out of range 1..%d", v.Protocol.SyncLength, protocol.MaxSyncLength)
	}
	if v.Transport.BaudRate <= 0 {
		return fmt.Errorf("transport.baud_rate %d must be > 0", v.Transport.BaudRate)
	}
	if v.Transport.ByteSleepMs != nil && *v.Transport.ByteSleepMs < 0 {
		return fmt.Errorf("transport.byte_sleep_ms %d must be >= 0", *v.Transport.ByteSleepMs)
	}
	if v.Transport.PacketSleepMs != nil && *v.Transport.PacketSleepMs < 0 {
		return fmt.Errorf("transport.packet_sleep_ms %d must be >= 0", *v.Transport.PacketSleepMs)
	}
	if v.Transport.TimeoutMs < 0 {
		return fmt.Errorf("transport.timeout_ms %d must be >= 0", v.Transport.TimeoutMs)
	}

	return nil
}
