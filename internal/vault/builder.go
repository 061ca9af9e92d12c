// internal/vault/builder.go
package vault

import (
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/wristvault/internal/assembler"
	"github.com/tamzrod/wristvault/internal/config"
	"github.com/tamzrod/wristvault/internal/device"
	"github.com/tamzrod/wristvault/internal/entry"
	"github.com/tamzrod/wristvault/internal/program"
	"github.com/tamzrod/wristvault/internal/protocol"
	"github.com/tamzrod/wristvault/internal/transmit"
	"github.com/tamzrod/wristvault/internal/transport"
)

// Build constructs a Pipeline from a normalized, validated config and
// wires the exec assembler, Protocol 4 packager and serial transport.
func Build(cfg *config.Config, log *zap.Logger) (*Pipeline, error) {
	v := cfg.Vault

	opts, err := BuildOptions(v)
	if err != nil {
		return nil, err
	}

	asm := &assembler.Exec{
		Command: v.Assembler.Command,
		Args:    v.Assembler.Args,
		Timeout: ms(v.Assembler.TimeoutMs),
	}

	serial := transport.New(transport.Config{
		BaudRate:    v.Transport.BaudRate,
		ByteSleep:   msp(v.Transport.ByteSleepMs, transport.DefaultByteSleep),
		PacketSleep: msp(v.Transport.PacketSleepMs, transport.DefaultPacketSleep),
		Timeout:     ms(v.Transport.TimeoutMs),
		Verbose:     v.Transport.Verbose,
	}, log)

	tx, err := transmit.New(
		transmit.Config{SyncLength: v.Protocol.SyncLength},
		protocol.Protocol4{},
		serial,
		log,
	)
	if err != nil {
		return nil, err
	}

	return New(opts, asm, tx, log)
}

// BuildOptions converts the vault config into pipeline options.
func BuildOptions(v config.VaultConfig) (Options, error) {
	variant, err := program.ParseVariant(v.Program.Variant)
	if err != nil {
		return Options{}, err
	}

	layout := device.DefaultLayout()
	if v.Memory.FlagByte != nil {
		layout.FlagByte = uint8(*v.Memory.FlagByte)
	}
	if v.Memory.CurrentCode != nil {
		layout.CurrentCode = uint8(*v.Memory.CurrentCode)
	}

	policy := entry.Lenient
	if v.Program.Strict {
		policy = entry.Strict
	}

	return Options{
		Program: program.Options{
			Name:    v.Program.Name,
			Variant: variant,
			Include: v.Program.Include,
			Layout:  layout,
		},
		IncludeRoot: v.Program.IncludeRoot,
		Policy:      policy,
	}, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func msp(n *int, def time.Duration) time.Duration {
	if n == nil {
		return def
	}
	return ms(*n)
}
