// internal/config/validate_test.go
package config

import "testing"

// helper to build a normalized config quickly
func normalized(mut func(*VaultConfig)) *Config {
	cfg := &Config{}
	if mut != nil {
		mut(&cfg.Vault)
	}
	Normalize(cfg)
	return cfg
}

func u16(v uint16) *uint16 { return &v }
func intp(v int) *int { return &v }

// ---- tests ----

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := Validate(normalized(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_BasicVariant(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) { v.Program.Variant = "basic" })
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ProgramNameMustBeFileSafe(t *testing.T) {
	for _, name := range []string{"../escape", "a/b", "My Vault", "x.asm"} {
		cfg := normalized(func(v *VaultConfig) { v.Program.Name = name })
		if err := Validate(cfg); err == nil {
			t.Fatalf("expected name error for %q, got nil", name)
		}
	}

	cfg := normalized(func(v *VaultConfig) { v.Program.Name = "Vault_2-b" })
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownVariant(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) { v.Program.Variant = "fancy" })
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected variant error, got nil")
	}
}

func TestValidate_MemoryOverlapDetected(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) {
		v.Memory.FlagByte = u16(0x70)
		v.Memory.CurrentCode = u16(0x70)
	})
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected overlap error, got nil")
	}
}

func TestValidate_MemoryOutsideZeroPage(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) { v.Memory.CurrentCode = u16(0x100) })
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected zero page error, got nil")
	}
}

func TestValidate_AssemblerArgsMustReferenceInputAndHex(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) {
		v.Assembler.Command = "myasm"
		v.Assembler.Args = []string{"{input}"}
	})
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected args error, got nil")
	}
}

func TestValidate_SyncLengthRange(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) { v.Protocol.SyncLength = 5000 })
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected sync length error, got nil")
	}
}

func TestValidate_NegativeSleep(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) { v.Transport.ByteSleepMs = intp(-1) })
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected sleep error, got nil")
	}
}

func TestValidate_IncludeWithQuote(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) { v.Program.Include = `a"b` })
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected include error, got nil")
	}
}

func TestNormalize_ZeroSleepKept(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) { v.Transport.ByteSleepMs = intp(0) })
	if *cfg.Vault.Transport.ByteSleepMs != 0 {
		t.Fatalf("explicit zero byte sleep overwritten: %d", *cfg.Vault.Transport.ByteSleepMs)
	}
	if *cfg.Vault.Transport.PacketSleepMs != 250 {
		t.Fatalf("packet sleep default: got=%d want=250", *cfg.Vault.Transport.PacketSleepMs)
	}
}

func TestNormalize_CustomCommandKeepsArgs(t *testing.T) {
	cfg := normalized(func(v *VaultConfig) {
		v.Assembler.Command = "myasm"
		v.Assembler.Args = []string{"{input}", "{hex}"}
	})
	if len(cfg.Vault.Assembler.Args) != 2 {
		t.Fatalf("custom args replaced: %v", cfg.Vault.Assembler.Args)
	}
}
