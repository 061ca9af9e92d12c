// internal/config/config.go
package config

type Config struct {
	Vault VaultConfig `yaml:"vault"`
}

type VaultConfig struct {
	Program   ProgramConfig   `yaml:"program"`
	Memory    MemoryConfig    `yaml:"memory"`
	Assembler AssemblerConfig `yaml:"assembler"`
	Protocol  ProtocolConfig  `yaml:"protocol"`
	Transport TransportConfig `yaml:"transport"`
}

// ---- PROGRAM ----

type ProgramConfig struct {
	Name        string `yaml:"name"`
	Variant     string `yaml:"variant"`      // navigator | basic
	Include     string `yaml:"include"`      // reference as written in program text
	IncludeRoot string `yaml:"include_root"` // resolved against the process cwd
	Strict      bool   `yaml:"strict"`       // reject segments without a colon
}

// ---- DEVICE MEMORY ----

type MemoryConfig struct {
	FlagByte    *uint16 `yaml:"flagbyte"`
	CurrentCode *uint16 `yaml:"current_code"`
}

// ---- ASSEMBLER ----

type AssemblerConfig struct {
	Command   string   `yaml:"command"`
	Args      []string `yaml:"args"`
	TimeoutMs int      `yaml:"timeout_ms"`
}

// ---- PROTOCOL ----

type ProtocolConfig struct {
	SyncLength int `yaml:"sync_length"`
}

// ---- TRANSPORT ----

type TransportConfig struct {
	BaudRate      int  `yaml:"baud_rate"`
	ByteSleepMs   *int `yaml:"byte_sleep_ms"`   // nil => default
	PacketSleepMs *int `yaml:"packet_sleep_ms"` // nil => default
	TimeoutMs     int  `yaml:"timeout_ms"`
	Verbose       bool `yaml:"verbose"`
}
