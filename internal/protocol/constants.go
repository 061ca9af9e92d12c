// internal/protocol/constants.go
package protocol

// Protocol 4 framing constants (LOCKED).

// ---- SYNC ----

const (
	SyncByte1   byte = 0x55
	SyncByte2   byte = 0xAA
	Sync2Length      = 40

	// DefaultSyncLength is the number of SyncByte1 bytes the host sends.
	DefaultSyncLength = 100
	MaxSyncLength     = 1000
)

// ---- COMMAND PACKETS ----

var (
	cpacketStart = []byte{0x20, 0x00, 0x00, 0x04}
	cpacketSkip  = []byte{0x21}

	cpacketClear = []byte{0x93, 0x02}
	cpacketSect  = []byte{0x90, 0x02}
	cpacketData  = []byte{0x91, 0x02}
	cpacketEnd   = []byte{0x92, 0x02}
)

// DataChunk is the payload size of one wrist app data packet.
const DataChunk = 32

// MaxChunks is bounded by the one-byte chunk counter.
const MaxChunks = 255
