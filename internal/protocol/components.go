// internal/protocol/components.go
package protocol

import (
	"errors"
	"fmt"
)

// Kind identifies a component and the packet group it produces.
type Kind int

const (
	KindSync Kind = iota + 1
	KindStart
	KindWristApp
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindSync:
		return "sync"
	case KindStart:
		return "start"
	case KindWristApp:
		return "wrist_app"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Component is one typed element of a transmission.
type Component interface {
	Kind() Kind
	packets() ([][]byte, error)
}

// Sync is the synchronization preamble.
type Sync struct {
	Length int
}

func (Sync) Kind() Kind { return KindSync }

func (s Sync) packets() ([][]byte, error) {
	if s.Length <= 0 || s.Length > MaxSyncLength {
		return nil, fmt.Errorf("protocol: sync length %d out of range 1..%d", s.Length, MaxSyncLength)
	}

	p := make([]byte, 0, s.Length+Sync2Length)
	for i := 0; i < s.Length; i++ {
		p = append(p, SyncByte1)
	}
	for i := 0; i < Sync2Length; i++ {
		p = append(p, SyncByte2)
	}
	// Sync bytes are sent raw, not CRC framed.
	return [][]byte{p}, nil
}

// Start opens a protocol 4 session.
type Start struct{}

func (Start) Kind() Kind { return KindStart }

func (Start) packets() ([][]byte, error) {
	return [][]byte{wrap(cpacketStart)}, nil
}

// WristApp carries a compiled program image.
type WristApp struct {
	Data []byte
}

func (WristApp) Kind() Kind { return KindWristApp }

func (w WristApp) packets() ([][]byte, error) {
	if len(w.Data) == 0 {
		return nil, errors.New("protocol: wrist app data is empty")
	}

	n := (len(w.Data) + DataChunk - 1) / DataChunk
	if n > MaxChunks {
		return nil, fmt.Errorf("protocol: wrist app needs %d packets, max %d", n, MaxChunks)
	}

	out := make([][]byte, 0, n+3)
	out = append(out, wrap(cpacketClear))
	out = append(out, wrap(append(clone(cpacketSect), byte(n))))

	for i := 0; i < n; i++ {
		end := min((i+1)*DataChunk, len(w.Data))

		p := append(clone(cpacketData), byte(i+1))
		p = append(p, w.Data[i*DataChunk:end]...)
		out = append(out, wrap(p))
	}

	out = append(out, wrap(cpacketEnd))
	return out, nil
}

// End closes the session.
type End struct{}

func (End) Kind() Kind { return KindEnd }

func (End) packets() ([][]byte, error) {
	return [][]byte{wrap(cpacketSkip)}, nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
