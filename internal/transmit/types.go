// internal/transmit/types.go
package transmit

import (
	"context"

	"github.com/tamzrod/wristvault/internal/protocol"
)

// Packager is the exact contract the transmitter uses to build packets.
type Packager interface {
	Packets(components []protocol.Component) ([]protocol.Group, error)
}

// Adapter delivers packet groups to a destination, in order.
// Retries, if any, belong to the adapter.
type Adapter interface {
	Write(ctx context.Context, dest string, groups []protocol.Group) error
}

// Plan is the fully-built framing for one transmission.
type Plan struct {
	Destination string
	Components  []protocol.Component
}
