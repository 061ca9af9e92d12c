// internal/transmit/transmit.go
package transmit

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tamzrod/wristvault/internal/protocol"
)

// Config is the framing the transmitter owns.
type Config struct {
	SyncLength int
}

// Transmitter frames a program image and hands it to the packager and
// the adapter. Failures from either are returned unchanged (wrapped, not
// retried).
type Transmitter struct {
	cfg      Config
	packager Packager
	adapter  Adapter
	log      *zap.Logger
}

// New creates a transmitter with immutable config.
func New(cfg Config, packager Packager, adapter Adapter, log *zap.Logger) (*Transmitter, error) {
	if cfg.SyncLength <= 0 {
		return nil, errors.New("transmit: sync length must be > 0")
	}
	if packager == nil {
		return nil, errors.New("transmit: packager required")
	}
	if adapter == nil {
		return nil, errors.New("transmit: adapter required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Transmitter{cfg: cfg, packager: packager, adapter: adapter, log: log}, nil
}

// BuildPlan wraps blob with exactly one sync, start, payload and end
// component, in that order.
func (t *Transmitter) BuildPlan(dest string, blob []byte) Plan {
	return Plan{
		Destination: dest,
		Components: []protocol.Component{
			protocol.Sync{Length: t.cfg.SyncLength},
			protocol.Start{},
			protocol.WristApp{Data: blob},
			protocol.End{},
		},
	}
}

// Send builds the plan, packages it and delivers the packet groups.
// Returns the number of groups delivered.
func (t *Transmitter) Send(ctx context.Context, dest string, blob []byte) (int, error) {
	plan := t.BuildPlan(dest, blob)

	groups, err := t.packager.Packets(plan.Components)
	if err != nil {
		return 0, fmt.Errorf("transmit: packaging: %w", err)
	}

	t.log.Info("packet groups generated",
		zap.Int("groups", len(groups)),
		zap.Int("payload_bytes", len(blob)),
	)

	if err := t.adapter.Write(ctx, plan.Destination, groups); err != nil {
		return 0, fmt.Errorf("transmit: dest=%s: %w", plan.Destination, err)
	}

	return len(groups), nil
}
