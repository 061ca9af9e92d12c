// internal/transport/serial.go
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
	"go.uber.org/zap"

	"github.com/tamzrod/wristvault/internal/protocol"
)

// Defaults match the notebook adapter timing the watch expects.
const (
	DefaultBaudRate    = 9600
	DefaultByteSleep   = 25 * time.Millisecond
	DefaultPacketSleep = 250 * time.Millisecond
	DefaultTimeout     = 5 * time.Second
)

// Config is minimal transport config.
type Config struct {
	BaudRate    int
	ByteSleep   time.Duration
	PacketSleep time.Duration
	Timeout     time.Duration
	Verbose     bool
}

// Opener opens the serial device described by c.
type Opener func(c *serial.Config) (io.ReadWriteCloser, error)

func openSerial(c *serial.Config) (io.ReadWriteCloser, error) {
	p, err := serial.Open(c)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Serial writes packet groups to a serial device byte by byte.
// One port per Write: opened, drained, closed.
type Serial struct {
	cfg   Config
	open  Opener
	sleep func(ctx context.Context, d time.Duration) error
	log   *zap.Logger
}

// New creates a serial adapter. Zero config fields take defaults.
func New(cfg Config, log *zap.Logger) *Serial {
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Serial{
		cfg:   cfg,
		open:  openSerial,
		sleep: sleepCtx,
		log:   log,
	}
}

// Write sends every packet of every group to dest, in order.
// No retries.
func (s *Serial) Write(ctx context.Context, dest string, groups []protocol.Group) (err error) {
	if dest == "" {
		return errors.New("transport: destination required")
	}

	port, err := s.open(&serial.Config{
		Address:  dest,
		BaudRate: s.cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  s.cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("transport: open %s: %w", dest, err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("transport: close %s: %w", dest, cerr)
		}
	}()

	total := 0
	for gi, g := range groups {
		for pi, pkt := range g.Packets {
			if err := s.writePacket(ctx, port, pkt); err != nil {
				return fmt.Errorf("transport: group=%d (%s) packet=%d: %w", gi, g.Kind, pi, err)
			}
			total++

			if s.cfg.Verbose {
				s.log.Debug("packet sent",
					zap.String("group", g.Kind.String()),
					zap.Int("packet", pi),
					zap.Int("bytes", len(pkt)),
				)
			}

			if err := s.sleep(ctx, s.cfg.PacketSleep); err != nil {
				return fmt.Errorf("transport: %w", err)
			}
		}
	}

	s.log.Info("transmission complete",
		zap.String("dest", dest),
		zap.Int("groups", len(groups)),
		zap.Int("packets", total),
	)
	return nil
}

func (s *Serial) writePacket(ctx context.Context, w io.Writer, pkt []byte) error {
	for i := range pkt {
		if err := writeAll(w, pkt[i:i+1]); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.ByteSleep); err != nil {
			return err
		}
	}
	return nil
}

// ---- helpers ----

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
