package transmit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/tamzrod/wristvault/internal/protocol"
)

// ---- fakes ----

type fakeAdapter struct {
	dest   string
	groups []protocol.Group
	err    error
}

func (f *fakeAdapter) Write(ctx context.Context, dest string, groups []protocol.Group) error {
	f.dest = dest
	f.groups = groups
	return f.err
}

type failingPackager struct{}

func (failingPackager) Packets([]protocol.Component) ([]protocol.Group, error) {
	return nil, errors.New("packager exploded")
}

// ---- tests ----

func TestSend_FramesPayloadInOrder(t *testing.T) {
	ad := &fakeAdapter{}
	tx, err := New(Config{SyncLength: 100}, protocol.Protocol4{}, ad, zap.NewNop())
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	n, err := tx.Send(context.Background(), "/dev/ttyUSB0", []byte{0xA6, 0x00})
	if err != nil {
		t.Fatalf("Send() err=%v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 groups, got %d", n)
	}

	if ad.dest != "/dev/ttyUSB0" {
		t.Fatalf("unexpected dest %q", ad.dest)
	}

	var kinds []protocol.Kind
	for _, g := range ad.groups {
		kinds = append(kinds, g.Kind)
	}
	want := []protocol.Kind{protocol.KindSync, protocol.KindStart, protocol.KindWristApp, protocol.KindEnd}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlan_ExactlyOneOfEach(t *testing.T) {
	tx, err := New(Config{SyncLength: 42}, protocol.Protocol4{}, &fakeAdapter{}, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	plan := tx.BuildPlan("dev", []byte{1})
	if len(plan.Components) != 4 {
		t.Fatalf("expected 4 components, got %d", len(plan.Components))
	}
	if s, ok := plan.Components[0].(protocol.Sync); !ok || s.Length != 42 {
		t.Fatalf("first component must be sync(42), got %#v", plan.Components[0])
	}
	if _, ok := plan.Components[1].(protocol.Start); !ok {
		t.Fatalf("second component must be start")
	}
	if w, ok := plan.Components[2].(protocol.WristApp); !ok || len(w.Data) != 1 {
		t.Fatalf("third component must carry the payload")
	}
	if _, ok := plan.Components[3].(protocol.End); !ok {
		t.Fatalf("fourth component must be end")
	}
}

func TestSend_PackagerFailure(t *testing.T) {
	ad := &fakeAdapter{}
	tx, _ := New(Config{SyncLength: 1}, failingPackager{}, ad, nil)

	_, err := tx.Send(context.Background(), "dev", []byte{1})
	if err == nil {
		t.Fatalf("expected error")
	}
	if ad.groups != nil {
		t.Fatalf("adapter must not be called after packaging failure")
	}
}

func TestSend_AdapterFailureForwarded(t *testing.T) {
	cause := errors.New("port busy")
	tx, _ := New(Config{SyncLength: 1}, protocol.Protocol4{}, &fakeAdapter{err: cause}, nil)

	_, err := tx.Send(context.Background(), "dev", []byte{1})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped adapter error, got %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{}, protocol.Protocol4{}, &fakeAdapter{}, nil); err == nil {
		t.Fatalf("expected sync length error")
	}
	if _, err := New(Config{SyncLength: 1}, nil, &fakeAdapter{}, nil); err == nil {
		t.Fatalf("expected packager error")
	}
	if _, err := New(Config{SyncLength: 1}, protocol.Protocol4{}, nil, nil); err == nil {
		t.Fatalf("expected adapter error")
	}
}
