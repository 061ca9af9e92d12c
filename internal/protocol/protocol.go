// internal/protocol/protocol.go
package protocol

import "fmt"

// Group is the packets produced by one component, in send order.
type Group struct {
	Kind    Kind
	Packets [][]byte
}

// Size is the total byte count of the group.
func (g Group) Size() int {
	n := 0
	for _, p := range g.Packets {
		n += len(p)
	}
	return n
}

// Protocol4 turns components into packet groups.
// Geometry only: no IO.
type Protocol4 struct{}

// Packets returns one group per component, in component order.
func (Protocol4) Packets(components []Component) ([]Group, error) {
	groups := make([]Group, 0, len(components))
	for i, c := range components {
		pkts, err := c.packets()
		if err != nil {
			return nil, fmt.Errorf("protocol: component %d (%s): %w", i, c.Kind(), err)
		}
		groups = append(groups, Group{Kind: c.Kind(), Packets: pkts})
	}
	return groups, nil
}
