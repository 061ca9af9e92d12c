// internal/device/layout.go
package device

// Layout names the fixed memory cells the generated program uses.
// It is passed explicitly to the generator; there are no ambient globals.
type Layout struct {
	FlagByte    uint8
	CurrentCode uint8
}

// DefaultLayout returns the stock zero-page assignments.
func DefaultLayout() Layout {
	return Layout{
		FlagByte:    DefaultFlagByte,
		CurrentCode: DefaultCurrentCode,
	}
}
