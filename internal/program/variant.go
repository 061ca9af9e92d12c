// internal/program/variant.go
package program

import "fmt"

// Variant selects how rich the generated state machine is.
// All variants share one skeleton.
type Variant string

const (
	// VariantNavigator lists services and reveals the code while SET is held.
	VariantNavigator Variant = "navigator"
	// VariantBasic shows service and code together on the 6-character lines.
	VariantBasic Variant = "basic"
)

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantNavigator, VariantBasic:
		return v, nil
	case "":
		return VariantNavigator, nil
	default:
		return "", fmt.Errorf("program: unknown variant %q", s)
	}
}

// ShortTables reports whether the variant renders 6-character entry strings
// and therefore needs the narrow tables laid out.
func (v Variant) ShortTables() bool {
	return v == VariantBasic
}
