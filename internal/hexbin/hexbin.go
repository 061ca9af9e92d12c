// internal/hexbin/hexbin.go
package hexbin

import (
	"encoding/hex"
	"strings"
)

// Report describes what a lenient decode dropped.
type Report struct {
	Skipped int // characters skipped while resynchronizing
}

// Anomalous reports whether anything was dropped.
func (r Report) Anomalous() bool { return r.Skipped > 0 }

// Decode converts assembler hex text to bytes.
// Surrounding whitespace is trimmed, then two-character windows are decoded
// left to right. A window that is not a hex byte advances the scan by one
// character only, so the decoder resynchronizes instead of failing.
// A trailing odd character is ignored.
func Decode(text string) ([]byte, Report) {
	s := []byte(strings.TrimSpace(text))
	out := make([]byte, 0, len(s)/2)

	var rep Report
	var b [1]byte

	i := 0
	for i+1 < len(s) {
		if _, err := hex.Decode(b[:], s[i:i+2]); err != nil {
			rep.Skipped++
			i++
			continue
		}
		out = append(out, b[0])
		i += 2
	}

	return out, rep
}
