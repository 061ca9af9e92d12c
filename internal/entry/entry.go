// internal/entry/entry.go
package entry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned in strict mode for a segment without a colon.
var ErrMalformed = errors.New("entry: segment has no service:code separator")

// Entry is one service/code pair.
// Order of entries is the on-device index order.
type Entry struct {
	Service string
	Code    string
}

// Policy decides what happens to a segment that lacks a colon.
type Policy int

const (
	// Lenient drops malformed segments and reports them to the caller.
	Lenient Policy = iota
	// Strict rejects the whole input on the first malformed segment.
	Strict
)

// Result is the outcome of one Parse call.
type Result struct {
	Entries []Entry

	// Dropped holds malformed segments skipped under Lenient.
	Dropped []string
}

// Parse splits input on ',' and each segment on its first ':'.
// Blank segments (empty input, trailing comma) are ignored under both
// policies. Surrounding whitespace of service and code is trimmed, so
// Entry values (and the table comments rendered from them) hold the
// trimmed text, not the raw segment.
func Parse(input string, policy Policy) (Result, error) {
	var res Result

	for i, seg := range strings.Split(input, ",") {
		if strings.TrimSpace(seg) == "" {
			continue
		}

		service, code, ok := strings.Cut(seg, ":")
		if !ok {
			if policy == Strict {
				return Result{}, fmt.Errorf("%w: segment %d %q", ErrMalformed, i, seg)
			}
			res.Dropped = append(res.Dropped, seg)
			continue
		}

		res.Entries = append(res.Entries, Entry{
			Service: strings.TrimSpace(service),
			Code:    strings.TrimSpace(code),
		})
	}

	return res, nil
}
