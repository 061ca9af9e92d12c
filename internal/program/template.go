// internal/program/template.go
package program

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrUnreplacedPlaceholder means the skeleton names a fragment nobody supplied.
	ErrUnreplacedPlaceholder = errors.New("template: unreplaced placeholder")
	// ErrUnusedFragment means a supplied fragment has no placeholder.
	ErrUnusedFragment = errors.New("template: fragment has no placeholder")
	// ErrDuplicatePlaceholder means a placeholder occurs more than once.
	ErrDuplicatePlaceholder = errors.New("template: placeholder occurs more than once")
)

var placeholderRE = regexp.MustCompile(`\{([A-Z][A-Z0-9_]*)\}`)

// Fragments maps placeholder names to their substitution text.
type Fragments map[string]string

// Render substitutes every {NAME} in skeleton in a single pass.
// Substituted text is never rescanned, so fragments may contain braces.
// Every placeholder must occur exactly once and every fragment must be used.
func Render(skeleton string, frags Fragments) (string, error) {
	counts := map[string]int{}
	for _, m := range placeholderRE.FindAllStringSubmatch(skeleton, -1) {
		counts[m[1]]++
	}

	var missing, dup, unused []string
	for name, n := range counts {
		if _, ok := frags[name]; !ok {
			missing = append(missing, name)
		}
		if n > 1 {
			dup = append(dup, name)
		}
	}
	for name := range frags {
		if counts[name] == 0 {
			unused = append(unused, name)
		}
	}

	switch {
	case len(missing) > 0:
		return "", fmt.Errorf("%w: %s", ErrUnreplacedPlaceholder, joinSorted(missing))
	case len(dup) > 0:
		return "", fmt.Errorf("%w: %s", ErrDuplicatePlaceholder, joinSorted(dup))
	case len(unused) > 0:
		return "", fmt.Errorf("%w: %s", ErrUnusedFragment, joinSorted(unused))
	}

	return placeholderRE.ReplaceAllStringFunc(skeleton, func(m string) string {
		return frags[m[1:len(m)-1]]
	}), nil
}

func joinSorted(names []string) string {
	sort.Strings(names)
	return strings.Join(names, ", ")
}
