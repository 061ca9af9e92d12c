// internal/assembler/assembler.go
package assembler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrMissingInclude means the runtime include resource is absent.
	ErrMissingInclude = errors.New("assembler: include file not found")
	// ErrNoOutput means the assembler ran but produced no hex text.
	ErrNoOutput = errors.New("assembler: no hex output")
	// ErrOutOfRange means a value (typically a one-byte table offset from
	// START) did not fit its operand, even though hex was produced.
	ErrOutOfRange = errors.New("assembler: value out of range")
)

var rangeDiagnostic = regexp.MustCompile(`(?i)out of range|range error|value too large`)

// Artifact is the result of one assembly.
// Hex may be non-empty alongside diagnostics; diagnostics are advisory.
type Artifact struct {
	Diagnostics []string
	Hex         string
	Listing     []string
}

// Assembler turns program lines into machine code.
type Assembler interface {
	Assemble(ctx context.Context, name string, lines []string) (Artifact, error)
}

// Error is a hard assembler failure. Diagnostics are forwarded verbatim.
type Error struct {
	Diagnostics []string
	Err         error
}

func (e *Error) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("assembler: %v", e.Err)
	}
	return fmt.Sprintf("assembler: %v: %s", e.Err, strings.Join(e.Diagnostics, " | "))
}

func (e *Error) Unwrap() error { return e.Err }

// ResolveInclude joins cwd, root and rel and checks the file exists.
func ResolveInclude(cwd, root, rel string) (string, error) {
	p := filepath.Join(cwd, root, rel)
	if !filepath.IsAbs(p) {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("assembler: resolve include %s: %w", p, err)
		}
		p = abs
	}

	st, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissingInclude, p)
		}
		return "", fmt.Errorf("assembler: stat include %s: %w", p, err)
	}
	if st.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrMissingInclude, p)
	}
	return p, nil
}

// RewriteInclude points the program's relative include at abs.
// Assemblers resolve includes relative to their own working directory.
func RewriteInclude(text, rel, abs string) string {
	return strings.ReplaceAll(text,
		`INCLUDE "`+rel+`"`,
		`INCLUDE "`+abs+`"`,
	)
}

// Compile assembles text with its include made absolute.
// Success is a non-empty hex text; a returned artifact may still carry
// advisory diagnostics. A range diagnostic is never advisory: the hex
// would hold truncated table offsets.
func Compile(ctx context.Context, a Assembler, name, text, rel, abs string) (Artifact, error) {
	lines := strings.Split(RewriteInclude(text, rel, abs), "\n")

	art, err := a.Assemble(ctx, name, lines)
	if err != nil {
		return art, err
	}

	if strings.TrimSpace(art.Hex) == "" {
		return art, &Error{Diagnostics: art.Diagnostics, Err: ErrNoOutput}
	}
	for _, d := range art.Diagnostics {
		if rangeDiagnostic.MatchString(d) {
			return art, &Error{Diagnostics: art.Diagnostics, Err: fmt.Errorf("%w: %s", ErrOutOfRange, d)}
		}
	}
	return art, nil
}
