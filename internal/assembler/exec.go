// internal/assembler/exec.go
package assembler

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Argument tokens expanded by Exec.
const (
	TokenInput   = "{input}"
	TokenHex     = "{hex}"
	TokenListing = "{listing}"
)

// Exec runs an external assembler command in a scratch directory.
//
// The program is written to <dir>/<name>; {input}, {hex} and {listing}
// in Args are replaced by the source, hex and listing paths. Combined
// stdout/stderr lines become diagnostics.
type Exec struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// Assemble implements Assembler.
func (e *Exec) Assemble(ctx context.Context, name string, lines []string) (Artifact, error) {
	if e.Command == "" {
		return Artifact{}, &Error{Err: errors.New("command not configured")}
	}
	if base := filepath.Base(name); base != name || base == "." || base == ".." {
		return Artifact{}, &Error{Err: fmt.Errorf("source name %q must be a bare file name", name)}
	}

	dir, err := os.MkdirTemp("", "wristvault-asm-")
	if err != nil {
		return Artifact{}, &Error{Err: fmt.Errorf("scratch dir: %w", err)}
	}
	defer os.RemoveAll(dir)

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	src := filepath.Join(dir, name)
	hexPath := filepath.Join(dir, stem+".hex")
	lstPath := filepath.Join(dir, stem+".lst")

	if err := os.WriteFile(src, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		return Artifact{}, &Error{Err: fmt.Errorf("write source: %w", err)}
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	r := strings.NewReplacer(TokenInput, src, TokenHex, hexPath, TokenListing, lstPath)
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = r.Replace(a)
	}

	cmd := exec.CommandContext(ctx, e.Command, args...)
	cmd.Dir = dir
	out, runErr := cmd.CombinedOutput()

	art := Artifact{Diagnostics: splitLines(out)}
	if runErr != nil {
		return art, &Error{Diagnostics: art.Diagnostics, Err: fmt.Errorf("%s: %w", e.Command, runErr)}
	}

	hex, err := os.ReadFile(hexPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return art, &Error{Diagnostics: art.Diagnostics, Err: fmt.Errorf("read hex: %w", err)}
	}
	art.Hex = string(hex)

	if lst, err := os.ReadFile(lstPath); err == nil {
		art.Listing = strings.Split(strings.TrimRight(string(lst), "\r\n"), "\n")
	}

	return art, nil
}

func splitLines(b []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
