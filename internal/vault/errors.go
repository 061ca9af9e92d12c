// internal/vault/errors.go
package vault

import (
	"fmt"
	"strings"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindMalformedInput Kind = iota + 1
	KindEmptyEntrySet
	KindTooManyEntries
	KindGeneration
	KindMissingResource
	KindAssemblyFailure
	KindTranscodeAnomaly // logged only, never returned
	KindTransmissionFailure
)

func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed input"
	case KindEmptyEntrySet:
		return "empty entry set"
	case KindTooManyEntries:
		return "too many entries"
	case KindGeneration:
		return "generation"
	case KindMissingResource:
		return "missing resource"
	case KindAssemblyFailure:
		return "assembly failure"
	case KindTranscodeAnomaly:
		return "transcode anomaly"
	case KindTransmissionFailure:
		return "transmission failure"
	default:
		return "unknown"
	}
}

// Pipeline stage names.
const (
	StageParse     = "parse"
	StageGenerate  = "generate"
	StageInclude   = "include"
	StageCompile   = "compile"
	StageTranscode = "transcode"
	StageTransmit  = "transmit"
)

// Error is the typed failure returned by Run.
type Error struct {
	Stage       string
	Kind        Kind
	Diagnostics []string // assembler output, verbatim
	Err         error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
	if len(e.Diagnostics) > 0 && !strings.Contains(msg, e.Diagnostics[0]) {
		msg += ": " + strings.Join(e.Diagnostics, " | ")
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Code is a stable non-zero code per kind. 1 is left for unclassified errors.
func (e *Error) Code() uint16 {
	return uint16(e.Kind) + 1
}

func fail(stage string, kind Kind, err error) *Error {
	return &Error{Stage: stage, Kind: kind, Err: err}
}
