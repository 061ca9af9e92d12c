// internal/vault/pipeline.go
package vault

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tamzrod/wristvault/internal/assembler"
	"github.com/tamzrod/wristvault/internal/device"
	"github.com/tamzrod/wristvault/internal/entry"
	"github.com/tamzrod/wristvault/internal/hexbin"
	"github.com/tamzrod/wristvault/internal/program"
)

// Options is the minimal runtime config the pipeline needs.
type Options struct {
	Program     program.Options
	IncludeRoot string
	Policy      entry.Policy

	// WorkDir anchors the include path; empty means the process cwd.
	WorkDir string
}

// Sender delivers a program image to a destination.
type Sender interface {
	Send(ctx context.Context, dest string, blob []byte) (int, error)
}

// Pipeline runs parse, generate, compile, transcode and transmit in
// sequence. Each stage consumes the previous stage's value.
type Pipeline struct {
	opts Options
	asm  assembler.Assembler
	tx   Sender
	log  *zap.Logger
}

// Result holds every stage's output of a successful run.
type Result struct {
	Entries  []entry.Entry
	Dropped  []string
	Program  program.Program
	Artifact assembler.Artifact
	Binary   []byte
	Groups   int
}

// New creates a pipeline with immutable options.
func New(opts Options, asm assembler.Assembler, tx Sender, log *zap.Logger) (*Pipeline, error) {
	if asm == nil {
		return nil, errors.New("vault: assembler required")
	}
	if tx == nil {
		return nil, errors.New("vault: sender required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{opts: opts, asm: asm, tx: tx, log: log}, nil
}

// Run turns codes into a program and sends it to dest.
// Any returned error is a *Error.
func (p *Pipeline) Run(ctx context.Context, codes, dest string) (Result, error) {
	log := p.log.With(zap.String("run", uuid.NewString()))
	var res Result

	// ---- parse ----

	parsed, err := entry.Parse(codes, p.opts.Policy)
	if err != nil {
		return res, fail(StageParse, KindMalformedInput, err)
	}
	for _, seg := range parsed.Dropped {
		log.Warn("dropped segment without service:code separator",
			zap.String("kind", KindMalformedInput.String()),
			zap.String("segment", seg),
		)
	}
	res.Entries, res.Dropped = parsed.Entries, parsed.Dropped

	if len(res.Entries) == 0 {
		return res, fail(StageParse, KindEmptyEntrySet, program.ErrNoEntries)
	}
	if len(res.Entries) > device.MaxEntries {
		return res, fail(StageParse, KindTooManyEntries,
			fmt.Errorf("%w: %d > %d", program.ErrTooManyEntries, len(res.Entries), device.MaxEntries))
	}

	// ---- generate ----

	prog, err := program.Generate(res.Entries, p.opts.Program)
	if err != nil {
		return res, fail(StageGenerate, generateKind(err), err)
	}
	res.Program = prog
	log.Info("program generated",
		zap.Int("entries", len(res.Entries)),
		zap.String("variant", string(prog.Machine.Variant)),
		zap.Int("bytes", len(prog.Text)),
	)

	// ---- include ----

	cwd := p.opts.WorkDir
	if cwd == "" {
		if cwd, err = os.Getwd(); err != nil {
			return res, fail(StageInclude, KindMissingResource, err)
		}
	}
	incl, err := assembler.ResolveInclude(cwd, p.opts.IncludeRoot, p.opts.Program.Include)
	if err != nil {
		return res, fail(StageInclude, KindMissingResource, err)
	}

	// ---- compile ----

	art, err := assembler.Compile(ctx, p.asm, prog.SourceName(), prog.Text, p.opts.Program.Include, incl)
	res.Artifact = art
	for _, d := range art.Diagnostics {
		log.Info("assembler diagnostic", zap.String("line", d))
	}
	if err != nil {
		e := fail(StageCompile, KindAssemblyFailure, err)
		var ae *assembler.Error
		if errors.As(err, &ae) {
			e.Diagnostics = ae.Diagnostics
		}
		return res, e
	}
	log.Info("program compiled", zap.Int("hex_chars", len(art.Hex)))
	log.Debug("hex prefix", zap.String("hex", prefix(art.Hex, 64)))

	// ---- transcode ----

	bin, rep := hexbin.Decode(art.Hex)
	if rep.Anomalous() {
		log.Warn("malformed hex characters skipped",
			zap.String("kind", KindTranscodeAnomaly.String()),
			zap.Int("skipped", rep.Skipped),
		)
	}
	if len(bin) == 0 {
		return res, fail(StageTranscode, KindAssemblyFailure, errors.New("hex text decoded to zero bytes"))
	}
	res.Binary = bin
	log.Info("hex converted", zap.Int("bytes", len(bin)))

	// ---- transmit ----

	n, err := p.tx.Send(ctx, dest, bin)
	if err != nil {
		return res, fail(StageTransmit, KindTransmissionFailure, err)
	}
	res.Groups = n
	log.Info("program sent", zap.String("dest", dest), zap.Int("groups", n))

	return res, nil
}

func generateKind(err error) Kind {
	switch {
	case errors.Is(err, program.ErrNoEntries):
		return KindEmptyEntrySet
	case errors.Is(err, program.ErrTooManyEntries):
		return KindTooManyEntries
	default:
		return KindGeneration
	}
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
