// cmd/wristvault/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tamzrod/wristvault/internal/config"
	"github.com/tamzrod/wristvault/internal/vault"
)

var (
	cfgPath     string
	variant     string
	strict      bool
	verbose     bool
	showListing bool

	logger *zap.Logger

	// buildPipeline is replaced in tests.
	buildPipeline = vault.Build
)

var rootCmd = &cobra.Command{
	Use:   "wristvault <recovery_codes> <serial_port>",
	Short: "Build and send a recovery-code wrist app to a Timex Datalink watch",
	Long: `wristvault turns a comma-separated list of service:code pairs into a
wrist app program, assembles it and transmits it over a serial
Datalink adapter.

Example:
  wristvault "github:abc123,google:def456" /dev/ttyUSB0`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgPath, "config", "", "YAML config file (optional)")
	f.StringVar(&variant, "variant", "", "program variant: navigator | basic")
	f.BoolVar(&strict, "strict", false, "reject segments without a service:code separator")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging and per-packet transport output")
	f.BoolVar(&showListing, "show-listing", false, "print the assembler listing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if logger != nil {
			_ = logger.Sync()
		}
		os.Exit(int(errorCode(err)))
	}
}

func run(cmd *cobra.Command, args []string) error {
	codes, port := args[0], args[1]
	out := cmd.OutOrStdout()

	// --------------------
	// Load + normalize + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	applyFlags(cmd, cfg)
	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// --------------------
	// Build + run pipeline
	// --------------------

	p, err := buildPipeline(cfg, logger)
	if err != nil {
		return fmt.Errorf("pipeline build failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	banner(out, cfg)

	res, err := p.Run(ctx, codes, port)
	if showListing && len(res.Artifact.Listing) > 0 {
		printListing(out, res.Artifact.Listing)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "entries:  %d (%d dropped)\n", len(res.Entries), len(res.Dropped))
	fmt.Fprintf(out, "program:  %d bytes\n", len(res.Program.Text))
	fmt.Fprintf(out, "hex:      %d chars\n", len(res.Artifact.Hex))
	fmt.Fprintf(out, "binary:   %d bytes\n", len(res.Binary))
	fmt.Fprintf(out, "sent %d packet groups to %s\n", res.Groups, port)
	return nil
}

// applyFlags lets CLI flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("variant") {
		cfg.Vault.Program.Variant = variant
	}
	if f.Changed("strict") {
		cfg.Vault.Program.Strict = strict
	}
	if verbose {
		cfg.Vault.Transport.Verbose = true
	}
}

func banner(w io.Writer, cfg *config.Config) {
	p := cfg.Vault.Program
	fmt.Fprintf(w, "%s (%s) for Timex Datalink\n", p.Name, p.Variant)
}

func printListing(w io.Writer, lines []string) {
	fmt.Fprintln(w, "---- listing ----")
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, "-----------------")
}

// errorCode extracts a best-effort code from an error without assuming concrete types.
// If the error does not expose a code, returns 1 (generic error).
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coderA interface{ Code() uint16 }
	type coderB interface{ ErrorCode() uint16 }

	var a coderA
	if errors.As(err, &a) {
		return a.Code()
	}
	var b coderB
	if errors.As(err, &b) {
		return b.ErrorCode()
	}

	return 1
}
