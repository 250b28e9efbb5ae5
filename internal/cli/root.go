// Package cli implements the flexpath command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/meigma/flexpath"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// app carries the streams and resolved settings shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	cfg      config
	variant  flexpath.Variant
	logger   *slog.Logger
	decoders *decoderPool
}

// Main runs the command with the process arguments and streams.
func Main() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv)
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	cmd := NewRootCmd(stdin, stdout, stderr, getenv)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "flexpath: %v\n", err)
		var usage *usageError
		if errors.As(err, &usage) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

// NewRootCmd builds the flexpath command tree.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	a := &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		getenv:   getenv,
		logger:   slog.New(slog.DiscardHandler),
		decoders: newDecoderPool(maxDecoderMemory),
	}

	cmd := &cobra.Command{
		Use:   "flexpath",
		Short: "Manipulate file paths as text",
		Long: `flexpath resolves, joins, normalizes and relativizes file paths without
touching the file system. Paths follow the common (POSIX-like) or windows
grammar; "native" picks the grammar of the host.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	a.cfg.bindFlags(cmd.PersistentFlags(), getenv)

	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return a.configure()
	}

	cmd.AddCommand(
		newNormalizeCmd(a),
		newJoinCmd(a),
		newResolveCmd(a),
		newRelativeCmd(a),
		newInfoCmd(a),
		newBatchCmd(a),
	)

	return cmd
}

// configure validates the flags and installs the logger.
func (a *app) configure() error {
	var merr error

	v, err := flexpath.ParseVariant(a.cfg.variant)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := validateOutput(a.cfg.output); err != nil {
		merr = multierror.Append(merr, err)
	}
	logger, err := newLogger(a.stderr, a.cfg.logLevel, a.cfg.logFormat)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	if merr != nil {
		return &usageError{err: fmt.Errorf("invalid argument: %w", merr)}
	}

	a.variant = v
	a.logger = logger
	a.logger.Debug("configured",
		slog.String("variant", v.String()),
		slog.String("output", a.cfg.output))
	return nil
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// argsBetween validates the number of positional arguments. max < 0 means
// no upper bound.
func argsBetween(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		var err error
		switch {
		case maxArgs == minArgs && len(args) != minArgs:
			err = fmt.Errorf("accepts %d arg(s), received %d", minArgs, len(args))
		case len(args) < minArgs:
			err = fmt.Errorf("requires at least %d arg(s), received %d", minArgs, len(args))
		case maxArgs >= 0 && len(args) > maxArgs:
			err = fmt.Errorf("accepts at most %d arg(s), received %d", maxArgs, len(args))
		}
		if err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
