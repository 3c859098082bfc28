// Package cli implements hashsum command-line parsing and commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	apperrors "hashsum/internal/errors"
	"hashsum/internal/hash"
	"hashsum/internal/progress"
)

// Command represents an executable CLI command.
type Command struct {
	name string
	run  func(args []string) error
}

// Name returns the command name.
func (c Command) Name() string { return c.name }

// RootCommand handles argument parsing for the hashsum CLI.
type RootCommand struct {
	out      io.Writer
	errOut   io.Writer
	in       io.Reader
	log      *slog.Logger
	commands []Command
	args     []string
}

// NewRootCommand creates the hashsum root command.
func NewRootCommand(out io.Writer, errOut io.Writer, in io.Reader, log *slog.Logger) *RootCommand {
	root := &RootCommand{out: out, errOut: errOut, in: in, log: log}
	root.commands = []Command{
		NewVersionCommand(out),
		{name: "sum", run: root.runSum},
	}
	return root
}

// SetArgs sets command arguments.
func (r *RootCommand) SetArgs(args []string) { r.args = args }

// Commands returns configured subcommands.
func (r *RootCommand) Commands() []Command { return r.commands }

// Execute parses and runs commands. Arguments that are not a known
// subcommand are treated as sum operands, so "hashsum file.txt" works
// without naming the sum command.
func (r *RootCommand) Execute() error {
	if len(r.args) > 0 {
		switch r.args[0] {
		case "-h", "--help", "help":
			return r.printHelp()
		case "version":
			return r.commands[0].run(r.args[1:])
		case "sum":
			return r.commands[1].run(r.args[1:])
		}
	}
	return r.runSum(r.args)
}

func (r *RootCommand) printHelp() error {
	const help = "hashsum computes SHA-256 digests of files, strings, and standard input\n\nUsage:\n  hashsum [flags] [file ...]\n  hashsum [command]\n\nAvailable Commands:\n  sum      Compute digests (implied when operands are given)\n  version  Print version information\n\nFlags:\n  -s, --string    hash operands as literal strings instead of paths\n      --progress  report hashing progress on standard error\n      --verbose   enable debug logging\n  -h, --help      help for hashsum\n\nWith no operands, hashsum reads standard input and prints the digest as\n\"<hex>  -\".\n"
	if _, err := fmt.Fprint(r.out, help); err != nil {
		return fmt.Errorf("write help output: %w", err)
	}
	return nil
}

func (r *RootCommand) runSum(args []string) error {
	fs := pflag.NewFlagSet("sum", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	literal := fs.BoolP("string", "s", false, "hash operands as literal strings")
	showProgress := fs.Bool("progress", false, "report hashing progress")
	// Accepted here so the flag may appear anywhere; the app layer reads
	// it before the logger exists.
	fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse sum flags: %w: %w", err, apperrors.ErrUsage)
	}
	operands := fs.Args()

	if *literal {
		if len(operands) == 0 {
			return fmt.Errorf("--string requires at least one operand: %w", apperrors.ErrUsage)
		}
		return r.sumStrings(operands)
	}

	if len(operands) == 0 {
		return r.sumStdin()
	}

	return r.sumFiles(operands, *showProgress)
}

func (r *RootCommand) sumStrings(operands []string) error {
	for _, s := range operands {
		digest := hash.SumString(s)
		r.log.Debug("hashed string operand", "bytes", len(s))
		if _, err := fmt.Fprintf(r.out, "%s  %s\n", digest, s); err != nil {
			return fmt.Errorf("write digest output: %w", err)
		}
	}
	return nil
}

func (r *RootCommand) sumStdin() error {
	start := time.Now()
	digest, err := hash.SumReader(r.in)
	if err != nil {
		return err
	}
	r.log.Debug("hashed standard input", "elapsed", time.Since(start))
	if _, err := fmt.Fprintf(r.out, "%s  -\n", digest); err != nil {
		return fmt.Errorf("write digest output: %w", err)
	}
	return nil
}

// sumFiles hashes every operand even when one fails; the first failure
// decides the returned error so the exit code is non-zero.
func (r *RootCommand) sumFiles(paths []string, showProgress bool) error {
	var firstErr error
	for _, path := range paths {
		digest, err := r.sumPath(path, showProgress)
		if err != nil {
			if _, writeErr := fmt.Fprintf(r.errOut, "hashsum: %v\n", err); writeErr != nil {
				return fmt.Errorf("write digest error: %w", writeErr)
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if _, err := fmt.Fprintf(r.out, "%s  %s\n", digest, path); err != nil {
			return fmt.Errorf("write digest output: %w", err)
		}
	}
	return firstErr
}

func (r *RootCommand) sumPath(path string, showProgress bool) (string, error) {
	start := time.Now()
	if !showProgress {
		digest, err := hash.SumFile(path)
		if err != nil {
			return "", err
		}
		r.log.Debug("hashed file", "path", path, "elapsed", time.Since(start))
		return digest, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input file: %w: %w", err, apperrors.ErrIO)
	}
	defer func() { _ = file.Close() }()
	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat input file: %w: %w", err, apperrors.ErrIO)
	}

	reporter := progress.NewReporter(r.errOut, path, uint64(info.Size()))
	reader := progress.NewReader(file, reporter)
	digest, err := hash.SumReader(reader)
	if err != nil {
		return "", fmt.Errorf("hash file %s: %w", path, err)
	}
	reporter.Done(reader.Count())
	r.log.Debug("hashed file", "path", path, "bytes", reader.Count(), "elapsed", time.Since(start))
	return digest, nil
}

// NewOSRootCommand creates a command wired to process standard streams.
func NewOSRootCommand(log *slog.Logger) *RootCommand {
	return NewRootCommand(os.Stdout, os.Stderr, os.Stdin, log)
}
