package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/form"
	"github.com/passgen/passgen-go/internal/generator"
)

// usageError marks failures while parsing the command line.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type options struct {
	length  int
	upper   bool
	lower   bool
	numbers bool
	symbols bool
	count   int
	copyOut bool
	seed    uint64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, clipboard.System{}))
}

func run(args []string, stdout, stderr io.Writer, cb form.Clipboard) int {
	cmd := newRootCmd(cb)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprint(stderr, cmd.UsageString())
			return 2
		}
		return 1
	}
	return 0
}

func newRootCmd(cb form.Clipboard) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "passgen - generate random passwords with a strength rating",
		Long: `passgen draws passwords uniformly from the selected character classes
and prints each one with a Weak/Medium/Strong rating.

Example:
  passgen --length 24 --symbols=false
  passgen --count 5
  passgen --copy`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, cb)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	cmd.Flags().IntVar(&opts.length, "length", generator.DefaultLength, fmt.Sprintf("password length (%d-%d)", generator.MinLength, generator.MaxLength))
	cmd.Flags().BoolVar(&opts.upper, "upper", true, "include uppercase letters")
	cmd.Flags().BoolVar(&opts.lower, "lower", true, "include lowercase letters")
	cmd.Flags().BoolVar(&opts.numbers, "numbers", true, "include digits")
	cmd.Flags().BoolVar(&opts.symbols, "symbols", true, "include symbols")
	cmd.Flags().IntVar(&opts.count, "count", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&opts.copyOut, "copy", false, "copy the last password to the clipboard")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "fixed generator seed (0 picks a random one)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts options, cb form.Clipboard) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	f, err := form.New(generator.NewRand(opts.seed), generator.Options{
		Length: opts.length,
		Flags: generator.Flags{
			Uppercase: opts.upper,
			Lowercase: opts.lower,
			Numbers:   opts.numbers,
			Symbols:   opts.symbols,
		},
	})
	if err != nil {
		return err
	}

	for i := 0; i < opts.count; i++ {
		password, err := f.Generate()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", password, f.Strength().Label)
	}

	if opts.copyOut {
		err := f.Copy(cb)
		switch {
		case errors.Is(err, form.ErrNoPassword):
			logger.Warn("nothing to copy")
		case err != nil:
			logger.Warn("copy failed", "error", err)
		default:
			logger.Info("password copied to clipboard")
		}
	}

	return nil
}
