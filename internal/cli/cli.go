// Package cli wires the catto command line: one flag per resident cat,
// mutually exclusive, or a random coat when no flag is given.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"catto/internal/coat"
	"catto/internal/drawing"
	"catto/internal/render"
	"catto/internal/term"
)

// Exit codes. Usage mistakes follow the flag-parsing convention of 2;
// reserved cats and internal failures exit 1.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errPrint marks a failed write of an already rendered cat.
var errPrint = errors.New("cannot print the cat")

// catFlags lists every cat flag in help order. Cassandra and
// Persephone are reserved; asking for them fails with a clear message
// instead of a coat. coat.ForCat is total over this table.
var catFlags = [...]struct {
	name string
	help string
}{
	{name: "iggy", help: "print Iggy, the tuxedo"},
	{name: "lucy", help: "print Lucy, the golden tabby"},
	{name: "magda", help: "print Magda, the black cat"},
	{name: "cassandra", help: "reserved for Cassandra, who has not chosen a coat yet"},
	{name: "persephone", help: "reserved for Persephone, who has not chosen a coat yet"},
}

// Options carries the ambient inputs selection and rendering depend
// on, so tests can pin every one of them down.
type Options struct {
	// IntN draws a number in [0, n) for the random pick. nil uses the
	// process-wide source.
	IntN func(n int) int
	// Getenv resolves the color environment (TERM, COLORTERM,
	// NO_COLOR, CLICOLOR_FORCE). nil reads nothing and renders plain.
	Getenv func(key string) string
	// TTY reports whether stdout is attached to a terminal.
	TTY bool
}

// Execute runs catto against the real process environment and returns
// the exit code for main.
func Execute(stdout, stderr io.Writer, args []string) int {
	return ExecuteWithOptions(stdout, stderr, args, Options{
		Getenv: os.Getenv,
		TTY:    term.StdoutIsTTY(),
	})
}

// ExecuteWithOptions is Execute with injectable ambient inputs. It is
// primarily intended for tests.
//
// The cat lands on stdout and nothing else does. Errors land on
// stderr: usage mistakes with a pointer to --help, reserved cats with
// a not-yet-available message, and internal failures through the
// structured logger.
func ExecuteWithOptions(stdout, stderr io.Writer, args []string, opts Options) int {
	root := newRootCmd(opts)
	root.SetOut(stdout)
	root.SetErr(stderr)
	// cobra reads os.Args when args is nil; pin the empty invocation.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, coat.ErrReserved):
		fmt.Fprintf(stderr, "catto: %v\n", err)
		return exitFailure
	case errors.Is(err, coat.ErrMalformed):
		log.New(stderr).Error("the coat catalog is broken", "err", err)
		return exitFailure
	case errors.Is(err, errPrint):
		log.New(stderr).Error("could not write the cat", "err", err)
		return exitFailure
	default:
		fmt.Fprintf(stderr, "catto: %v\n", err)
		fmt.Fprintln(stderr, "run 'catto --help' to meet the cats")
		return exitUsage
	}
}

func newRootCmd(opts Options) *cobra.Command {
	root := &cobra.Command{
		Use:   "catto",
		Short: "print a colorful cat in your terminal",
		Long: `Catto prints the house cat in one of 29 coat patterns.

Without a flag the coat is drawn at random. Each resident cat has a
flag bound to their own coat; the flags are mutually exclusive.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return show(cmd, opts)
		},
	}

	names := make([]string, 0, len(catFlags))
	for _, f := range catFlags {
		root.Flags().Bool(f.name, false, f.help)
		names = append(names, f.name)
	}
	root.MarkFlagsMutuallyExclusive(names...)

	return root
}

// show picks the coat the flags ask for, renders the cat at the
// terminal's color depth, and writes it to the command's stdout.
func show(cmd *cobra.Command, opts Options) error {
	tmpl := drawing.Catto()
	if err := coat.Validate(tmpl); err != nil {
		return err
	}

	pattern, err := pick(cmd, opts.IntN)
	if err != nil {
		return err
	}

	out, err := render.New(term.Detect(opts.Getenv, opts.TTY)).Render(tmpl, pattern)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("%w: %v", errPrint, err)
	}
	return nil
}

// pick resolves the requested resident's coat, or draws one at random
// when no cat flag is set. Mutual exclusion has already run, so at
// most one flag can be set here.
func pick(cmd *cobra.Command, intn func(n int) int) (coat.Pattern, error) {
	for _, f := range catFlags {
		on, err := cmd.Flags().GetBool(f.name)
		if err != nil {
			return coat.Pattern{}, err
		}
		if on {
			return coat.ForCat(f.name)
		}
	}
	return coat.Pick(intn), nil
}
