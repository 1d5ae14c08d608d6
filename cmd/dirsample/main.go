// Package main implements dirsample, which prints one sampled entry from
// each directory given on the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/dirsample/internal/entryfilter"
	"github.com/taigrr/dirsample/internal/logger"
	"github.com/taigrr/dirsample/internal/sampler"
	"github.com/taigrr/dirsample/internal/types"
)

type options struct {
	filter   types.FilterConfig
	logLevel string
}

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(getoptArgs(cmd.Flags(), args))

	return fang.Execute(
		ctx,
		cmd,
		fang.WithVersion(cmd.Version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dirsample [flags] DIRECTORY...",
		Short: "Print the path of one item from each directory",
		Long: `dirsample prints the path of one item from each directory in DIRECTORY.

Entries are sorted by name and the sample is taken at the last multiple
of seven below the number of entries. Directories that cannot be read or
have no matching entries are skipped without output.`,
		Example: "dirsample ~/Music/*\ndirsample -i -p live ~/Music/*",
		Args:    cobra.ArbitraryArgs,
		Version: resolveVersion(),
		RunE:    opts.run,
	}

	// Unknown options are dropped by getoptArgs; this covers anything
	// that still slips through.
	cmd.FParseErrWhitelist.UnknownFlags = true

	flags := cmd.Flags()
	flags.StringVarP(&opts.filter.Pattern, "pattern", "p", "", "print only items including `PATTERN` in their names")
	flags.BoolVarP(&opts.filter.CaseInsensitive, "ignore-case", "i", false, "make pattern matching case insensitive")
	flags.StringVar(&opts.logLevel, "log-level", logger.DefaultLevel, "diagnostic level on stderr ("+strings.Join(logger.Levels, "|")+")")
	flags.MarkHidden("log-level")

	// Only -p, -i and -h are short options; cobra would otherwise claim -v.
	flags.Bool("version", false, "version for dirsample")

	// getoptArgs needs the full flag set before cobra adds it lazily.
	cmd.InitDefaultHelpFlag()

	return cmd
}

func (opts *options) run(cmd *cobra.Command, dirs []string) error {
	if !logger.ValidLevel(opts.logLevel) {
		return fmt.Errorf("invalid log level %q, want one of %s", opts.logLevel, strings.Join(logger.Levels, ", "))
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), opts.logLevel)
	log.LogTrace(fmt.Sprintf("filter: pattern=%q ignore-case=%t, %d directories", opts.filter.Pattern, opts.filter.CaseInsensitive, len(dirs)))

	svc := sampler.New(cmd.OutOrStdout(), entryfilter.Name(opts.filter), sampler.WithLogger(log))
	return svc.Run(cmd.Context(), dirs)
}
