package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/debtools/tempfile/internal/config"
	"github.com/debtools/tempfile/internal/filemode"
	"github.com/debtools/tempfile/internal/mktemp"
	"github.com/debtools/tempfile/internal/tmpdir"
)

const helpHint = "Try 'tempfile --help' for more information."

// rootOptions carries the flag values of one invocation. Tests build their
// own command with newRootCmd, so none of this is package state.
type rootOptions struct {
	configFile string
	verbose    bool

	directory string
	mode      string
	name      string
	prefix    string
	suffix    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "tempfile",
		Short: "Create a temporary file in a safe manner",
		Long: `tempfile creates a new, empty, regular file at a path no other process
is using and prints that path on standard output.

Generated names are the prefix, nine random digits and the suffix; each
candidate is claimed with a single atomic create-exclusive operation,
and a candidate that already exists is simply discarded for the next
one. With --name no generation happens at all: the named file is
created once, and an existing file is an error.

The file is placed in $TMPDIR when that is set and usable, then in the
--directory argument, then in the system default directory.`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n%s", err, helpHint)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.directory, "directory", "d", "", "place the file in `DIR` unless $TMPDIR overrides it")
	flags.StringVarP(&opts.mode, "mode", "m", "", "create the file with octal `MODE` (default 0600)")
	flags.StringVarP(&opts.name, "name", "n", "", "use `FILE` itself instead of generating a name")
	flags.StringVarP(&opts.prefix, "prefix", "p", "", "begin the file name with `STRING`")
	flags.StringVarP(&opts.suffix, "suffix", "s", "", "end the file name with `STRING`")
	flags.StringVar(&opts.configFile, "config", "", "config `FILE` (default: $TEMPFILE_CONFIG, then the user config dir)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	return cmd
}

var rootCmd = newRootCmd()

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context, enabling
// graceful shutdown when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runCreate(cmd *cobra.Command, opts *rootOptions) error {
	// The context is checked once up front; the create loop never aborts
	// mid-attempt.
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	if cfg.FilePath() != "" {
		slog.Debug("loaded config", "path", cfg.FilePath())
	}

	// The mode is settled before any filesystem work so a bad mode cannot
	// leave a file behind.
	flags := cmd.Flags()
	mode := filemode.Default
	switch {
	case flags.Changed("mode"):
		// A bad --mode is a usage error; a bad config mode is not.
		if mode, err = filemode.Parse(opts.mode); err != nil {
			return fmt.Errorf("%w\n%s", err, helpHint)
		}
	case cfg.Defaults.Mode != "":
		if mode, err = filemode.Parse(cfg.Defaults.Mode); err != nil {
			return fmt.Errorf("config file %s: %w", cfg.FilePath(), err)
		}
	}

	if flags.Changed("name") {
		if flags.Changed("directory") || flags.Changed("prefix") || flags.Changed("suffix") {
			slog.Debug("--name given; ignoring directory, prefix and suffix")
		}
		f, err := mktemp.CreateNamed(opts.name, mode)
		if err != nil {
			return err
		}
		return report(cmd, f)
	}

	dir, err := tmpdir.Resolve(resolveString(flags.Changed("directory"), opts.directory, cfg.Defaults.Directory))
	if err != nil {
		return err
	}

	var creator mktemp.Creator
	f, err := creator.Create(mktemp.Options{
		Dir:         dir,
		Prefix:      resolveString(flags.Changed("prefix"), opts.prefix, cfg.Defaults.Prefix),
		Suffix:      resolveString(flags.Changed("suffix"), opts.suffix, cfg.Defaults.Suffix),
		Mode:        mode,
		MaxAttempts: cfg.Create.MaxAttempts,
	})
	if err != nil {
		return err
	}
	return report(cmd, f)
}

// report prints the path of the created file. The handle is closed first: a
// path must not reach the caller while its handle could still fail.
func report(cmd *cobra.Command, f *os.File) error {
	path := f.Name()
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

// resolveString picks the flag value when the flag was given on the command
// line and the config default otherwise. An explicitly empty flag wins, so
// --prefix "" suppresses a configured prefix.
func resolveString(flagChanged bool, flagVal, cfgVal string) string {
	if flagChanged {
		return flagVal
	}
	return cfgVal
}
