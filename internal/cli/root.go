// Package cli provides the command-line interface for logpuzzle.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logpuzzle/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 2 // Usage, input, network or filesystem error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.PuzzleOptions{}

	rootCmd := &cobra.Command{
		Use:   "logpuzzle [flags] <logfile>",
		Short: "Extract puzzle image URLs from an Apache access log",
		Long: `logpuzzle scans an Apache access log for puzzle image requests.

The host is taken from the log file name: the text after the first
underscore (animal_code.google.com -> code.google.com), or the whole
name when there is none. Each GET request whose path contains /puzzle/
becomes a URL; duplicates are dropped and the list is sorted by the last
8 characters of each URL (--sort full sorts by the whole URL).

Without --todir the URLs are printed, one per line. With --todir each
image is downloaded to img0.jpg, img1.jpg, ... and an index.html showing
them in order is written.

Exit codes:
  0 - Success
  1 - Some downloads failed (--continue-on-error)
  2 - Usage, input, network or filesystem error`,
		Example: `  logpuzzle animal_code.google.com
  logpuzzle -d animaldir animal_code.google.com
  logpuzzle -d placedir -j 4 --continue-on-error place_code.google.com`,
		Args: commands.LogfileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunPuzzle(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.BindPuzzleFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
