package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logpuzzle/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logpuzzle configuration file without scanning any log.

Checks:
  - YAML syntax
  - URL pattern validity and capture group
  - Sort mode and download error policy
  - Download concurrency and timeout`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	todir := cfg.ToDir
	if todir == "" {
		todir = "(none, URLs are printed)"
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Pattern:     %s\n", cfg.Pattern)
	fmt.Fprintf(w, "  Sort:        %s\n", cfg.Sort)
	fmt.Fprintf(w, "  Destination: %s\n", todir)
	fmt.Fprintf(w, "\nDownload:\n")
	fmt.Fprintf(w, "  Concurrency: %d\n", cfg.Download.Concurrency)
	fmt.Fprintf(w, "  Timeout:     %s\n", cfg.Download.Timeout)
	fmt.Fprintf(w, "  User-Agent:  %s\n", cfg.Download.UserAgent)
	fmt.Fprintf(w, "  On error:    %s\n", cfg.Download.OnError)

	return nil
}
