package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsna6ce/html2cheader/internal/config"
	"github.com/rsna6ce/html2cheader/internal/generator"
	"github.com/rsna6ce/html2cheader/internal/ui"
)

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample " + config.DefaultFile,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}
			cmd.SilenceUsage = true
			quiet, _ := cmd.Flags().GetBool("quiet")
			return runInit(cmd.OutOrStdout(), path, force, quiet)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

// runInit writes the sample configuration to path.
// An existing file is only replaced when force is set.
func runInit(out io.Writer, path string, force, quiet bool) error {
	_, statErr := os.Stat(path)
	exists := statErr == nil
	if exists && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := config.Marshal(config.Sample())
	if err != nil {
		return err
	}
	if err := generator.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if !quiet {
		p := ui.New(out)
		if exists {
			p.PrintWarning("init", "overwrote "+path)
		} else {
			p.PrintSuccess("init", "wrote "+path)
		}
	}
	return nil
}
