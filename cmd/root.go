package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rsna6ce/html2cheader/internal/config"
	"github.com/rsna6ce/html2cheader/internal/generator"
	"github.com/rsna6ce/html2cheader/internal/ui"
	"github.com/rsna6ce/html2cheader/pkg/log"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"input":                     "input",
	"output":                    "output",
	"header.type":               "type",
	"header.name":               "name",
	"header.guard":              "guard",
	"header.escape_backslashes": "escape-backslashes",
	"logging.level":             "log-level",
	"logging.path":              "log-file",
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html2cheader -i <input> -o <output>",
		Short: "Embed a text file in a C/C++ header as a string literal",
		Long: `html2cheader converts a text file (typically an HTML page) into a header
that declares one string variable holding the file's content, so it can be
compiled into firmware instead of being loaded from a filesystem at runtime.

Settings can also be read from ./html2cheader.yaml (see "html2cheader init").
Flags take precedence over the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			// Past argument validation, failures are not usage mistakes.
			cmd.SilenceUsage = true

			quiet, _ := cmd.Flags().GetBool("quiet")
			return runConvert(cmd.OutOrStdout(), cfg, quiet)
		},
	}

	fs := cmd.Flags()
	fs.StringP("input", "i", "", "input text file (required)")
	fs.StringP("output", "o", "", "output header file (required)")
	fs.String("type", config.DefaultType, "declared type of the generated variable")
	fs.String("name", "", "variable name (default: input file name with '.' replaced by '_')")
	fs.String("guard", config.GuardPragma, "include guard style: pragma or ifndef")
	fs.Bool("escape-backslashes", false, "double backslashes so they are embedded literally")
	fs.String("config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	fs.String("log-level", config.DefaultLevel, "log level: debug, info, warn, error")
	fs.String("log-file", "", "append logs to this file instead of stderr")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "suppress status output")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &config.UsageError{Msg: err.Error()}
	})

	cmd.AddCommand(newInitCmd(), newVersionCmd())
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). Usage errors exit with status 2, all other
// failures with status 1.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if config.IsUsageError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// loadConfig merges the config file, if any, with the command-line flags,
// applies defaults and validates the result.
func loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	v := viper.New()

	cfgFile, _ := fs.GetString("config")
	if cfgFile == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			cfgFile = config.DefaultFile
		}
	}
	if cfgFile != "" {
		// Strict pass first: viper silently drops unknown keys.
		if _, err := config.Load(cfgFile); err != nil {
			return nil, err
		}
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", cfgFile, err)
		}
	}

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, err
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	config.ApplyDefaults(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// runConvert generates the header described by cfg and reports the result on out.
//
// Returns:
//   - error: An error if logging cannot be set up or generation fails.
func runConvert(out io.Writer, cfg *config.Config, quiet bool) error {
	closer, err := log.Init(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer closer.Close()

	res, err := generator.Generate(cfg)
	if err != nil {
		return err
	}

	if !quiet {
		ui.New(out).PrintSuccess(res.Identifier, fmt.Sprintf("%d lines -> %s", res.Lines, cfg.Output))
	}
	return nil
}
