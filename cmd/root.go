package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"shireesh.com/ontogen/internal/config"
	"shireesh.com/ontogen/internal/generator"
	"shireesh.com/ontogen/internal/logger"
	"shireesh.com/ontogen/internal/naming"
	"shireesh.com/ontogen/internal/tui"
)

const usage = "usage:\n" +
	"create_yli_ontology_class.py <class name> <parent class name> [optional parameters]"

var rootCmd = newRootCmd(tui.Ask)

func newRootCmd(ask tui.AskFunc) *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "ontogen <class name> <parent class name> [optional parameters]",
		Short: "Create header and source skeletons for a yli::ontology class",
		Long: `Create <class_name>.hpp and <class_name>.cpp in snake_case for a new
yli::ontology class deriving from the given parent class.

Both files are overwritten if they already exist. Arguments after the
parent class name are ignored, as is anything that looks like a flag but
is not one of the flags below.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags are split out in RunE so unknown dash tokens stay positional.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, args := config.SplitArgs(cmd.Flags(), args)
			if err := cmd.Flags().Parse(flags); err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			if len(args) < 2 {
				if !cfg.Interactive {
					fmt.Fprintln(cmd.OutOrStdout(), usage)
					return nil
				}
				if args, err = tui.FillMissing(args, ask); err != nil {
					return err
				}
			}
			if len(args) > 2 {
				log.Debug("ignoring extra arguments", "args", args[2:])
			}

			spec := naming.ClassSpec{ClassName: args[0], ParentClassName: args[1]}
			if cfg.Describe {
				return describe(cmd.OutOrStdout(), spec)
			}

			log.Debug("generating class", "class", spec.ClassName, "parent", spec.ParentClassName, "dir", cfg.OutputDir)
			written, err := generator.Generate(cfg.OutputDir, spec)
			for _, path := range written {
				log.Debug("wrote file", "path", path)
			}
			return err
		},
	}

	config.BindFlags(cmd.Flags(), &cfg)
	return cmd
}

// describe prints the derived names as YAML.
func describe(w io.Writer, spec naming.ClassSpec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(naming.Derive(spec)); err != nil {
		return fmt.Errorf("encode names: %w", err)
	}
	return enc.Close()
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
