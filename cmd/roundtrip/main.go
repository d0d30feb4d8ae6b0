// Package main is the entry point for the roundtrip CLI.
// roundtrip scans Go packages for getter/setter pairs and generates tests
// that check every getter returns what its setter was given.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nomagicln/roundtrip/internal/logging"
	"github.com/nomagicln/roundtrip/pkg/codegen"
	"github.com/nomagicln/roundtrip/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build information, set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// Execute runs the root command with args.
func Execute(args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(stderr, newStyles(stderr).error.Render(FormatError(err)))
	}
	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "roundtrip - getter/setter round-trip test generator",
		Long: `roundtrip finds the getter/setter pairs of the struct types in a Go
package and generates a test that sets a synthesized value through every
setter and checks that the matching getter returns it.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the configuration file (default: <dir>/"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")

	// Add subcommands
	genCmd := newGenCmd(opts)
	rootCmd.AddCommand(
		newScanCmd(opts),
		genCmd,
		newInitCmd(opts),
		newCompletionCmd(),
	)
	registerCompletions(rootCmd, genCmd)

	return rootCmd
}

// load resolves the configuration for dir and the logger it selects.
// Flags override the configuration file.
func (o *globalOptions) load(dir string, stderr io.Writer) (*config.Config, *logrus.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadDir(dir)
	}
	if err != nil {
		return nil, nil, err
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}

	log := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	return cfg, log, nil
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func newScanCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "List the types, setters and constructors of a package",
		Long: `Scan loads the Go package in dir (default: current directory) and lists
every exported struct type with setters, together with the constructors
the generated test would register.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := dirArg(args)
			_, log, err := opts.load(dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			log.WithField("dir", dir).Debug("scanning package")
			pkg, err := codegen.Scan(dir)
			if err != nil {
				return err
			}

			printPackage(cmd.OutOrStdout(), pkg)
			return nil
		},
	}

	return cmd
}

func newGenCmd(opts *globalOptions) *cobra.Command {
	var (
		format string
		output string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "gen [dir]",
		Short: "Generate the round-trip test of a package",
		Long: `Gen scans the Go package in dir (default: current directory) and writes a
test file checking every type with setters. The file registers the
package's constructors with the value synthesizer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := dirArg(args)
			cfg, log, err := opts.load(dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Codegen.Format
			}
			if output == "" {
				output = cfg.Codegen.Output
			}

			gen, err := codegen.NewGenerator(codegen.OutputFormat(format), cfg.CodegenOptions())
			if err != nil {
				return err
			}

			pkg, err := codegen.Scan(dir)
			if err != nil {
				return err
			}

			src, err := gen.Generate(pkg)
			if err != nil {
				return err
			}

			if stdout {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}

			path := filepath.Join(dir, output)
			if err := os.WriteFile(path, src, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			log.WithFields(logrus.Fields{"file": path, "types": len(pkg.Types)}).Info("generated round-trip test")
			s := newStyles(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d types)\n", s.success.Render("✓ Wrote"), path, len(pkg.Types))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", fmt.Sprintf("Test style: %v", codegen.ListFormats()))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Name of the generated file")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the generated file instead of writing it")

	return cmd
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default " + config.FileName,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(dirArg(args), config.FileName)
			if opts.configPath != "" {
				path = opts.configPath
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}

			s := newStyles(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", s.success.Render("✓ Wrote"), path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}
