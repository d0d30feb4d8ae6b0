package main

import (
	"strings"

	"github.com/nomagicln/roundtrip/internal/logging"
	"github.com/nomagicln/roundtrip/pkg/codegen"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// completeValues completes a flag from a fixed set of values.
func completeValues(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				matches = append(matches, v)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

func logLevelNames() []string {
	names := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		names = append(names, level.String())
	}
	return names
}

// registerCompletions adds value completion for the enumerated flags.
func registerCompletions(root, gen *cobra.Command) {
	_ = root.RegisterFlagCompletionFunc("log-level", completeValues(logLevelNames()))
	_ = root.RegisterFlagCompletionFunc("log-format", completeValues([]string{logging.FormatText, logging.FormatJSON}))
	_ = gen.RegisterFlagCompletionFunc("format", completeValues(codegen.ListFormats()))
}

// newCompletionCmd creates the completion subcommand
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for roundtrip.

Bash:
  source <(roundtrip completion bash)

Zsh:
  roundtrip completion zsh > "${fpath[1]}/_roundtrip"

Fish:
  roundtrip completion fish | source`,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			}
			return nil
		},
	}

	return cmd
}
