package cmd

import (
	"os"
	"sort"

	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/config"
	"github.com/kinometa/kinometa/style"
	"github.com/kinometa/kinometa/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are not set")
	envCmd.Flags().BoolP("describe", "d", false, "Show the description of the config key each variable overrides")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envVariables lists every variable kinometa reads, with the config key it overrides.
func envVariables() []lo.Entry[string, string] {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) lo.Entry[string, string] {
		f := config.Default[k]
		return lo.Entry[string, string]{Key: f.Env(), Value: k}
	})
	vars = append(vars, lo.Entry[string, string]{Key: where.EnvConfigPath})

	sort.Slice(vars, func(i, j int) bool { return vars[i].Key < vars[j].Key })
	return vars
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables that override the config",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			describe  = lo.Must(cmd.Flags().GetBool("describe"))
			name      = style.New().Bold(true).Foreground(color.Purple).Render
		)

		for _, v := range envVariables() {
			value, present := os.LookupEnv(v.Key)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(name(v.Key), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}

			if describe && v.Value != "" {
				cmd.Println(style.Faint("  " + v.Value + ": " + config.Default[v.Value].Description))
			}
		}
	},
}
