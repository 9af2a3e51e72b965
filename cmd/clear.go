package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/style"
	"github.com/kinometa/kinometa/util"
	"github.com/kinometa/kinometa/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cached responses", "responses", mo.Some("r"), where.Responses},
	{"scrape history", "history", mo.Some("s"), where.History},
	{"anilist binds", "anilist", mo.Some("a"), where.AnilistBinds},
	{"query suggestions", "queries", mo.Some("q"), where.Queries},
	{"custom sources", "sources", mo.None[string](), where.Sources},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("Clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached responses, history and other saved state",
	Long: `Delete the selected state. Custom sources are only removed with --sources;
reinstall them with "kinometa sources update --install".`,
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range targets {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			erase()

			if errors.Is(err, fs.ErrNotExist) {
				fmt.Printf("%s %s %s\n", icon.Get(icon.Skip), util.Capitalize(target.name), style.Faint("already empty"))
				continue
			}
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
