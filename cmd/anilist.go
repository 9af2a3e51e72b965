package cmd

import (
	"fmt"
	"strconv"

	"github.com/kinometa/kinometa/anilist"
	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(anilistCmd)
}

var anilistCmd = &cobra.Command{
	Use:   "anilist",
	Short: "Search AniList and manage the titles bound to AniList entries",
	Long: `AniList is the default bootstrap source. A title is resolved to the closest AniList entry
and the result is remembered. Use set to bind a title to another entry.`,
}

func printAnime(a *anilist.Anime) {
	fmt.Printf("%s %s %s\n", style.Fg(color.Yellow)(strconv.Itoa(a.ID)), a.Name(), style.Faint(a.SiteURL))
}

func init() {
	anilistCmd.AddCommand(anilistSearchCmd)
}

var anilistSearchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Search AniList by title",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		animes, err := anilist.SearchByName(cmd.Context(), args[0])
		handleErr(err)

		if len(animes) == 0 {
			fmt.Printf("%s nothing found\n", icon.Get(icon.Search))
			return
		}

		for _, a := range animes {
			printAnime(a)
		}
	},
}

func init() {
	anilistCmd.AddCommand(anilistGetCmd)
}

var anilistGetCmd = &cobra.Command{
	Use:   "get <title>",
	Short: "Show the AniList entry a title resolves to",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := anilist.GetCachedRelation(args[0])
		if a == nil {
			var err error
			a, err = anilist.FindClosest(cmd.Context(), args[0])
			handleErr(err)
		}

		printAnime(a)
	},
}

func init() {
	anilistCmd.AddCommand(anilistSetCmd)

	anilistSetCmd.Flags().StringP("name", "n", "", "Title to bind")
	anilistSetCmd.Flags().IntP("id", "i", 0, "AniList id to bind the title to")

	lo.Must0(anilistSetCmd.MarkFlagRequired("name"))
	lo.Must0(anilistSetCmd.MarkFlagRequired("id"))
}

var anilistSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Bind a title to an AniList entry",
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("name"))
		id := lo.Must(cmd.Flags().GetInt("id"))

		a, err := anilist.GetByID(cmd.Context(), id)
		handleErr(err)
		handleErr(anilist.SetRelation(name, a))

		fmt.Printf("%s bound %s to ", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		printAnime(a)
	},
}
