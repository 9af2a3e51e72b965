package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/history"
	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print the history as json")
	historyCmd.Flags().BoolP("clear", "c", false, "Delete every entry")
	historyCmd.MarkFlagsMutuallyExclusive("json", "clear")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the finished scrapes, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			fmt.Printf("%s history cleared\n", icon.Get(icon.Success))
			return
		}

		entries, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		for _, e := range entries {
			mark := icon.Get(icon.Success)
			if e.Canceled {
				mark = icon.Get(icon.Cancel)
			} else if !e.Missing.IsEmpty() {
				mark = icon.Get(icon.Mark)
			}

			cmd.Printf("%s %s %s\n", mark, style.Bold(e.Title), style.Faint(e.SavedAt.Format("2006-01-02 15:04")))

			refs := lo.Map(e.Refs.Namespaces(), func(ns ident.Namespace, _ int) string {
				return fmt.Sprintf("%s:%s", ns, e.Refs.Get(ns))
			})
			if len(refs) > 0 {
				cmd.Printf("  %s\n", style.Fg(color.Yellow)(strings.Join(refs, " ")))
			}
			cmd.Printf("  %d fields from %s\n", e.Fields.Len(), strings.Join(e.Sources, ", "))
			if !e.Missing.IsEmpty() {
				cmd.Printf("  %s %s\n", style.Fg(color.Red)("missing"), e.Missing)
			}
		}
	},
}
