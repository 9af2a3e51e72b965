package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/config"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/provider"
	"github.com/kinometa/kinometa/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().BoolP("json", "j", false, "Print as json")
}

type fieldInfo struct {
	Field     field.Field `json:"field"`
	Source    string      `json:"source,omitempty"`
	Available []string    `json:"available"`
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the known fields and the source that supplies each",
	Run: func(cmd *cobra.Command, args []string) {
		mapping, err := config.Mapping()
		handleErr(err)

		registry := provider.DefaultRegistry()
		defer registry.Close()

		infos := lo.Map(field.All(), func(f field.Field, _ int) fieldInfo {
			return fieldInfo{
				Field:  f,
				Source: mapping[f],
				Available: lo.Filter(registry.IDs(), func(id string, _ int) bool {
					src, ok := registry.Resolve(id)
					return ok && src.Capability().Fields.Contains(f)
				}),
			}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(infos))
			return
		}

		for _, info := range infos {
			source := style.Fg(color.Red)("unmapped")
			if info.Source != "" {
				source = style.Fg(color.Yellow)(info.Source)
				if !lo.Contains(info.Available, info.Source) {
					source += " " + icon.Get(icon.Fail)
				}
			}

			fmt.Printf("%-14s %s %s\n",
				style.Bold(info.Field.String()),
				source,
				style.Faint(strings.Join(info.Available, ", ")),
			)
		}
	},
}
