package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/provider"
	"github.com/kinometa/kinometa/source"
	"github.com/kinometa/kinometa/style"
	"github.com/kinometa/kinometa/util"
	"github.com/kinometa/kinometa/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and custom metadata sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print ids only, without headers")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "List only custom Lua sources")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "List only built-in sources")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sources",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		list := func(providers []*provider.Provider) {
			for _, p := range providers {
				if printHeader {
					cmd.Printf("%-16s %s\n", p.ID, style.Faint(p.Name))
				} else {
					cmd.Println(p.ID)
				}
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			list(provider.Builtins())
		case lo.Must(cmd.Flags().GetBool("custom")):
			list(provider.Customs())
		default:
			h("Builtin:")
			list(provider.Builtins())
			if printHeader {
				cmd.Println()
			}
			h("Custom:")
			list(provider.Customs())
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInfoCmd)
}

var sourcesInfoCmd = &cobra.Command{
	Use:               "info <id>",
	Short:             "Show what a source can supply",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSourceIDs,
	Run: func(cmd *cobra.Command, args []string) {
		registry := provider.DefaultRegistry()
		defer registry.Close()

		src, ok := registry.Resolve(args[0])
		if !ok {
			if err := registry.Err(args[0]); err != nil {
				handleErr(err)
			}
			handleErr(fmt.Errorf("unknown source %q", args[0]))
		}

		c := src.Capability()
		label := style.Fg(color.Purple)
		row := func(name, value string) {
			fmt.Printf("%s %s\n", label(fmt.Sprintf("%-11s", name)), value)
		}

		fmt.Println(style.Title(src.Name()))
		row("ID", src.ID())
		row("Fields", c.Fields.String())
		row("Namespace", string(c.Namespace))
		row("Locale", c.DefaultLocale.String())
		row("Locales", strings.Join(lo.Map(c.Locales, func(t language.Tag, _ int) string { return t.String() }), ", "))
		row("Kinds", strings.Join(lo.Map(c.Kinds, func(k source.Kind, _ int) string { return string(k) }), ", "))
		row("Bootstrap", fmt.Sprint(c.Bootstrap))
		row("Searchable", fmt.Sprint(c.Searchable))
	},
}

func completeSourceIDs(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.ID
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Name of the custom source to remove")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Customs(), func(p *provider.Provider, _ int) string {
			return p.Name
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove custom Lua sources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesUpdateCmd)

	sourcesUpdateCmd.Flags().StringArrayP("install", "i", []string{}, "Name of a published source to install")
}

var sourcesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update installed custom sources to their published versions",
	Long: `Download the published version of every installed custom source and replace the local
copy when it changed. Sources named with --install are downloaded even when not installed.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("install")) {
			_, err := provider.Install(cmd.Context(), name)
			handleErr(err)
			fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Checking for updates...", icon.Get(icon.Progress)))
		updated, err := provider.UpdateCustoms(cmd.Context())
		erase()

		for _, name := range updated {
			fmt.Printf("%s updated %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
		if len(updated) == 0 && err == nil {
			fmt.Printf("%s everything is up to date\n", icon.Get(icon.Mark))
		}
		handleErr(err)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "Name of the new source")
	sourcesGenCmd.Flags().StringP("url", "u", "", "Base url of the service the source reads")
	sourcesGenCmd.Flags().String("namespace", "", "Identifier namespace of the source (defaults to the name)")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a new Lua source from a template",
	Long:  `Generate a Lua source declaring its fields and namespace, with stub FetchMetadata and SearchMetadata functions.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		name := lo.Must(cmd.Flags().GetString("name"))
		namespace := lo.Must(cmd.Flags().GetString("namespace"))
		if namespace == "" {
			namespace = strings.ToLower(util.SanitizeFilename(name))
		}

		s := struct {
			Name             string
			URL              string
			Author           string
			Namespace        string
			FieldsGlobal     string
			NamespaceGlobal  string
			LocaleGlobal     string
			FetchMetadataFn  string
			SearchMetadataFn string
		}{
			Name:             name,
			URL:              lo.Must(cmd.Flags().GetString("url")),
			Author:           author,
			Namespace:        namespace,
			FieldsGlobal:     constant.FieldsGlobal,
			NamespaceGlobal:  constant.NamespaceGlobal,
			LocaleGlobal:     constant.LocaleGlobal,
			FetchMetadataFn:  constant.FetchMetadataFn,
			SearchMetadataFn: constant.SearchMetadataFn,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))
		cmd.Println(target)
	},
}
