package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	pagescmd "github.com/goliatone/go-sitecms/internal/commands/pages"
)

var createFlags struct {
	slug     string
	title    string
	sections []string
	navbar   bool
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Manage the page registry",
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered pages and their anchors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		module, err := openModule(ctx)
		if err != nil {
			return err
		}
		defer module.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tSECTIONS")
		for _, entry := range module.Pages().ListPages(ctx) {
			fmt.Fprintf(w, "%s\t%s\t%d\n", entry.Slug, entry.Name, len(module.Pages().Sections(ctx, entry.Slug)))
		}
		return w.Flush()
	},
}

var pagesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Register a page",
	Long: `Registers a page named <name>. The slug is derived from the name unless
--slug is given. --section may be repeated to seed the section list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		module, err := openModule(ctx)
		if err != nil {
			return err
		}
		defer module.Close()

		handler := module.Container().Commands().Pages.Create
		msg := pagescmd.CreatePageCommand{
			Name:        args[0],
			Slug:        createFlags.slug,
			Title:       createFlags.title,
			Sections:    createFlags.sections,
			AddToNavbar: createFlags.navbar,
		}
		if err := handler.Execute(ctx, msg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", args[0])
		return nil
	},
}

func init() {
	flags := pagesCreateCmd.Flags()
	flags.StringVar(&createFlags.slug, "slug", "", "explicit slug")
	flags.StringVar(&createFlags.title, "title", "", "page title (defaults to the name)")
	flags.StringArrayVar(&createFlags.sections, "section", nil, "section type, repeatable")
	flags.BoolVar(&createFlags.navbar, "navbar", false, "add a navbar link to the page")

	pagesCmd.AddCommand(pagesListCmd, pagesCreateCmd)
}
