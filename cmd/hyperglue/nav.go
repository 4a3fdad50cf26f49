package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/newthinker/hypergluex/internal/layout"
	"github.com/spf13/cobra"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "List the sidebar navigation",
	Run: func(cmd *cobra.Command, args []string) {
		writeNav(cmd.OutOrStdout(), layout.DefaultSections())
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}

func writeNav(w io.Writer, sections []layout.Section) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Section", "Item", "Href", "Active"})
	for _, s := range sections {
		for _, item := range s.Items {
			active := ""
			if item.Active {
				active = "*"
			}
			t.AppendRow(table.Row{s.Title, item.Label, item.Href(), active})
		}
	}

	t.Render()
}
