package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var tagFilter string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the video catalog as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			var videos []domain.Video
			for _, v := range lib.Videos() {
				if tagFilter == "" || v.HasTag(tagFilter) {
					videos = append(videos, v)
				}
			}
			if len(videos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No videos")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), catalogTable(videos))
			return nil
		},
	}

	cmd.Flags().StringVar(&tagFilter, "tag", "", "Only list videos carrying this tag (e.g. #cat)")
	return cmd
}

// catalogTable renders videos in catalog order with a right-aligned row number
func catalogTable(videos []domain.Video) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "ID", "Title", "Tags"})
	for i, v := range videos {
		tw.AppendRow(table.Row{i + 1, v.ID, v.Title, strings.Join(v.Tags, " ")})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	return tw.Render()
}
