package main

import (
	"fmt"
	"io"

	"github.com/drakos74/silhouette/silhouette"
	"github.com/olekukonko/tablewriter"
)

func render(w io.Writer, report *silhouette.Report[string]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"cluster", "size", "mean", "min", "max"})
	for _, c := range report.Clusters {
		table.Append([]string{
			c.Label,
			fmt.Sprintf("%d", c.Size),
			fmt.Sprintf("%.3f", c.Mean),
			fmt.Sprintf("%.3f", c.Min),
			fmt.Sprintf("%.3f", c.Max),
		})
	}
	table.SetFooter([]string{"all", fmt.Sprintf("%d", report.Size()), fmt.Sprintf("%.3f", report.Mean), "", report.Quality()})
	table.Render()
}
