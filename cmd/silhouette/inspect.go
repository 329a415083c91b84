package main

import (
	"encoding/json"
	"os"

	"github.com/drakos74/silhouette/internal/dataset"
	"github.com/drakos74/silhouette/silhouette"
	"github.com/spf13/cobra"
)

var (
	name       string
	savePath   string
	jsonOutput bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report the silhouette of every cluster",
	Long:  `Prints the mean silhouette and the size and mean silhouette of every cluster, optionally saving the silhouette plot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, labels, err := dataset.LoadCSV(dataPath, headers)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("name") {
			name = settings.Name
		}

		report, _, err := silhouette.Inspect(data, labels, silhouette.Config{
			Name:     name,
			SavePath: savePath,
			Report:   true,
			Width:    settings.width(),
			Height:   settings.height(),
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		render(os.Stdout, report)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&name, "name", "", "model name shown in the plot title")
	inspectCmd.Flags().StringVar(&savePath, "save", "", "image file to save the plot to")
	inspectCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the report as json")
}
