package main

import (
	"fmt"

	"github.com/drakos74/silhouette/internal/chart"
	"github.com/drakos74/silhouette/internal/dataset"
	"github.com/drakos74/silhouette/internal/validate"
	"github.com/drakos74/silhouette/silhouette"
	"github.com/spf13/cobra"
)

var plotPath string

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw the silhouette plot with the default title",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validate.Path("save", plotPath); err != nil {
			return err
		}

		data, labels, err := dataset.LoadCSV(dataPath, headers)
		if err != nil {
			return err
		}

		canvas, err := silhouette.Plot(data, labels)
		if err != nil {
			return err
		}
		defer chart.Figures.CloseAll()

		canvas.Width = settings.width()
		canvas.Height = settings.height()
		if err := canvas.Save(plotPath); err != nil {
			return err
		}
		fmt.Printf("Plot saved: %s\n", plotPath)
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotPath, "save", "silhouette.png", "image file to save the plot to")
}
