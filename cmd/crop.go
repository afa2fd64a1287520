package cmd

import (
	"github.com/nci/vrtbuffer/buffer"
	"github.com/spf13/cobra"
)

var cropCmd = &cobra.Command{
	Use:   "crop <original_dir> <input_dir> <output_dir>",
	Short: "Crop processed raster tiles to the extent of the originals",
	Long: `Crop every padded GeoTIFF in the input directory back down to the
size, geotransform and projection of the same-named original in the
original directory.

A tile without a same-named original is reported and skipped; the rest of
the batch still runs to completion.`,
	Args: cobra.ExactArgs(3),
	RunE: runCrop,
}

func init() {
	rootCmd.AddCommand(cropCmd)
}

func runCrop(cmd *cobra.Command, args []string) error {
	origDir, inputDir, outputDir := args[0], args[1], args[2]

	logger := newLogger()
	defer closeLogger(logger)

	report, err := buffer.CropDirectory(origDir, inputDir, outputDir, logger)
	if err != nil {
		return err
	}

	return finishBatch(cmd, report)
}
