package cmd

import (
	"fmt"

	"github.com/nci/vrtbuffer/buffer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var padCmd = &cobra.Command{
	Use:   "pad",
	Short: "Pad raster tiles with a margin sourced from a VRT mosaic",
	Long: `Pad every GeoTIFF in the input directory with a border of additional
pixels sourced from the adjacent rasters through a VRT mosaic.

The padded tiles keep the original file names and are written to the output
directory with a correspondingly shifted origin. Tiles at the mosaic
boundary receive an asymmetric, smaller margin on the sides that would
leave the mosaic extent.`,
	RunE: runPad,
}

func init() {
	rootCmd.AddCommand(padCmd)

	padCmd.Flags().StringP("input", "i", "", "input raster directory (required)")
	padCmd.Flags().StringP("output", "o", "", "output raster directory (required)")
	padCmd.Flags().String("vrt", "", "VRT mosaic describing the subject area including the adjacent rasters (required)")
	padCmd.Flags().IntP("pad", "p", 0, "number of pixels to pad each raster with")

	viper.BindPFlag("pad.input", padCmd.Flags().Lookup("input"))
	viper.BindPFlag("pad.output", padCmd.Flags().Lookup("output"))
	viper.BindPFlag("pad.vrt", padCmd.Flags().Lookup("vrt"))
	viper.BindPFlag("pad.pad", padCmd.Flags().Lookup("pad"))
}

func runPad(cmd *cobra.Command, args []string) error {
	inputDir := viper.GetString("pad.input")
	outputDir := viper.GetString("pad.output")
	mosaicPath := viper.GetString("pad.vrt")
	margin := viper.GetInt("pad.pad")

	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories are required (use --input, --output)")
	}
	if mosaicPath == "" {
		return fmt.Errorf("a VRT mosaic is required (use --vrt)")
	}
	if margin < 0 {
		return fmt.Errorf("pad must be a non-negative number of pixels: %d", margin)
	}

	logger := newLogger()
	defer closeLogger(logger)

	report, err := buffer.PadDirectory(inputDir, outputDir, mosaicPath, margin, logger)
	if err != nil {
		return err
	}

	return finishBatch(cmd, report)
}
