package buffer

import (
	"os"
	"path/filepath"
	"time"

	"github.com/nci/vrtbuffer/gdalraster"
	"github.com/nci/vrtbuffer/metrics"
)

// rasterSuffixes is the fixed, case-sensitive set of file suffixes treated
// as raster tiles. Everything else in the input directory is ignored
// silently.
var rasterSuffixes = []string{".tif", ".tiff"}

func isRasterFile(name string) bool {
	ext := filepath.Ext(name)
	for _, suffix := range rasterSuffixes {
		if ext == suffix {
			return true
		}
	}
	return false
}

// TileResult records the outcome for one enumerated tile.
type TileResult struct {
	Tile    string `yaml:"tile"`
	Output  string `yaml:"output,omitempty"`
	Skipped bool   `yaml:"skipped"`
	Error   string `yaml:"error,omitempty"`
}

// BatchReport aggregates the per-tile results of one pad or crop run.
type BatchReport struct {
	Operation    string        `yaml:"operation"`
	NumTiles     int           `yaml:"num_tiles"`
	NumProcessed int           `yaml:"num_processed"`
	NumSkipped   int           `yaml:"num_skipped"`
	Duration     time.Duration `yaml:"duration"`
	Tiles        []TileResult  `yaml:"tiles"`
}

func (r *BatchReport) record(result TileResult) {
	r.NumTiles++
	if result.Skipped {
		r.NumSkipped++
	} else {
		r.NumProcessed++
	}
	r.Tiles = append(r.Tiles, result)
}

func logTile(logger metrics.Logger, operation, tilePath, outputPath string, start time.Time, err error) {
	collector := metrics.NewTileCollector(logger)
	collector.Info.Operation = operation
	collector.Info.TilePath = tilePath
	collector.Info.OutputPath = outputPath
	collector.Info.Duration = time.Since(start)
	if err != nil {
		collector.Info.Error = err.Error()
	}
	collector.Log()
}

// PadDirectory pads every raster tile in inputDir with a margin sourced
// from the mosaic at mosaicPath and writes the padded tiles to outputDir
// under the same file names. The mosaic is opened once and reused read-only
// for every tile.
//
// A per-tile failure is logged and the tile is skipped; only directory
// creation, directory enumeration and mosaic opening are fatal.
func PadDirectory(inputDir, outputDir, mosaicPath string, margin int, logger metrics.Logger) (*BatchReport, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &PathEnumerationError{Dir: outputDir, Err: err}
	}

	// Load the mosaic once for efficiency
	mosaic, err := gdalraster.Open(mosaicPath)
	if err != nil {
		return nil, &TileOpenError{Path: mosaicPath, Err: err}
	}
	defer mosaic.Close()

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, &PathEnumerationError{Dir: inputDir, Err: err}
	}

	report := &BatchReport{Operation: "pad"}
	batchStart := time.Now()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isRasterFile(name) {
			continue
		}

		tilePath := filepath.Join(inputDir, name)
		outputPath := filepath.Join(outputDir, name)

		start := time.Now()
		err := PadTile(tilePath, outputPath, margin, mosaic)
		logTile(logger, "pad", tilePath, outputPath, start, err)

		result := TileResult{Tile: tilePath, Output: outputPath}
		if err != nil {
			result.Skipped = true
			result.Error = err.Error()
		}
		report.record(result)
	}
	report.Duration = time.Since(batchStart)

	return report, nil
}

// CropDirectory trims every padded raster tile in inputDir back down to the
// footprint of its same-named original in origDir, writing the results to
// outputDir. A tile whose original is missing is skipped as a failure.
func CropDirectory(origDir, inputDir, outputDir string, logger metrics.Logger) (*BatchReport, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &PathEnumerationError{Dir: outputDir, Err: err}
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, &PathEnumerationError{Dir: inputDir, Err: err}
	}

	report := &BatchReport{Operation: "crop"}
	batchStart := time.Now()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isRasterFile(name) {
			continue
		}

		paddedPath := filepath.Join(inputDir, name)
		origPath := filepath.Join(origDir, name)
		outputPath := filepath.Join(outputDir, name)

		start := time.Now()
		err := cropAgainstOriginal(origPath, paddedPath, outputPath)
		logTile(logger, "crop", paddedPath, outputPath, start, err)

		result := TileResult{Tile: paddedPath, Output: outputPath}
		if err != nil {
			result.Skipped = true
			result.Error = err.Error()
		}
		report.record(result)
	}
	report.Duration = time.Since(batchStart)

	return report, nil
}

func cropAgainstOriginal(origPath, paddedPath, outputPath string) error {
	if _, err := os.Stat(origPath); err != nil {
		return &MissingCounterpartError{Path: origPath}
	}
	return CropTile(origPath, paddedPath, outputPath)
}
